// Package register maps raw officer roles onto the three statutory register
// categories used by register-view listings.
package register

// Category is one of the three statutory registers an officer role can belong
// to. The string values are the literal keys accepted on the wire.
type Category string

const (
	Directors   Category = "directors"
	Secretaries Category = "secretaries"
	LLPMembers  Category = "llp_members"
)

// roleCategories is the fixed many-to-one role table. Roles outside it are
// valid officer roles but members of no register.
var roleCategories = map[string]Category{
	"director":                        Directors,
	"corporate-director":              Directors,
	"nominee-director":                Directors,
	"corporate-nominee-director":      Directors,
	"secretary":                       Secretaries,
	"corporate-secretary":             Secretaries,
	"nominee-secretary":               Secretaries,
	"corporate-nominee-secretary":     Secretaries,
	"llp-member":                      LLPMembers,
	"llp-designated-member":           LLPMembers,
	"corporate-llp-member":            LLPMembers,
	"corporate-llp-designated-member": LLPMembers,
}

// nonRegisterRoles completes the officer role vocabulary. These appear on
// appointments but never in a register view.
var nonRegisterRoles = map[string]struct{}{
	"cic-manager":                                   {},
	"judicial-factor":                               {},
	"manager-of-an-eea-se":                          {},
	"member-of-a-management-organ":                  {},
	"member-of-a-supervisory-organ":                 {},
	"member-of-an-administrative-organ":             {},
	"person-authorised-to-represent":                {},
	"person-authorised-to-represent-and-administer": {},
	"receiver-and-manager":                          {},
	"general-partner-in-a-limited-partnership":      {},
	"limited-partner-in-a-limited-partnership":      {},
}

// Classify maps a raw officer role to its register category. The second
// return is false for roles that belong to no register.
func Classify(rawRole string) (Category, bool) {
	c, ok := roleCategories[rawRole]
	return c, ok
}

// Parse validates a caller-supplied register type. Only the three literal
// category keys are accepted.
func Parse(registerType string) (Category, bool) {
	switch Category(registerType) {
	case Directors, Secretaries, LLPMembers:
		return Category(registerType), true
	}
	return "", false
}

// Roles returns the raw roles belonging to a category. The slice is a copy;
// callers may not mutate the table.
func Roles(c Category) []string {
	var roles []string
	for role, cat := range roleCategories {
		if cat == c {
			roles = append(roles, role)
		}
	}
	return roles
}

// IsValidRole reports whether a raw role is part of the fixed officer role
// vocabulary. Unknown roles are rejected before they reach storage.
func IsValidRole(rawRole string) bool {
	if _, ok := roleCategories[rawRole]; ok {
		return true
	}
	_, ok := nonRegisterRoles[rawRole]
	return ok
}
