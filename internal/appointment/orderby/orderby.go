// Package orderby resolves caller-facing order keys into concrete orderings
// for the appointment listing query.
package orderby

// Field names a sortable storage field.
type Field string

const (
	FieldAppointedOn   Field = "appointed_on"
	FieldResignedOn    Field = "resigned_on"
	FieldSurname       Field = "surname"
	FieldAppointmentID Field = "appointment_id"
)

// Order is a resolved field plus direction.
type Order struct {
	Field      Field
	Descending bool
}

// Default keeps pagination stable when no order key is supplied: appointment
// ID ascending. Stores additionally tie-break every ordering on appointment ID.
var Default = Order{Field: FieldAppointmentID}

// Resolve maps an order key to its ordering. Absent or unrecognized keys fall
// back to the default; resolution never fails.
func Resolve(orderKey string) Order {
	switch orderKey {
	case "appointed_on":
		return Order{Field: FieldAppointedOn}
	case "resigned_on":
		return Order{Field: FieldResignedOn}
	case "surname":
		return Order{Field: FieldSurname}
	default:
		return Default
	}
}
