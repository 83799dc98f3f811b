package merge

// Event notifies downstream systems that an appointment's resolved officer
// identity changed, so dependent officer identifiers can be reconciled.
// Events are fire-and-forget beyond the synchronous publish acknowledgment;
// nothing is persisted locally.
type Event struct {
	OfficerID         string `json:"officer_id"`
	PreviousOfficerID string `json:"previous_officer_id,omitempty"`
	ContextID         string `json:"context_id"`
}
