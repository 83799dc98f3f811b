// Package models defines the stored shape of an officer appointment.
package models

import (
	"encoding/json"
	"time"
)

// AppointmentRecord is the stored representation of one officer appointment.
// (CompanyNumber, AppointmentID) is the unique key. DeltaAt is the opaque,
// lexically comparable ordering token carried by the source delta; it is never
// parsed, only compared.
type AppointmentRecord struct {
	CompanyNumber     string          `json:"company_number"`
	AppointmentID     string          `json:"appointment_id"`
	OfficerID         string          `json:"officer_id,omitempty"`
	PreviousOfficerID string          `json:"previous_officer_id,omitempty"`
	DeltaAt           string          `json:"delta_at"`
	OfficerRole       string          `json:"officer_role"`
	AppointedOn       *time.Time      `json:"appointed_on,omitempty"`
	ResignedOn        *time.Time      `json:"resigned_on,omitempty"`
	Surname           string          `json:"surname,omitempty"`
	Officer           json.RawMessage `json:"officer,omitempty"`
	UpdatedAt         time.Time       `json:"-"`
}

// IsActive reports whether the appointment is still held. Presence of a
// resignation date, not its value, drives the eligible filter.
func (r AppointmentRecord) IsActive() bool {
	return r.ResignedOn == nil
}
