// Package transform projects the external full-record delta payload into the
// stored appointment shape. Projection only; admission rules live in the
// service.
package transform

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"appointments-api/internal/appointment/models"
)

// ErrMissingWrapper is returned when the payload lacks the external or
// internal envelope. Nothing can be projected without both.
var ErrMissingWrapper = errors.New("transform: missing payload wrapper")

// FullRecordDelta is the inbound delta as produced by the upstream extract.
// ExternalData carries the officer as filed; InternalData carries the
// pipeline metadata, including the ordering token.
type FullRecordDelta struct {
	ExternalData *ExternalData `json:"external_data"`
	InternalData *InternalData `json:"internal_data"`
}

type ExternalData struct {
	OfficerRole        string       `json:"officer_role"`
	AppointedOn        string       `json:"appointed_on,omitempty"`
	ResignedOn         string       `json:"resigned_on,omitempty"`
	Title              string       `json:"title,omitempty"`
	Forename           string       `json:"forename,omitempty"`
	OtherForenames     string       `json:"other_forenames,omitempty"`
	Surname            string       `json:"surname,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	Occupation         string       `json:"occupation,omitempty"`
	CountryOfResidence string       `json:"country_of_residence,omitempty"`
	DateOfBirth        *DateOfBirth `json:"date_of_birth,omitempty"`
	ServiceAddress     *Address     `json:"service_address,omitempty"`
}

type InternalData struct {
	OfficerID         string `json:"officer_id"`
	PreviousOfficerID string `json:"previous_officer_id,omitempty"`
	DeltaAt           string `json:"delta_at"`
}

type DateOfBirth struct {
	Day   int `json:"day,omitempty"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type Address struct {
	Premises     string `json:"premises,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// officerDocument is the opaque officer detail persisted alongside the
// projected columns. The stores never look inside it.
type officerDocument struct {
	Title              string       `json:"title,omitempty"`
	Forename           string       `json:"forename,omitempty"`
	OtherForenames     string       `json:"other_forenames,omitempty"`
	Surname            string       `json:"surname,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	Occupation         string       `json:"occupation,omitempty"`
	CountryOfResidence string       `json:"country_of_residence,omitempty"`
	DateOfBirth        *DateOfBirth `json:"date_of_birth,omitempty"`
	ServiceAddress     *Address     `json:"service_address,omitempty"`
}

const dateLayout = "2006-01-02"

// Transform builds the stored record for the given key. It fails when either
// payload wrapper is absent or a date field does not parse; it never applies
// admission rules and never mutates stores.
func Transform(companyNumber, appointmentID string, d FullRecordDelta) (models.AppointmentRecord, error) {
	if d.ExternalData == nil || d.InternalData == nil {
		return models.AppointmentRecord{}, ErrMissingWrapper
	}

	appointedOn, err := parseDate(d.ExternalData.AppointedOn)
	if err != nil {
		return models.AppointmentRecord{}, fmt.Errorf("transform: appointed_on: %w", err)
	}
	resignedOn, err := parseDate(d.ExternalData.ResignedOn)
	if err != nil {
		return models.AppointmentRecord{}, fmt.Errorf("transform: resigned_on: %w", err)
	}

	officer, err := json.Marshal(officerDocument{
		Title:              d.ExternalData.Title,
		Forename:           d.ExternalData.Forename,
		OtherForenames:     d.ExternalData.OtherForenames,
		Surname:            d.ExternalData.Surname,
		Nationality:        d.ExternalData.Nationality,
		Occupation:         d.ExternalData.Occupation,
		CountryOfResidence: d.ExternalData.CountryOfResidence,
		DateOfBirth:        d.ExternalData.DateOfBirth,
		ServiceAddress:     d.ExternalData.ServiceAddress,
	})
	if err != nil {
		return models.AppointmentRecord{}, fmt.Errorf("transform: marshal officer: %w", err)
	}

	return models.AppointmentRecord{
		CompanyNumber: companyNumber,
		AppointmentID: appointmentID,
		OfficerID:     d.InternalData.OfficerID,
		DeltaAt:       d.InternalData.DeltaAt,
		OfficerRole:   d.ExternalData.OfficerRole,
		AppointedOn:   appointedOn,
		ResignedOn:    resignedOn,
		Surname:       d.ExternalData.Surname,
		Officer:       officer,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
