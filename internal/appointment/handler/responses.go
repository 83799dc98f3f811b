package handler

import (
	"encoding/json"
	"time"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/service"
)

type admissionResponse struct {
	Stale          bool `json:"stale"`
	MergePublished bool `json:"merge_published,omitempty"`
}

type appointmentResponse struct {
	CompanyNumber string          `json:"company_number"`
	AppointmentID string          `json:"appointment_id"`
	OfficerID     string          `json:"officer_id,omitempty"`
	OfficerRole   string          `json:"officer_role"`
	AppointedOn   string          `json:"appointed_on,omitempty"`
	ResignedOn    string          `json:"resigned_on,omitempty"`
	Officer       json.RawMessage `json:"officer,omitempty"`
}

type officerListResponse struct {
	Items        []appointmentResponse `json:"items"`
	TotalResults int                   `json:"total_results"`
	StartIndex   int                   `json:"start_index"`
	ItemsPerPage int                   `json:"items_per_page"`
}

const dateLayout = "2006-01-02"

func fromRecord(record models.AppointmentRecord) appointmentResponse {
	return appointmentResponse{
		CompanyNumber: record.CompanyNumber,
		AppointmentID: record.AppointmentID,
		OfficerID:     record.OfficerID,
		OfficerRole:   record.OfficerRole,
		AppointedOn:   formatDate(record.AppointedOn),
		ResignedOn:    formatDate(record.ResignedOn),
		Officer:       record.Officer,
	}
}

func fromListResult(result *service.ListResult) officerListResponse {
	items := make([]appointmentResponse, 0, len(result.Items))
	for _, record := range result.Items {
		items = append(items, fromRecord(record))
	}
	return officerListResponse{
		Items:        items,
		TotalResults: result.TotalResults,
		StartIndex:   result.StartIndex,
		ItemsPerPage: result.ItemsPerPage,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
