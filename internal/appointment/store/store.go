// Package store persists appointment records. Implementations are
// interface-driven so the service can run against in-memory, Postgres, or a
// cached composition without rewiring business code.
package store

import (
	"context"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/orderby"
)

// Query narrows and orders a company listing. Predicate order matches the
// query engine: company equality is implicit, ActiveOnly requires the absence
// of a resignation date, Roles (when non-empty) restricts officer_role to the
// given set.
type Query struct {
	ActiveOnly bool
	Roles      []string
	OrderBy    orderby.Order
	Skip       int
	Limit      int
}

// Store is the document-store collaborator for appointment records.
// Get and Delete return sentinel.ErrNotFound (possibly wrapped) when no
// record exists for the key. Put is a full replace, create-if-absent.
// FindByCompany returns the requested page plus the total match count.
type Store interface {
	Get(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error)
	Put(ctx context.Context, record models.AppointmentRecord) error
	Delete(ctx context.Context, companyNumber, appointmentID string) error
	FindByCompany(ctx context.Context, companyNumber string, q Query) ([]models.AppointmentRecord, int, error)
}
