package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/orderby"
	"appointments-api/pkg/platform/sentinel"
)

// InMemoryStore keeps records in a nested map keyed by company then
// appointment. It backs unit tests and the no-Postgres dev mode; it favors
// clarity over performance.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]map[string]models.AppointmentRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]map[string]models.AppointmentRecord)}
}

func (s *InMemoryStore) Get(_ context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.records[companyNumber][appointmentID]; ok {
		return record, nil
	}
	return models.AppointmentRecord{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) Put(_ context.Context, record models.AppointmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	company, ok := s.records[record.CompanyNumber]
	if !ok {
		company = make(map[string]models.AppointmentRecord)
		s.records[record.CompanyNumber] = company
	}
	record.UpdatedAt = time.Now()
	company[record.AppointmentID] = record
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, companyNumber, appointmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[companyNumber][appointmentID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records[companyNumber], appointmentID)
	return nil
}

func (s *InMemoryStore) FindByCompany(_ context.Context, companyNumber string, q Query) ([]models.AppointmentRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roleSet := make(map[string]struct{}, len(q.Roles))
	for _, role := range q.Roles {
		roleSet[role] = struct{}{}
	}

	var matched []models.AppointmentRecord
	for _, record := range s.records[companyNumber] {
		if q.ActiveOnly && !record.IsActive() {
			continue
		}
		if len(roleSet) > 0 {
			if _, ok := roleSet[record.OfficerRole]; !ok {
				continue
			}
		}
		matched = append(matched, record)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return less(matched[i], matched[j], q.OrderBy)
	})

	total := len(matched)
	if q.Skip >= total {
		return nil, total, nil
	}
	matched = matched[q.Skip:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

// less orders two records by the resolved field, records without a value for
// the field sorting last, with an appointment-ID tie-break so pagination is
// stable across requests.
func less(a, b models.AppointmentRecord, order orderby.Order) bool {
	cmp := compareField(a, b, order.Field)
	if order.Descending {
		cmp = -cmp
	}
	if cmp != 0 {
		return cmp < 0
	}
	return a.AppointmentID < b.AppointmentID
}

func compareField(a, b models.AppointmentRecord, field orderby.Field) int {
	switch field {
	case orderby.FieldAppointedOn:
		return compareDates(a.AppointedOn, b.AppointedOn)
	case orderby.FieldResignedOn:
		return compareDates(a.ResignedOn, b.ResignedOn)
	case orderby.FieldSurname:
		return compareStrings(a.Surname, b.Surname)
	default:
		return compareStrings(a.AppointmentID, b.AppointmentID)
	}
}

func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
