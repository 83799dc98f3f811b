//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/orderby"
	"appointments-api/internal/appointment/store"
	"appointments-api/pkg/platform/sentinel"
	"appointments-api/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgresStore(s.postgres.Pool)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "appointments"))
}

func record(companyNumber, appointmentID, deltaAt string) models.AppointmentRecord {
	return models.AppointmentRecord{
		CompanyNumber: companyNumber,
		AppointmentID: appointmentID,
		OfficerID:     "O1",
		DeltaAt:       deltaAt,
		OfficerRole:   "director",
		Surname:       "Smith",
		Officer:       json.RawMessage(`{"surname":"Smith"}`),
	}
}

func (s *PostgresStoreSuite) TestGetPutRoundTrip() {
	ctx := context.Background()
	appointed := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	in := record("CN1", "A1", "2024-01-01T00:00:00Z")
	in.AppointedOn = &appointed
	s.Require().NoError(s.store.Put(ctx, in))

	out, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("O1", out.OfficerID)
	s.Equal("2024-01-01T00:00:00Z", out.DeltaAt)
	s.Require().NotNil(out.AppointedOn)
	s.Equal(appointed, out.AppointedOn.UTC())
	s.JSONEq(`{"surname":"Smith"}`, string(out.Officer))
}

func (s *PostgresStoreSuite) TestGetAbsentRecord() {
	_, err := s.store.Get(context.Background(), "CN1", "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPutIsFullReplace() {
	ctx := context.Background()
	appointed := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	first := record("CN1", "A1", "2024-01-01T00:00:00Z")
	first.AppointedOn = &appointed
	s.Require().NoError(s.store.Put(ctx, first))

	second := record("CN1", "A1", "2024-01-02T00:00:00Z")
	second.Surname = "Jones"
	s.Require().NoError(s.store.Put(ctx, second))

	out, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("Jones", out.Surname)
	// A replace carries no fields over from the prior version.
	s.Nil(out.AppointedOn)
}

func (s *PostgresStoreSuite) TestPutIgnoresOlderToken() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, record("CN1", "A1", "2024-01-05T00:00:00Z")))

	older := record("CN1", "A1", "2024-01-01T00:00:00Z")
	older.Surname = "Regressed"
	s.Require().NoError(s.store.Put(ctx, older))

	out, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("2024-01-05T00:00:00Z", out.DeltaAt)
	s.Equal("Smith", out.Surname)
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, record("CN1", "A1", "2024-01-01T00:00:00Z")))
	s.Require().NoError(s.store.Delete(ctx, "CN1", "A1"))

	_, err := s.store.Get(ctx, "CN1", "A1")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Delete(ctx, "CN1", "A1"), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFindByCompanyFilters() {
	ctx := context.Background()
	resigned := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	director := record("CN1", "A1", "1")
	secretary := record("CN1", "A2", "1")
	secretary.OfficerRole = "secretary"
	former := record("CN1", "A3", "1")
	former.ResignedOn = &resigned
	otherCompany := record("CN2", "B1", "1")

	for _, r := range []models.AppointmentRecord{director, secretary, former, otherCompany} {
		s.Require().NoError(s.store.Put(ctx, r))
	}

	s.Run("company scoping", func() {
		items, total, err := s.store.FindByCompany(ctx, "CN1", store.Query{Limit: 10})
		s.Require().NoError(err)
		s.Equal(3, total)
		s.Len(items, 3)
	})

	s.Run("active only", func() {
		items, total, err := s.store.FindByCompany(ctx, "CN1", store.Query{ActiveOnly: true, Limit: 10})
		s.Require().NoError(err)
		s.Equal(2, total)
		for _, item := range items {
			s.Nil(item.ResignedOn)
		}
	})

	s.Run("role set", func() {
		items, total, err := s.store.FindByCompany(ctx, "CN1", store.Query{
			Roles: []string{"secretary", "corporate-secretary"},
			Limit: 10,
		})
		s.Require().NoError(err)
		s.Equal(1, total)
		s.Require().Len(items, 1)
		s.Equal("A2", items[0].AppointmentID)
	})

	s.Run("unknown company is an empty page", func() {
		items, total, err := s.store.FindByCompany(ctx, "NOPE", store.Query{Limit: 10})
		s.Require().NoError(err)
		s.Zero(total)
		s.Empty(items)
	})
}

func (s *PostgresStoreSuite) TestFindByCompanyOrdering() {
	ctx := context.Background()

	dated := func(appointmentID, surname string, appointed *time.Time) models.AppointmentRecord {
		r := record("CN1", appointmentID, "1")
		r.Surname = surname
		r.AppointedOn = appointed
		return r
	}
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Put(ctx, dated("A3", "Young", &mar)))
	s.Require().NoError(s.store.Put(ctx, dated("A1", "Adams", nil)))
	s.Require().NoError(s.store.Put(ctx, dated("A2", "Brown", &jan)))

	s.Run("appointed_on ascending with missing dates last", func() {
		items, _, err := s.store.FindByCompany(ctx, "CN1", store.Query{
			OrderBy: orderby.Order{Field: orderby.FieldAppointedOn},
			Limit:   10,
		})
		s.Require().NoError(err)
		s.Require().Len(items, 3)
		s.Equal("A2", items[0].AppointmentID)
		s.Equal("A3", items[1].AppointmentID)
		s.Equal("A1", items[2].AppointmentID)
	})

	s.Run("surname ascending", func() {
		items, _, err := s.store.FindByCompany(ctx, "CN1", store.Query{
			OrderBy: orderby.Order{Field: orderby.FieldSurname},
			Limit:   10,
		})
		s.Require().NoError(err)
		s.Require().Len(items, 3)
		s.Equal("Adams", items[0].Surname)
		s.Equal("Brown", items[1].Surname)
		s.Equal("Young", items[2].Surname)
	})
}

func (s *PostgresStoreSuite) TestFindByCompanyPagination() {
	ctx := context.Background()
	for _, id := range []string{"A1", "A2", "A3", "A4", "A5"} {
		s.Require().NoError(s.store.Put(ctx, record("CN1", id, "1")))
	}

	page1, total, err := s.store.FindByCompany(ctx, "CN1", store.Query{Skip: 0, Limit: 2})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(page1, 2)

	page2, _, err := s.store.FindByCompany(ctx, "CN1", store.Query{Skip: 2, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page2, 2)

	// Adjacent windows neither overlap nor skip.
	s.Equal("A1", page1[0].AppointmentID)
	s.Equal("A2", page1[1].AppointmentID)
	s.Equal("A3", page2[0].AppointmentID)
	s.Equal("A4", page2[1].AppointmentID)

	past, _, err := s.store.FindByCompany(ctx, "CN1", store.Query{Skip: 100, Limit: 2})
	s.Require().NoError(err)
	s.Empty(past)
}
