package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/orderby"
	"appointments-api/pkg/platform/sentinel"
)

// PostgresStore persists appointment records with projected columns for
// everything the query engine filters or sorts on; the rest of the officer
// payload is carried opaquely in a jsonb column.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS appointments (
	company_number      TEXT        NOT NULL,
	appointment_id      TEXT        NOT NULL,
	officer_id          TEXT        NOT NULL DEFAULT '',
	previous_officer_id TEXT        NOT NULL DEFAULT '',
	delta_at            TEXT        NOT NULL,
	officer_role        TEXT        NOT NULL,
	appointed_on        DATE,
	resigned_on         DATE,
	surname             TEXT        NOT NULL DEFAULT '',
	officer             JSONB,
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (company_number, appointment_id)
);
CREATE INDEX IF NOT EXISTS idx_appointments_company_role
	ON appointments (company_number, officer_role);
`

// EnsureSchema creates the appointments table if missing. Used by dev mode
// and integration tests; production deployments run migrations out of band.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure appointments schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error) {
	const query = `
		SELECT company_number, appointment_id, officer_id, previous_officer_id,
		       delta_at, officer_role, appointed_on, resigned_on, surname, officer, updated_at
		FROM appointments
		WHERE company_number = $1 AND appointment_id = $2
	`
	record, err := scanRecord(s.pool.QueryRow(ctx, query, companyNumber, appointmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.AppointmentRecord{}, sentinel.ErrNotFound
		}
		return models.AppointmentRecord{}, fmt.Errorf("get appointment: %w", err)
	}
	return record, nil
}

// Put is a full replace keyed on (company_number, appointment_id). The update
// arm only fires when the incoming token is strictly newer than the stored
// one, so a fetch/write race between concurrent deltas cannot regress an
// already-newer record.
func (s *PostgresStore) Put(ctx context.Context, record models.AppointmentRecord) error {
	const query = `
		INSERT INTO appointments (
			company_number, appointment_id, officer_id, previous_officer_id,
			delta_at, officer_role, appointed_on, resigned_on, surname, officer, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (company_number, appointment_id) DO UPDATE SET
			officer_id          = EXCLUDED.officer_id,
			previous_officer_id = EXCLUDED.previous_officer_id,
			delta_at            = EXCLUDED.delta_at,
			officer_role        = EXCLUDED.officer_role,
			appointed_on        = EXCLUDED.appointed_on,
			resigned_on         = EXCLUDED.resigned_on,
			surname             = EXCLUDED.surname,
			officer             = EXCLUDED.officer,
			updated_at          = now()
		WHERE appointments.delta_at < EXCLUDED.delta_at
	`
	_, err := s.pool.Exec(ctx, query,
		record.CompanyNumber,
		record.AppointmentID,
		record.OfficerID,
		record.PreviousOfficerID,
		record.DeltaAt,
		record.OfficerRole,
		record.AppointedOn,
		record.ResignedOn,
		record.Surname,
		[]byte(record.Officer),
	)
	if err != nil {
		return fmt.Errorf("put appointment: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, companyNumber, appointmentID string) error {
	const query = `DELETE FROM appointments WHERE company_number = $1 AND appointment_id = $2`
	tag, err := s.pool.Exec(ctx, query, companyNumber, appointmentID)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByCompany(ctx context.Context, companyNumber string, q Query) ([]models.AppointmentRecord, int, error) {
	where := "WHERE company_number = $1"
	args := []any{companyNumber}
	if q.ActiveOnly {
		where += " AND resigned_on IS NULL"
	}
	if len(q.Roles) > 0 {
		args = append(args, q.Roles)
		where += fmt.Sprintf(" AND officer_role = ANY($%d)", len(args))
	}

	var total int
	countQuery := "SELECT count(*) FROM appointments " + where
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT company_number, appointment_id, officer_id, previous_officer_id,
		       delta_at, officer_role, appointed_on, resigned_on, surname, officer, updated_at
		FROM appointments
		%s
		ORDER BY %s, appointment_id ASC
		OFFSET $%d LIMIT $%d
	`, where, orderClause(q.OrderBy), len(args)+1, len(args)+2)
	args = append(args, q.Skip, q.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var records []models.AppointmentRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan appointment: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	return records, total, nil
}

// orderClause maps the resolved ordering onto the whitelisted column names.
// Never interpolates caller input.
func orderClause(order orderby.Order) string {
	column := "appointment_id"
	switch order.Field {
	case orderby.FieldAppointedOn:
		column = "appointed_on"
	case orderby.FieldResignedOn:
		column = "resigned_on"
	case orderby.FieldSurname:
		column = "surname"
	}
	direction := "ASC"
	if order.Descending {
		direction = "DESC"
	}
	return column + " " + direction
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.AppointmentRecord, error) {
	var record models.AppointmentRecord
	var officer []byte
	err := row.Scan(
		&record.CompanyNumber,
		&record.AppointmentID,
		&record.OfficerID,
		&record.PreviousOfficerID,
		&record.DeltaAt,
		&record.OfficerRole,
		&record.AppointedOn,
		&record.ResignedOn,
		&record.Surname,
		&officer,
		&record.UpdatedAt,
	)
	if err != nil {
		return models.AppointmentRecord{}, err
	}
	record.Officer = officer
	return record, nil
}
