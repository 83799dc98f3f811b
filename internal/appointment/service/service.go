// Package service orchestrates delta admission, appointment deletion, and the
// officer listing query.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,MergePublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"appointments-api/internal/appointment/delta"
	"appointments-api/internal/appointment/metrics"
	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/orderby"
	"appointments-api/internal/appointment/register"
	"appointments-api/internal/appointment/store"
	"appointments-api/internal/appointment/transform"
	"appointments-api/internal/merge"
	dErrors "appointments-api/pkg/domain-errors"
	"appointments-api/pkg/platform/sentinel"
	"appointments-api/pkg/requestcontext"
)

// Store is the document-store collaborator. Implementations return
// sentinel.ErrNotFound for absent keys.
type Store interface {
	Get(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error)
	Put(ctx context.Context, record models.AppointmentRecord) error
	Delete(ctx context.Context, companyNumber, appointmentID string) error
	FindByCompany(ctx context.Context, companyNumber string, q store.Query) ([]models.AppointmentRecord, int, error)
}

// MergePublisher delivers officer merge events, blocking until acknowledgment
// or timeout.
type MergePublisher interface {
	Publish(ctx context.Context, event merge.Event) error
}

const (
	defaultItemsPerPage = 35
	maxItemsPerPage     = 100
)

// Service wires the admission pipeline and query engine together. Each
// request is handled independently; the store is the only cross-request
// coordination point.
type Service struct {
	store     Store
	writes    Store
	reads     Store
	publisher MergePublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer

	defaultPageSize int
	maxPageSize     int
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRecordCache routes single-record lookups and all mutations through the
// cache decorator, so every Put and Delete invalidates its cached copy.
// Admission always reads the primary store so staleness decisions never run
// against cached state.
func WithRecordCache(cached Store) Option {
	return func(s *Service) {
		s.reads = cached
		s.writes = cached
	}
}

// WithPageLimits overrides the default and maximum items_per_page.
func WithPageLimits(defaultSize, maxSize int) Option {
	return func(s *Service) {
		s.defaultPageSize = defaultSize
		s.maxPageSize = maxSize
	}
}

// New constructs the appointment service.
func New(st Store, publisher MergePublisher, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("appointment store is required")
	}
	if publisher == nil {
		return nil, errors.New("merge publisher is required")
	}
	s := &Service{
		store:           st,
		writes:          st,
		reads:           st,
		publisher:       publisher,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:          otel.Tracer("appointments-api/appointment"),
		defaultPageSize: defaultItemsPerPage,
		maxPageSize:     maxItemsPerPage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AdmissionResult reports how a delta was handled. Stale deltas are a
// deliberate no-op, not a failure.
type AdmissionResult struct {
	Stale          bool
	MergePublished bool
}

// AdmitDelta runs the admission pipeline for one incoming delta: fetch the
// stored record, apply the staleness gate, transform, upsert, and notify the
// merge publisher when the resolved officer identity changed. Transformation
// failures abort before any store mutation. A publish failure surfaces as
// upstream_unavailable even though the record is already stored; redelivering
// the delta is the recovery path.
func (s *Service) AdmitDelta(ctx context.Context, companyNumber, appointmentID string, payload transform.FullRecordDelta) (AdmissionResult, error) {
	ctx, span := s.tracer.Start(ctx, "appointment.admit",
		trace.WithAttributes(attribute.String("company_number", companyNumber)))
	defer span.End()

	contextID := requestcontext.ContextID(ctx)

	if payload.InternalData == nil || payload.ExternalData == nil {
		s.metrics.IncrementDelta("failed")
		return AdmissionResult{}, dErrors.New(dErrors.CodeUnprocessable, "delta payload is missing a required wrapper")
	}
	if payload.InternalData.DeltaAt == "" {
		s.metrics.IncrementDelta("failed")
		return AdmissionResult{}, dErrors.New(dErrors.CodeBadRequest, "delta_at is required")
	}

	existing, exists, err := s.fetch(ctx, companyNumber, appointmentID)
	if err != nil {
		s.metrics.IncrementDelta("failed")
		return AdmissionResult{}, err
	}

	if exists && delta.IsStale(payload.InternalData.DeltaAt, existing.DeltaAt) {
		s.metrics.IncrementDelta("stale")
		s.logger.InfoContext(ctx, "stale delta ignored",
			"context_id", contextID,
			"company_number", companyNumber,
			"appointment_id", appointmentID,
			"incoming_delta_at", payload.InternalData.DeltaAt,
			"stored_delta_at", existing.DeltaAt,
		)
		return AdmissionResult{Stale: true}, nil
	}

	record, err := transform.Transform(companyNumber, appointmentID, payload)
	if err != nil {
		s.metrics.IncrementDelta("failed")
		return AdmissionResult{}, dErrors.Wrap(dErrors.CodeUnprocessable, "delta transformation failed", err)
	}
	if !register.IsValidRole(record.OfficerRole) {
		s.metrics.IncrementDelta("failed")
		return AdmissionResult{}, dErrors.New(dErrors.CodeUnprocessable, "unrecognized officer role: "+record.OfficerRole)
	}

	officerChanged := (exists && existing.OfficerID != record.OfficerID) ||
		(!exists && record.OfficerID != "")
	if exists {
		if officerChanged {
			record.PreviousOfficerID = existing.OfficerID
		} else {
			record.PreviousOfficerID = existing.PreviousOfficerID
		}
	}

	if err := s.writes.Put(ctx, record); err != nil {
		s.metrics.IncrementDelta("failed")
		return AdmissionResult{}, dErrors.Wrap(dErrors.CodeInternal, "store appointment", err)
	}
	s.metrics.IncrementDelta("applied")
	s.logger.InfoContext(ctx, "delta applied",
		"context_id", contextID,
		"company_number", companyNumber,
		"appointment_id", appointmentID,
		"delta_at", record.DeltaAt,
	)

	result := AdmissionResult{}
	if officerChanged {
		event := merge.Event{
			OfficerID:         record.OfficerID,
			PreviousOfficerID: record.PreviousOfficerID,
			ContextID:         contextID,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// The record is already stored; callers see this partial failure
			// as upstream_unavailable and can redeliver the delta.
			return result, dErrors.Wrap(dErrors.CodeUnavailable, "officer merge notification failed", err)
		}
		result.MergePublished = true
	}
	return result, nil
}

// DeleteResult reports how a delete request was handled.
type DeleteResult struct {
	Stale bool
}

// DeleteAppointment physically removes the record when the delete request's
// token passes the same staleness gate as admission; an equal token rejects.
func (s *Service) DeleteAppointment(ctx context.Context, companyNumber, appointmentID, deltaAt string) (DeleteResult, error) {
	if deltaAt == "" {
		return DeleteResult{}, dErrors.New(dErrors.CodeBadRequest, "delta_at is required")
	}

	existing, exists, err := s.fetch(ctx, companyNumber, appointmentID)
	if err != nil {
		s.metrics.IncrementDelete("failed")
		return DeleteResult{}, err
	}
	if !exists {
		s.metrics.IncrementDelete("not_found")
		return DeleteResult{}, dErrors.New(dErrors.CodeNotFound, "appointment not found")
	}

	if delta.IsStale(deltaAt, existing.DeltaAt) {
		s.metrics.IncrementDelete("stale")
		s.logger.InfoContext(ctx, "stale delete ignored",
			"context_id", requestcontext.ContextID(ctx),
			"company_number", companyNumber,
			"appointment_id", appointmentID,
			"incoming_delta_at", deltaAt,
			"stored_delta_at", existing.DeltaAt,
		)
		return DeleteResult{Stale: true}, nil
	}

	if err := s.writes.Delete(ctx, companyNumber, appointmentID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementDelete("not_found")
			return DeleteResult{}, dErrors.New(dErrors.CodeNotFound, "appointment not found")
		}
		s.metrics.IncrementDelete("failed")
		return DeleteResult{}, dErrors.Wrap(dErrors.CodeInternal, "delete appointment", err)
	}
	s.metrics.IncrementDelete("deleted")
	s.logger.InfoContext(ctx, "appointment deleted",
		"context_id", requestcontext.ContextID(ctx),
		"company_number", companyNumber,
		"appointment_id", appointmentID,
	)
	return DeleteResult{}, nil
}

// ListRequest carries the listing query surface.
type ListRequest struct {
	CompanyNumber string
	ActiveOnly    bool
	RegisterView  bool
	RegisterType  string
	OrderBy       string
	StartIndex    int
	ItemsPerPage  int
}

// ListResult is one page of matching appointments.
type ListResult struct {
	Items        []models.AppointmentRecord
	TotalResults int
	StartIndex   int
	ItemsPerPage int
}

// List answers the filtered, sorted, paginated officer listing. An unknown
// company yields an empty page, not an error; an invalid register type with
// register_view set is rejected before the store is queried.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	ctx, span := s.tracer.Start(ctx, "appointment.list",
		trace.WithAttributes(attribute.String("company_number", req.CompanyNumber)))
	defer span.End()

	if req.StartIndex < 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "start_index must not be negative")
	}
	if req.ItemsPerPage <= 0 {
		req.ItemsPerPage = s.defaultPageSize
	}
	if req.ItemsPerPage > s.maxPageSize {
		req.ItemsPerPage = s.maxPageSize
	}

	var roles []string
	if req.RegisterView {
		category, ok := register.Parse(req.RegisterType)
		if !ok {
			return nil, dErrors.New(dErrors.CodeBadRequest, "invalid register_type: "+req.RegisterType)
		}
		roles = register.Roles(category)
	}

	start := time.Now()
	items, total, err := s.store.FindByCompany(ctx, req.CompanyNumber, store.Query{
		ActiveOnly: req.ActiveOnly,
		Roles:      roles,
		OrderBy:    orderby.Resolve(req.OrderBy),
		Skip:       req.StartIndex,
		Limit:      req.ItemsPerPage,
	})
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list appointments", err)
	}
	s.metrics.ObserveListLatency(time.Since(start))

	return &ListResult{
		Items:        items,
		TotalResults: total,
		StartIndex:   req.StartIndex,
		ItemsPerPage: req.ItemsPerPage,
	}, nil
}

// GetAppointment looks up a single record, through the read store when one is
// configured.
func (s *Service) GetAppointment(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error) {
	record, err := s.reads.Get(ctx, companyNumber, appointmentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.AppointmentRecord{}, dErrors.New(dErrors.CodeNotFound, "appointment not found")
		}
		return models.AppointmentRecord{}, dErrors.Wrap(dErrors.CodeInternal, "get appointment", err)
	}
	return record, nil
}

// fetch reads the stored record, mapping absence to a plain (zero, false).
func (s *Service) fetch(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, bool, error) {
	record, err := s.store.Get(ctx, companyNumber, appointmentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.AppointmentRecord{}, false, nil
		}
		return models.AppointmentRecord{}, false, dErrors.Wrap(dErrors.CodeInternal, "fetch appointment", err)
	}
	return record, true, nil
}
