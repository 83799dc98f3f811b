// Package handler is the thin HTTP layer for appointments. It decodes and
// validates URL surface, delegates to the service, and renders the shared
// error envelope; no business logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/service"
	"appointments-api/internal/appointment/transform"
	dErrors "appointments-api/pkg/domain-errors"
	"appointments-api/pkg/platform/httputil"
	"appointments-api/pkg/requestcontext"
)

// Service defines the interface for appointment operations.
type Service interface {
	AdmitDelta(ctx context.Context, companyNumber, appointmentID string, payload transform.FullRecordDelta) (service.AdmissionResult, error)
	DeleteAppointment(ctx context.Context, companyNumber, appointmentID, deltaAt string) (service.DeleteResult, error)
	List(ctx context.Context, req service.ListRequest) (*service.ListResult, error)
	GetAppointment(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error)
}

// Handler wires appointment endpoints to the appointment service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an appointment handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts appointment endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Put("/company/{company_number}/appointments/{appointment_id}/full_record", h.HandleAdmitDelta)
	r.Delete("/company/{company_number}/appointments/{appointment_id}/full_record", h.HandleDelete)
	r.Get("/company/{company_number}/appointments/{appointment_id}", h.HandleGetAppointment)
	r.Get("/company/{company_number}/officers", h.HandleListOfficers)
}

// HandleAdmitDelta handles PUT .../full_record requests.
func (h *Handler) HandleAdmitDelta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contextID := requestcontext.ContextID(ctx)
	companyNumber := chi.URLParam(r, "company_number")
	appointmentID := chi.URLParam(r, "appointment_id")
	start := requestcontext.Now(ctx)

	payload, ok := httputil.DecodeAndPrepare[transform.FullRecordDelta](w, r, h.logger, ctx, contextID)
	if !ok {
		return
	}

	result, err := h.service.AdmitDelta(ctx, companyNumber, appointmentID, payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "delta admission failed",
			"context_id", contextID,
			"company_number", companyNumber,
			"appointment_id", appointmentID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "delta admission handled",
		"context_id", contextID,
		"company_number", companyNumber,
		"appointment_id", appointmentID,
		"stale", result.Stale,
		"merge_published", result.MergePublished,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// A stale delta is a deliberate no-op, reported as success so the
	// originating system does not redeliver.
	httputil.WriteJSON(w, http.StatusOK, admissionResponse{
		Stale:          result.Stale,
		MergePublished: result.MergePublished,
	})
}

// HandleDelete handles DELETE .../full_record requests. The staleness token
// arrives as the delta_at query parameter.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyNumber := chi.URLParam(r, "company_number")
	appointmentID := chi.URLParam(r, "appointment_id")
	deltaAt := r.URL.Query().Get("delta_at")

	result, err := h.service.DeleteAppointment(ctx, companyNumber, appointmentID, deltaAt)
	if err != nil {
		h.logger.ErrorContext(ctx, "appointment delete failed",
			"context_id", requestcontext.ContextID(ctx),
			"company_number", companyNumber,
			"appointment_id", appointmentID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if result.Stale {
		httputil.WriteJSON(w, http.StatusOK, admissionResponse{Stale: true})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetAppointment handles GET /company/{company_number}/appointments/{appointment_id}.
func (h *Handler) HandleGetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyNumber := chi.URLParam(r, "company_number")
	appointmentID := chi.URLParam(r, "appointment_id")

	record, err := h.service.GetAppointment(ctx, companyNumber, appointmentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromRecord(record))
}

// HandleListOfficers handles GET /company/{company_number}/officers.
func (h *Handler) HandleListOfficers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyNumber := chi.URLParam(r, "company_number")

	req, err := parseListRequest(companyNumber, r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.List(ctx, req)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "officer listing failed",
				"context_id", requestcontext.ContextID(ctx),
				"company_number", companyNumber,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromListResult(result))
}
