// Package httptransport assembles the service router: correlation middleware,
// operational endpoints, and the appointment API surface.
package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"appointments-api/internal/appointment/handler"
	"appointments-api/pkg/platform/httputil"
	"appointments-api/pkg/platform/middleware/requestid"
)

// HealthCheck reports one dependency's availability.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// NewRouter wires all endpoints. Business endpoints register themselves; only
// operational plumbing lives here.
func NewRouter(appointments *handler.Handler, checks ...HealthCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthcheck", handleHealthcheck(checks))

	appointments.Register(r)
	return r
}

func handleHealthcheck(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]string{"status": "UP"}
		for _, c := range checks {
			if err := c.Check(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "DOWN"
				body[c.Name] = err.Error()
			}
		}
		httputil.WriteJSON(w, status, body)
	}
}
