package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the appointment module.
type Metrics struct {
	// Delta admission outcomes
	DeltaOutcome *prometheus.CounterVec

	// Delete outcomes
	DeleteOutcome *prometheus.CounterVec

	// Listing query latency
	ListLatency prometheus.Histogram
}

// New creates a new Metrics instance with all appointment module metrics registered.
func New() *Metrics {
	return &Metrics{
		DeltaOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointments_delta_total",
			Help: "Total delta admissions by outcome",
		}, []string{"outcome"}), // outcome: "applied", "stale", "failed"

		DeleteOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointments_delete_total",
			Help: "Total appointment deletions by outcome",
		}, []string{"outcome"}), // outcome: "deleted", "stale", "not_found", "failed"

		ListLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "appointments_list_duration_seconds",
			Help:    "Duration of officer listing queries",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementDelta records a delta admission outcome.
func (m *Metrics) IncrementDelta(outcome string) {
	if m != nil {
		m.DeltaOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementDelete records a deletion outcome.
func (m *Metrics) IncrementDelete(outcome string) {
	if m != nil {
		m.DeleteOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveListLatency records the duration of a listing query.
func (m *Metrics) ObserveListLatency(d time.Duration) {
	if m != nil {
		m.ListLatency.Observe(d.Seconds())
	}
}
