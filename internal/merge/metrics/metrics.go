package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the merge publisher.
type Metrics struct {
	// Publish outcomes by result
	PublishOutcome *prometheus.CounterVec

	// Publish latency including broker acknowledgment
	PublishLatency prometheus.Histogram
}

// New creates a new Metrics instance with all merge publisher metrics registered.
func New() *Metrics {
	return &Metrics{
		PublishOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointments_merge_publish_total",
			Help: "Total officer merge publish attempts by result",
		}, []string{"result"}), // result: "published", "failed"

		PublishLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "appointments_merge_publish_duration_seconds",
			Help:    "Duration of merge event publishes including acknowledgment wait",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementOutcome records a publish attempt result.
func (m *Metrics) IncrementOutcome(result string) {
	if m != nil {
		m.PublishOutcome.WithLabelValues(result).Inc()
	}
}

// ObservePublishLatency records how long a publish waited for acknowledgment.
func (m *Metrics) ObservePublishLatency(d time.Duration) {
	if m != nil {
		m.PublishLatency.Observe(d.Seconds())
	}
}
