// Package merge publishes officer merge events to the event transport.
package merge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"appointments-api/internal/merge/metrics"
	"appointments-api/pkg/platform/sentinel"
	"appointments-api/pkg/requestcontext"
)

// Producer is the slice of the kgo client the publisher needs. *kgo.Client
// satisfies it; tests substitute a fake.
type Producer interface {
	ProduceSync(ctx context.Context, records ...*kgo.Record) kgo.ProduceResults
}

// Publisher produces merge events to a single topic, keyed by officer ID so
// events for one officer land on one partition. Publish blocks until broker
// acknowledgment or the configured timeout; there is no internal retry —
// redelivering the originating delta is the caller's recovery path.
type Publisher struct {
	producer Producer
	topic    string
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures optional publisher collaborators.
type Option func(*Publisher)

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Publisher) { p.metrics = m }
}

// NewPublisher constructs a merge publisher.
func NewPublisher(producer Producer, topic string, timeout time.Duration, logger *slog.Logger, opts ...Option) (*Publisher, error) {
	if producer == nil {
		return nil, errors.New("merge: producer is required")
	}
	if topic == "" {
		return nil, errors.New("merge: topic is required")
	}
	if timeout <= 0 {
		return nil, errors.New("merge: publish timeout must be positive")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Publisher{
		producer: producer,
		topic:    topic,
		timeout:  timeout,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Publish delivers one merge event. Any transport failure, broker rejection,
// or acknowledgment timeout surfaces as sentinel.ErrUnavailable; the record
// may already be in storage by then, which callers must treat as a partial
// failure to reconcile.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("merge: marshal event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.OfficerID),
		Value: payload,
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	if err := p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		p.metrics.IncrementOutcome("failed")
		return fmt.Errorf("merge: publish to %s: %w: %w", p.topic, sentinel.ErrUnavailable, err)
	}
	p.metrics.IncrementOutcome("published")
	p.metrics.ObservePublishLatency(time.Since(start))

	p.logger.InfoContext(ctx, "officer merge published",
		"context_id", event.ContextID,
		"officer_id", event.OfficerID,
		"previous_officer_id", event.PreviousOfficerID,
		"topic", p.topic,
	)
	return nil
}

// LogPublisher drops merge events after logging them. It stands in for the
// Kafka publisher when no brokers are configured (dev and test only).
type LogPublisher struct {
	Logger *slog.Logger
}

func (l *LogPublisher) Publish(ctx context.Context, event Event) error {
	l.Logger.WarnContext(ctx, "merge publisher not configured, dropping event",
		"context_id", requestcontext.ContextID(ctx),
		"officer_id", event.OfficerID,
	)
	return nil
}
