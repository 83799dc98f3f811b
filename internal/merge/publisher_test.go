package merge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"appointments-api/pkg/platform/sentinel"
)

// fakeProducer records produced records and answers with a fixed error.
type fakeProducer struct {
	produced []*kgo.Record
	err      error
	deadline bool
}

func (f *fakeProducer) ProduceSync(ctx context.Context, records ...*kgo.Record) kgo.ProduceResults {
	f.produced = append(f.produced, records...)
	_, f.deadline = ctx.Deadline()

	results := make(kgo.ProduceResults, 0, len(records))
	for _, r := range records {
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

type PublisherSuite struct {
	suite.Suite
	producer *fakeProducer
	logger   *slog.Logger
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherSuite))
}

func (s *PublisherSuite) SetupTest() {
	s.producer = &fakeProducer{}
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *PublisherSuite) TestNewPublisher() {
	s.Run("nil producer is rejected", func() {
		_, err := NewPublisher(nil, "officer-merge", time.Second, s.logger)
		s.Error(err)
	})

	s.Run("empty topic is rejected", func() {
		_, err := NewPublisher(s.producer, "", time.Second, s.logger)
		s.Error(err)
	})

	s.Run("non-positive timeout is rejected", func() {
		_, err := NewPublisher(s.producer, "officer-merge", 0, s.logger)
		s.Error(err)
	})

	s.Run("valid configuration succeeds", func() {
		p, err := NewPublisher(s.producer, "officer-merge", time.Second, s.logger)
		s.NoError(err)
		s.NotNil(p)
	})

	s.Run("nil logger defaults to a discard logger", func() {
		p, err := NewPublisher(s.producer, "officer-merge", time.Second, nil)
		s.Require().NoError(err)
		s.NoError(p.Publish(context.Background(), Event{OfficerID: "O1"}))
	})
}

func (s *PublisherSuite) TestPublish() {
	publisher, err := NewPublisher(s.producer, "officer-merge", time.Second, s.logger)
	s.Require().NoError(err)

	event := Event{
		OfficerID:         "O2",
		PreviousOfficerID: "O1",
		ContextID:         "ctx-1",
	}
	s.Require().NoError(publisher.Publish(context.Background(), event))

	s.Require().Len(s.producer.produced, 1)
	record := s.producer.produced[0]
	s.Equal("officer-merge", record.Topic)
	// Keyed by officer ID so one officer's events stay ordered on one partition.
	s.Equal([]byte("O2"), record.Key)

	var decoded Event
	s.Require().NoError(json.Unmarshal(record.Value, &decoded))
	s.Equal(event, decoded)

	s.True(s.producer.deadline, "publish must bound its wait with a deadline")
}

func (s *PublisherSuite) TestPublishFailureIsUnavailable() {
	s.producer.err = errors.New("broker is down")
	publisher, err := NewPublisher(s.producer, "officer-merge", time.Second, s.logger)
	s.Require().NoError(err)

	err = publisher.Publish(context.Background(), Event{OfficerID: "O1"})
	s.Error(err)
	s.ErrorIs(err, sentinel.ErrUnavailable)
	s.Contains(err.Error(), "broker is down")
}

func (s *PublisherSuite) TestLogPublisherDropsEvent() {
	publisher := &LogPublisher{Logger: s.logger}
	s.NoError(publisher.Publish(context.Background(), Event{OfficerID: "O1"}))
}
