//go:build integration

package merge_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"appointments-api/internal/merge"
	"appointments-api/internal/platform/kafka"
	"appointments-api/pkg/testutil/containers"
)

const testTopic = "officer-merge-test"

type PublisherIntegrationSuite struct {
	suite.Suite
	redpanda  *containers.RedpandaContainer
	publisher *merge.Publisher
}

func TestPublisherIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PublisherIntegrationSuite))
}

func (s *PublisherIntegrationSuite) SetupSuite() {
	s.redpanda = containers.NewRedpandaContainer(s.T())

	producer, err := kafka.NewClient([]string{s.redpanda.Broker})
	s.Require().NoError(err)
	s.Require().NotNil(producer)
	s.T().Cleanup(producer.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, testTopic, 1))
	// A second call must tolerate the existing topic.
	s.Require().NoError(kafka.EnsureTopic(ctx, producer, testTopic, 1))

	s.publisher, err = merge.NewPublisher(producer, testTopic, 10*time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
}

func (s *PublisherIntegrationSuite) TestPublishRoundTrip() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := merge.Event{
		OfficerID:         "O2",
		PreviousOfficerID: "O1",
		ContextID:         "ctx-1",
	}
	s.Require().NoError(s.publisher.Publish(ctx, event))

	consumer := s.redpanda.NewClient(s.T(),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	record := records[0]
	s.Equal([]byte("O2"), record.Key)

	var decoded merge.Event
	s.Require().NoError(json.Unmarshal(record.Value, &decoded))
	s.Equal(event, decoded)
}
