//go:build integration

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/store"
	"appointments-api/internal/appointment/store/cache"
	"appointments-api/pkg/platform/sentinel"
	"appointments-api/pkg/testutil/containers"
)

type CachedStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	inner *store.InMemoryStore
	store *cache.CachedStore
}

func TestCachedStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CachedStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.inner = store.NewInMemoryStore()
	s.store = cache.New(s.inner, s.redis.Client, time.Minute,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *CachedStoreSuite) record(deltaAt string) models.AppointmentRecord {
	return models.AppointmentRecord{
		CompanyNumber: "CN1",
		AppointmentID: "A1",
		OfficerID:     "O1",
		DeltaAt:       deltaAt,
		OfficerRole:   "director",
	}
}

func (s *CachedStoreSuite) TestReadThrough() {
	ctx := context.Background()
	s.Require().NoError(s.inner.Put(ctx, s.record("1")))

	first, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("O1", first.OfficerID)

	// The cached copy now answers even when the inner store loses the record.
	s.Require().NoError(s.inner.Delete(ctx, "CN1", "A1"))

	second, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("O1", second.OfficerID)
}

func (s *CachedStoreSuite) TestAbsentRecordIsNotCached() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, "CN1", "A1")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.inner.Put(ctx, s.record("1")))

	record, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("O1", record.OfficerID)
}

func (s *CachedStoreSuite) TestPutInvalidates() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, s.record("1")))

	_, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)

	updated := s.record("2")
	updated.OfficerID = "O2"
	s.Require().NoError(s.store.Put(ctx, updated))

	record, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)
	s.Equal("O2", record.OfficerID)
}

func (s *CachedStoreSuite) TestDeleteInvalidates() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, s.record("1")))

	_, err := s.store.Get(ctx, "CN1", "A1")
	s.Require().NoError(err)

	s.Require().NoError(s.store.Delete(ctx, "CN1", "A1"))

	_, err = s.store.Get(ctx, "CN1", "A1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
