// Package cache decorates an appointment store with a redis read-through on
// single-record reads. It serves the public record lookup; the admission
// pipeline always reads the primary store so staleness decisions never run
// against cached state.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"appointments-api/internal/appointment/models"
	"appointments-api/internal/appointment/store"
)

// CachedStore wraps a store.Store. Redis failures degrade to the inner store;
// a broken cache must never fail a read.
type CachedStore struct {
	inner  store.Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(inner store.Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl, logger: logger}
}

func key(companyNumber, appointmentID string) string {
	return "appointment:" + companyNumber + ":" + appointmentID
}

func (c *CachedStore) Get(ctx context.Context, companyNumber, appointmentID string) (models.AppointmentRecord, error) {
	cacheKey := key(companyNumber, appointmentID)

	if data, err := c.client.Get(ctx, cacheKey).Bytes(); err == nil {
		var record models.AppointmentRecord
		if err := json.Unmarshal(data, &record); err == nil {
			return record, nil
		}
		// Corrupt entry; drop it and fall through to the store.
		c.client.Del(ctx, cacheKey)
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "record cache read failed", "key", cacheKey, "error", err)
	}

	record, err := c.inner.Get(ctx, companyNumber, appointmentID)
	if err != nil {
		return models.AppointmentRecord{}, err
	}

	if data, err := json.Marshal(record); err == nil {
		if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "record cache write failed", "key", cacheKey, "error", err)
		}
	}
	return record, nil
}

func (c *CachedStore) Put(ctx context.Context, record models.AppointmentRecord) error {
	if err := c.inner.Put(ctx, record); err != nil {
		return err
	}
	c.invalidate(ctx, record.CompanyNumber, record.AppointmentID)
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, companyNumber, appointmentID string) error {
	if err := c.inner.Delete(ctx, companyNumber, appointmentID); err != nil {
		return err
	}
	c.invalidate(ctx, companyNumber, appointmentID)
	return nil
}

func (c *CachedStore) FindByCompany(ctx context.Context, companyNumber string, q store.Query) ([]models.AppointmentRecord, int, error) {
	return c.inner.FindByCompany(ctx, companyNumber, q)
}

func (c *CachedStore) invalidate(ctx context.Context, companyNumber, appointmentID string) {
	cacheKey := key(companyNumber, appointmentID)
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "record cache invalidation failed", "key", cacheKey, "error", err)
	}
}
