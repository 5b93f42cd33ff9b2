package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"saju/internal/solarterm"
)

// Cached is a redis read-through decorator over a Provider. Solar-term data
// is immutable reference data, so per-(kind, year) event lists are cached
// and nearest-event queries are answered from the cached year lists. Cache
// failures degrade to the inner provider.
type Cached struct {
	inner  solarterm.Provider
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached wraps inner with a redis year-list cache.
func NewCached(inner solarterm.Provider, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *Cached) LatestBefore(ctx context.Context, kind solarterm.Kind, at time.Time) (solarterm.Event, error) {
	// Terms are ~15 days apart; the answer is in the query year or, near
	// New Year, the year before.
	for _, year := range []int{at.UTC().Year(), at.UTC().Year() - 1} {
		events, err := c.yearEvents(ctx, kind, year)
		if err != nil {
			return solarterm.Event{}, err
		}
		for i := len(events) - 1; i >= 0; i-- {
			if events[i].At.Before(at) {
				return events[i], nil
			}
		}
	}
	return solarterm.Event{}, solarterm.ErrNotFound
}

func (c *Cached) EarliestAfter(ctx context.Context, kind solarterm.Kind, at time.Time) (solarterm.Event, error) {
	for _, year := range []int{at.UTC().Year(), at.UTC().Year() + 1} {
		events, err := c.yearEvents(ctx, kind, year)
		if err != nil {
			return solarterm.Event{}, err
		}
		for _, ev := range events {
			if ev.At.After(at) {
				return ev, nil
			}
		}
	}
	return solarterm.Event{}, solarterm.ErrNotFound
}

func (c *Cached) AllOfKindInYear(ctx context.Context, kind solarterm.Kind, year int) ([]solarterm.Event, error) {
	return c.yearEvents(ctx, kind, year)
}

func (c *Cached) yearEvents(ctx context.Context, kind solarterm.Kind, year int) ([]solarterm.Event, error) {
	key := fmt.Sprintf("solarterm:%s:%d", kind, year)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var events []solarterm.Event
		if err := json.Unmarshal(raw, &events); err == nil {
			return events, nil
		}
		c.logger.WarnContext(ctx, "corrupt solar-term cache entry, reloading", "key", key)
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "solar-term cache read failed", "key", key, "error", err)
	}

	events, err := c.inner.AllOfKindInYear(ctx, kind, year)
	if err != nil {
		return nil, err
	}
	if len(events) > 0 {
		if raw, err := json.Marshal(events); err == nil {
			if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				c.logger.WarnContext(ctx, "solar-term cache write failed", "key", key, "error", err)
			}
		}
	}
	return events, nil
}
