package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"saju/internal/solarterm"
)

// Memory is an in-memory solar-term store, used by tests and as a fixture
// provider. Events are kept sorted by timestamp.
type Memory struct {
	mu     sync.RWMutex
	events []solarterm.Event
}

// NewMemory builds a store seeded with the given events.
func NewMemory(events ...solarterm.Event) *Memory {
	m := &Memory{}
	m.Insert(context.Background(), events)
	return m
}

// Insert adds events and restores timestamp order.
func (m *Memory) Insert(_ context.Context, events []solarterm.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	sort.Slice(m.events, func(i, j int) bool {
		return m.events[i].At.Before(m.events[j].At)
	})
	return nil
}

func (m *Memory) LatestBefore(_ context.Context, kind solarterm.Kind, at time.Time) (solarterm.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.events) - 1; i >= 0; i-- {
		ev := m.events[i]
		if ev.Kind == kind && ev.At.Before(at) {
			return ev, nil
		}
	}
	return solarterm.Event{}, solarterm.ErrNotFound
}

func (m *Memory) EarliestAfter(_ context.Context, kind solarterm.Kind, at time.Time) (solarterm.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ev := range m.events {
		if ev.Kind == kind && ev.At.After(at) {
			return ev, nil
		}
	}
	return solarterm.Event{}, solarterm.ErrNotFound
}

func (m *Memory) AllOfKindInYear(_ context.Context, kind solarterm.Kind, year int) ([]solarterm.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []solarterm.Event
	for _, ev := range m.events {
		if ev.Kind == kind && ev.At.UTC().Year() == year {
			out = append(out, ev)
		}
	}
	return out, nil
}
