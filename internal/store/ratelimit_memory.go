package store

import (
	"context"
	"sync"
	"time"
)

type counterEntry struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterStore is an in-memory implementation of
// ratelimit.CounterStore with the same create-then-expire semantics as the
// Redis one.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]counterEntry
	clock    func() time.Time
}

// NewMemoryCounterStore creates an in-memory rate limit counter store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return NewMemoryCounterStoreAt(time.Now)
}

// NewMemoryCounterStoreAt creates an in-memory counter store with an
// injected clock, used by tests to cross window boundaries without
// sleeping.
func NewMemoryCounterStoreAt(clock func() time.Time) *MemoryCounterStore {
	return &MemoryCounterStore{
		counters: make(map[string]counterEntry),
		clock:    clock,
	}
}

// Incr increments the counter under key and returns the post-increment
// value. A fresh or expired key starts a new window with the given ttl.
func (m *MemoryCounterStore) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()

	e, ok := m.counters[key]
	if !ok || !e.expiresAt.After(now) {
		e = counterEntry{expiresAt: now.Add(ttl)}
	}

	e.count++
	m.counters[key] = e

	return e.count, nil
}
