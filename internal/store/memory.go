package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/textshare/internal/snippet"
)

type memoryEntry struct {
	snip      snippet.Snippet
	expiresAt time.Time
}

// MemorySnippetStore is an in-memory implementation of snippet.Repository.
// It mirrors the store-level TTL behavior: entries past their TTL are
// treated as absent.
type MemorySnippetStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   func() time.Time
}

// NewMemorySnippetStore creates an in-memory snippet store.
func NewMemorySnippetStore() *MemorySnippetStore {
	return NewMemorySnippetStoreAt(time.Now)
}

// NewMemorySnippetStoreAt creates an in-memory store with an injected
// clock, used by tests to simulate TTL expiry without sleeping.
func NewMemorySnippetStoreAt(clock func() time.Time) *MemorySnippetStore {
	return &MemorySnippetStore{
		entries: make(map[string]memoryEntry),
		clock:   clock,
	}
}

func (m *MemorySnippetStore) Create(_ context.Context, snip *snippet.Snippet, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[snip.ID]; ok && e.expiresAt.After(m.clock()) {
		return snippet.ErrIDTaken
	}

	m.entries[snip.ID] = memoryEntry{
		snip:      *snip,
		expiresAt: m.clock().Add(ttl),
	}

	return nil
}

func (m *MemorySnippetStore) Get(_ context.Context, id string) (*snippet.Snippet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok || !e.expiresAt.After(m.clock()) {
		return nil, snippet.ErrNotFound
	}

	snip := e.snip
	snip.ID = id

	return &snip, nil
}

func (m *MemorySnippetStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)

	return nil
}

func (m *MemorySnippetStore) Exists(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]

	return ok && e.expiresAt.After(m.clock()), nil
}

// Compile-time check.
var _ snippet.Repository = (*MemorySnippetStore)(nil)
