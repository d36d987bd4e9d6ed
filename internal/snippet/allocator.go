package snippet

import (
	"context"
	"fmt"
)

// DefaultAllocAttempts bounds the collision-retry loop. A cap turns
// key-space exhaustion into an error instead of a livelock.
const DefaultAllocAttempts = 5

// Generator draws a candidate id. Draws are random and may collide, so
// the allocator verifies each one against the store.
type Generator func() string

// Allocator produces ids that are verified free at allocation time.
type Allocator struct {
	generate    Generator
	repo        Repository
	maxAttempts int
}

// NewAllocator creates an allocator. attempts <= 0 falls back to
// DefaultAllocAttempts.
func NewAllocator(generate Generator, repo Repository, attempts int) *Allocator {
	if attempts <= 0 {
		attempts = DefaultAllocAttempts
	}

	return &Allocator{
		generate:    generate,
		repo:        repo,
		maxAttempts: attempts,
	}
}

// MaxAttempts returns the configured retry bound.
func (a *Allocator) MaxAttempts() int {
	return a.maxAttempts
}

// Allocate draws ids until one passes the existence check, up to the retry
// bound. A store error aborts immediately: allocation must not assume
// uniqueness when the check itself failed.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for range a.maxAttempts {
		id := a.generate()

		taken, err := a.repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("checking id availability: %w", err)
		}

		if !taken {
			return id, nil
		}
	}

	return "", ErrIDSpaceExhausted
}
