package snippet

import (
	"context"
	"time"
)

// Repository defines the storage operations the lifecycle manager needs.
// Implementations map their own "no such key" condition to ErrNotFound and
// a lost set-if-absent claim to ErrIDTaken.
type Repository interface {
	// Create stores the snippet under its ID with the given TTL only if
	// the ID is not currently in use. Returns ErrIDTaken otherwise.
	Create(ctx context.Context, snip *Snippet, ttl time.Duration) error

	// Get retrieves the snippet stored under id. Returns ErrNotFound when
	// absent. Expiry re-validation is the caller's responsibility.
	Get(ctx context.Context, id string) (*Snippet, error)

	// Delete removes the snippet stored under id. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a live record is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
}
