package snippet

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultMaxTextLength bounds the shared payload unless configured otherwise.
const DefaultMaxTextLength = 200

// createAttempts bounds redraws after a lost set-if-absent claim. Losing the
// claim after a successful existence check means another writer raced us on
// the same candidate, which is already rare; each retry redraws.
const createAttempts = 3

// ExpiryHook is invoked when a read discovers a logically expired record.
// It must be fire-and-forget: a cleanup failure never fails the read.
type ExpiryHook func(id string, expiresAt time.Time)

// Config carries the tunables of a Service. Zero values fall back to
// defaults.
type Config struct {
	MaxTextLength int
	IDLength      int

	// OnExpired, when set, replaces the synchronous best-effort delete
	// performed on lazily discovered expired records.
	OnExpired ExpiryHook

	// Now is the clock, injectable for tests.
	Now func() time.Time
}

// Service is the record lifecycle manager: it validates input, allocates
// ids, writes records with a TTL matching their logical expiry, and keeps
// reads and deletes consistent with that expiry.
type Service struct {
	repo          Repository
	alloc         *Allocator
	maxTextLength int
	idLength      int
	onExpired     ExpiryHook
	now           func() time.Time
	logger        *zap.Logger
}

// NewService creates a lifecycle manager over the given repository.
func NewService(repo Repository, alloc *Allocator, cfg Config, logger *zap.Logger) *Service {
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}

	if cfg.IDLength <= 0 {
		cfg.IDLength = DefaultIDLength
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		repo:          repo,
		alloc:         alloc,
		maxTextLength: cfg.MaxTextLength,
		idLength:      cfg.IDLength,
		onExpired:     cfg.OnExpired,
		now:           cfg.Now,
		logger:        logger,
	}
}

// Create validates the input, allocates a free id and writes the record
// with a store TTL equal to the requested duration. Once Create returns,
// a Get with the returned id succeeds until the record expires or is
// explicitly deleted. A failed write leaves no key behind.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Snippet, error) {
	if err := in.Validate(s.maxTextLength); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	ttl := Expiry(in.ExpiryTime).Duration()

	snip := &Snippet{
		Text:        in.Text,
		UserName:    strings.TrimSpace(in.UserName),
		DisplayType: DisplayType(in.DisplayType),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
		DeleteToken: in.DeleteToken,
	}

	for range createAttempts {
		id, err := s.alloc.Allocate(ctx)
		if err != nil {
			return nil, err
		}

		snip.ID = id

		err = s.repo.Create(ctx, snip, ttl)
		if err == nil {
			return snip, nil
		}

		if !errors.Is(err, ErrIDTaken) {
			return nil, err
		}

		// Lost the claim to a concurrent writer; redraw.
		s.logger.Debug("id claim lost, redrawing", zap.String("id", id))
	}

	return nil, ErrIDSpaceExhausted
}

// Get fetches a snippet by id. Malformed ids are rejected without a store
// round trip. Records whose expiresAt has passed are reported not found
// even when the store TTL has not fired yet, and are lazily cleaned up.
// The delete token is stripped unconditionally.
func (s *Service) Get(ctx context.Context, id string) (*Snippet, error) {
	if err := ValidateID(id, s.idLength); err != nil {
		return nil, err
	}

	snip, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if snip.Expired(s.now()) {
		s.cleanupExpired(ctx, snip)

		return nil, ErrNotFound
	}

	snip.DeleteToken = ""

	return snip, nil
}

// Delete removes a snippet early when the provided token matches the one
// stored with the record. Records created without a token can never be
// deleted early, whatever token is supplied.
func (s *Service) Delete(ctx context.Context, id, providedToken string) error {
	if err := ValidateID(id, s.idLength); err != nil {
		return err
	}

	snip, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if snip.Expired(s.now()) {
		s.cleanupExpired(ctx, snip)

		return ErrNotFound
	}

	if snip.DeleteToken == "" {
		return ErrPermissionDenied
	}

	if snip.DeleteToken != providedToken {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

// cleanupExpired disposes of a record found past its expiresAt. The store
// TTL remains the authority; this is an optimization, so failures are
// logged and swallowed.
func (s *Service) cleanupExpired(ctx context.Context, snip *Snippet) {
	if s.onExpired != nil {
		s.onExpired(snip.ID, snip.ExpiresAt)

		return
	}

	if err := s.repo.Delete(ctx, snip.ID); err != nil {
		s.logger.Warn("failed to delete expired snippet",
			zap.String("id", snip.ID),
			zap.Error(err),
		)
	}
}
