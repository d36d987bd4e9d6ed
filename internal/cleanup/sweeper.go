package cleanup

import (
	"context"

	"github.com/serroba/textshare/internal/snippet"
	"go.uber.org/zap"
)

// Sweeper removes expired snippets reported by the read path.
type Sweeper struct {
	repo   snippet.Repository
	logger *zap.Logger
}

// NewSweeper creates a sweeper over the given repository.
func NewSweeper(repo snippet.Repository, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		repo:   repo,
		logger: logger,
	}
}

// Handle deletes the snippet named by the event. Deleting a key the store
// TTL already removed is a no-op, so replays are harmless.
func (s *Sweeper) Handle(ctx context.Context, event *ExpiredEvent) error {
	if err := s.repo.Delete(ctx, event.ID); err != nil {
		return err
	}

	s.logger.Debug("removed expired snippet",
		zap.String("id", event.ID),
		zap.Time("expires_at", event.ExpiresAt),
	)

	return nil
}
