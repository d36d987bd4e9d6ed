package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/serroba/textshare/internal/ratelimit"
	"github.com/serroba/textshare/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type erroringCounters struct {
	err error
}

func (e *erroringCounters) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, e.err
}

func TestDailyLimiter_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("allows up to the limit then denies", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDailyLimiter(store.NewMemoryCounterStore(), "share", 3, zap.NewNop())

		for i := int64(1); i <= 3; i++ {
			res := limiter.Allow(ctx, "203.0.113.7")

			assert.True(t, res.Allowed)
			assert.Equal(t, i, res.Current)
			assert.Equal(t, int64(3)-i, res.Remaining)
		}

		res := limiter.Allow(ctx, "203.0.113.7")

		assert.False(t, res.Allowed)
		assert.Equal(t, int64(4), res.Current)
		assert.Equal(t, int64(0), res.Remaining)
	})

	t.Run("sources are counted independently", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDailyLimiter(store.NewMemoryCounterStore(), "share", 1, zap.NewNop())

		require.True(t, limiter.Allow(ctx, "203.0.113.7").Allowed)
		require.False(t, limiter.Allow(ctx, "203.0.113.7").Allowed)

		assert.True(t, limiter.Allow(ctx, "198.51.100.9").Allowed)
	})

	t.Run("limiters with different names do not share counters", func(t *testing.T) {
		t.Parallel()

		counters := store.NewMemoryCounterStore()
		share := ratelimit.NewDailyLimiter(counters, "share", 1, zap.NewNop())
		del := ratelimit.NewDailyLimiter(counters, "delete", 1, zap.NewNop())

		require.True(t, share.Allow(ctx, "203.0.113.7").Allowed)
		require.False(t, share.Allow(ctx, "203.0.113.7").Allowed)

		assert.True(t, del.Allow(ctx, "203.0.113.7").Allowed)
	})

	t.Run("fails open when the counter store errors", func(t *testing.T) {
		t.Parallel()

		counters := &erroringCounters{err: errors.New("connection refused")}
		limiter := ratelimit.NewDailyLimiter(counters, "share", 5, zap.NewNop())

		res := limiter.Allow(ctx, "203.0.113.7")

		assert.True(t, res.Allowed)
		assert.Equal(t, int64(0), res.Current)
		assert.Equal(t, int64(5), res.Remaining)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDailyLimiter(store.NewMemoryCounterStore(), "share", 0, zap.NewNop())

		res := limiter.Allow(ctx, "203.0.113.7")

		assert.Equal(t, int64(ratelimit.DefaultDailyLimit), res.Limit)
	})
}
