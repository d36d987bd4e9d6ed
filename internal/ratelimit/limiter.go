package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// MetadataKey is the operation metadata key naming the limiter that guards
// an endpoint. Operations without it are not rate limited.
const MetadataKey = "rateLimit"

// DefaultDailyLimit is the per-IP daily cap applied when none is configured.
const DefaultDailyLimit = 20

// CounterStore is the storage primitive the limiter builds on: an atomic
// increment that starts a window with the given ttl when it creates the key.
type CounterStore interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (count int64, err error)
}

// Result reports the outcome of a limit check. Limit, Current and
// Remaining are populated whether or not the request is allowed; the HTTP
// layer exposes them on every response of a limited endpoint.
type Result struct {
	Allowed   bool
	Limit     int64
	Current   int64
	Remaining int64
}

// DailyLimiter bounds the number of requests a single source IP may make
// within the current calendar day, using a fixed window aligned to local
// midnight. Counter keys are rl:<name>:<ip>.
type DailyLimiter struct {
	counters CounterStore
	name     string
	limit    int64
	now      func() time.Time
	logger   *zap.Logger
}

// NewDailyLimiter creates a named fixed-window limiter. limit <= 0 falls
// back to DefaultDailyLimit.
func NewDailyLimiter(counters CounterStore, name string, limit int64, logger *zap.Logger) *DailyLimiter {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}

	return &DailyLimiter{
		counters: counters,
		name:     name,
		limit:    limit,
		now:      time.Now,
		logger:   logger,
	}
}

// Name returns the limiter name used in counter keys.
func (l *DailyLimiter) Name() string {
	return l.name
}

// Allow records a request from ip and reports whether it fits the daily
// quota. The limiter fails open: when the counter store is unreachable the
// request is allowed with a zero count, because availability of the core
// feature is prioritized over strict quota enforcement.
func (l *DailyLimiter) Allow(ctx context.Context, ip string) Result {
	key := fmt.Sprintf("rl:%s:%s", l.name, ip)

	current, err := l.counters.Incr(ctx, key, untilEndOfDay(l.now()))
	if err != nil {
		l.logger.Warn("rate limit counter unavailable, failing open",
			zap.String("limiter", l.name),
			zap.Error(err),
		)

		return Result{Allowed: true, Limit: l.limit, Current: 0, Remaining: l.limit}
	}

	remaining := l.limit - current
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   current <= l.limit,
		Limit:     l.limit,
		Current:   current,
		Remaining: remaining,
	}
}
