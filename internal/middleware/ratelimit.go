package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/textshare/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimit returns a Huma middleware enforcing per-IP daily quotas.
// An operation opts in by naming a limiter in its metadata under
// ratelimit.MetadataKey; operations without it pass through untouched.
// Limit metadata headers are set on every limited response, allowed or
// denied.
func RateLimit(
	api huma.API,
	limiters map[string]*ratelimit.DailyLimiter,
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		limiter := operationLimiter(ctx, limiters)
		if limiter == nil {
			next(ctx)

			return
		}

		ip := ClientIP(ctx.Header)
		result := limiter.Allow(ctx.Context(), ip)

		ctx.SetHeader("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		ctx.SetHeader("X-RateLimit-Current", strconv.FormatInt(result.Current, 10))
		ctx.SetHeader("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

		if !result.Allowed {
			logger.Warn("rate limit exceeded",
				zap.String("limiter", limiter.Name()),
				zap.String("client_ip", ip),
				zap.Int64("current", result.Current),
				zap.Int64("limit", result.Limit),
			)

			msg := fmt.Sprintf("rate limit exceeded: at most %d requests per IP per day", result.Limit)
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, msg)

			return
		}

		next(ctx)
	}
}

// operationLimiter resolves the limiter named by the operation's metadata,
// if any.
func operationLimiter(ctx huma.Context, limiters map[string]*ratelimit.DailyLimiter) *ratelimit.DailyLimiter {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	name, ok := op.Metadata[ratelimit.MetadataKey].(string)
	if !ok {
		return nil
	}

	return limiters[name]
}
