package middleware

import "strings"

// UnknownClient is the rate limit bucket for requests that carry none of
// the proxy headers. Direct deployments without a proxy all land here and
// share one quota.
const UnknownClient = "unknown"

// ClientIP resolves the source IP from proxy headers: first hop of
// X-Forwarded-For, then X-Real-IP, then CF-Connecting-IP.
func ClientIP(header func(name string) string) string {
	if xff := header("X-Forwarded-For"); xff != "" {
		// May contain the whole proxy chain; the first entry is the client.
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := header("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	if cf := header("CF-Connecting-IP"); cf != "" {
		return strings.TrimSpace(cf)
	}

	return UnknownClient
}
