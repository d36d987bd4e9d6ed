package middleware_test

import (
	"testing"

	"github.com/serroba/textshare/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "single forwarded address",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.195"},
			want:    "203.0.113.195",
		},
		{
			name:    "forwarded chain uses first hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			want:    "203.0.113.195",
		},
		{
			name:    "forwarded chain with ragged spacing",
			headers: map[string]string{"X-Forwarded-For": "  203.0.113.195 ,70.41.3.18"},
			want:    "203.0.113.195",
		},
		{
			name:    "real ip header",
			headers: map[string]string{"X-Real-IP": "198.51.100.9"},
			want:    "198.51.100.9",
		},
		{
			name:    "cloudflare header",
			headers: map[string]string{"CF-Connecting-IP": "192.0.2.33"},
			want:    "192.0.2.33",
		},
		{
			name: "forwarded wins over real ip",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.195",
				"X-Real-IP":       "198.51.100.9",
			},
			want: "203.0.113.195",
		},
		{
			name: "real ip wins over cloudflare",
			headers: map[string]string{
				"X-Real-IP":        "198.51.100.9",
				"CF-Connecting-IP": "192.0.2.33",
			},
			want: "198.51.100.9",
		},
		{
			name:    "no headers falls back to unknown bucket",
			headers: map[string]string{},
			want:    middleware.UnknownClient,
		},
		{
			name:    "empty forwarded header falls through",
			headers: map[string]string{"X-Forwarded-For": ""},
			want:    middleware.UnknownClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := middleware.ClientIP(func(name string) string {
				return tt.headers[name]
			})

			assert.Equal(t, tt.want, got)
		})
	}
}
