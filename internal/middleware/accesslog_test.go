package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/serroba/textshare/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func serveWithAccessLog(status int, mutate func(*http.Request)) (*observer.ObservedLogs, *httptest.ResponseRecorder) {
	core, logs := observer.New(zapcore.InfoLevel)

	handler := middleware.AccessLog(zap.New(core))(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/text/xK9mPq2T", nil)
	if mutate != nil {
		mutate(req)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	return logs, w
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	t.Run("logs request fields at info for success", func(t *testing.T) {
		t.Parallel()

		logs, w := serveWithAccessLog(http.StatusOK, func(r *http.Request) {
			r.Header.Set("X-Forwarded-For", "203.0.113.195")
		})

		require.Equal(t, 1, logs.Len())

		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/text/xK9mPq2T", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "203.0.113.195", fields["client_ip"])
		assert.NotEmpty(t, fields["request_id"])
		assert.Equal(t, w.Header().Get("X-Request-ID"), fields["request_id"])
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		t.Parallel()

		logs, _ := serveWithAccessLog(http.StatusNotFound, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("server errors log at error", func(t *testing.T) {
		t.Parallel()

		logs, _ := serveWithAccessLog(http.StatusInternalServerError, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("request ids are unique per request", func(t *testing.T) {
		t.Parallel()

		_, first := serveWithAccessLog(http.StatusOK, nil)
		_, second := serveWithAccessLog(http.StatusOK, nil)

		assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
	})
}
