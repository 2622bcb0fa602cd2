// internal/middleware/logging_test.go
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggingMiddleware_InjectsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var fromCtx *slog.Logger
	h := chimiddleware.RequestID(LoggingMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = GetLogger(r.Context())
		fromCtx.Info("inside handler")
		w.WriteHeader(http.StatusNotFound)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/goals/9", nil))

	require.NotNil(t, fromCtx)
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "inside handler", entries[0]["msg"])
	assert.NotEmpty(t, entries[0]["req_id"])

	done := entries[1]
	assert.Equal(t, "Request completed", done["msg"])
	assert.Equal(t, "WARN", done["level"])
	assert.EqualValues(t, http.StatusNotFound, done["status"])
	assert.Equal(t, "/goals/9", done["path"])
	assert.Equal(t, entries[0]["req_id"], done["req_id"])
}

func TestLoggingMiddleware_DebugKeepsBodyReadable(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seen string
	h := LoggingMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = string(b)
		w.Write([]byte(`{"ok":true}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/goals/", strings.NewReader(`{"skill_name":"Go"}`))
	req.Header.Set("Authorization", "Bearer secret")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"skill_name":"Go"}`, seen)
	out := buf.String()
	assert.Contains(t, out, "Request detail")
	assert.Contains(t, out, "[SENSITIVE]")
	assert.NotContains(t, out, "Bearer secret")
	assert.Contains(t, out, `{\"ok\":true}`)
}

func TestGetLogger_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLogger(context.Background()))
}
