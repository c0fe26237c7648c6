package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/restkata/restkata/internal/middleware"
)

// logLine runs one request through the logging middleware and decodes the
// JSON line it emits.
func logLine(t *testing.T, status int, body string, reqID string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	if reqID != "" {
		ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, reqID)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_LogsRequestFields(t *testing.T) {
	entry := logLine(t, http.StatusOK, "ok", "test-req-id")

	require.Equal(t, "INFO", entry["level"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/healthz", entry["path"])
	require.EqualValues(t, http.StatusOK, entry["status"])
	require.EqualValues(t, 2, entry["bytes"])
	require.Equal(t, "test-req-id", entry["request_id"])
	require.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_ServerErrorsLogAtErrorLevel(t *testing.T) {
	entry := logLine(t, http.StatusInternalServerError, "", "")

	require.Equal(t, "ERROR", entry["level"])
	require.EqualValues(t, http.StatusInternalServerError, entry["status"])
}
