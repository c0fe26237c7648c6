package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restkata/restkata/internal/middleware"
)

// drainHandler reads the whole request body, the way a JSON-decoding handler
// would. A read error (which is how http.MaxBytesReader reports an oversized
// stream) turns into a 413 so the tests can observe it.
var drainHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

// postBody sends a POST with the given payload through the middleware under a
// 100-byte limit.
func postBody(t *testing.T, payload string, contentLength int64) *httptest.ResponseRecorder {
	t.Helper()

	h := middleware.NewMaxBodySizeHandler(100)(drainHandler)

	req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(payload))
	req.ContentLength = contentLength
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMaxBodySizeHandler_BodyWithinLimit(t *testing.T) {
	rec := postBody(t, strings.Repeat("x", 50), 50)

	require.Equal(t, http.StatusOK, rec.Code)
}

// An oversized Content-Length is rejected before a single body byte is read,
// and the response carries the standard error envelope.
func TestMaxBodySizeHandler_DeclaredLengthOverLimit(t *testing.T) {
	rec := postBody(t, strings.Repeat("x", 200), 200)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request body exceeds 100 bytes", decodeDetail(t, rec))
}

// With no Content-Length header the middleware cannot reject up front, so the
// MaxBytesReader wrapping must make the in-handler read fail instead.
func TestMaxBodySizeHandler_StreamingBodyOverLimit(t *testing.T) {
	rec := postBody(t, strings.Repeat("x", 200), -1)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
