package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// detailBody is the error envelope every non-2xx response carries.
type detailBody struct {
	Detail string `json:"detail"`
}

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// The status line is already sent; all we can do is log.
		slog.Error("encode response", "error", err)
	}
}

// writeDetail writes the standard error body for a non-2xx status.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailBody{Detail: detail})
}

// writeInternalError logs the underlying error and answers with a generic
// 500. The body never leaks internals; the log line carries the detail.
func writeInternalError(ctx context.Context, w http.ResponseWriter, err error) {
	slog.ErrorContext(ctx, "handler error", "error", err)
	writeDetail(w, http.StatusInternalServerError, "internal server error")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.AuthService.HashPassword: validation error: password must not
// exceed 72 bytes" → "password must not exceed 72 bytes"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	const marker = "validation error: "
	msg := err.Error()
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
