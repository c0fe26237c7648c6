package middleware

import (
	"encoding/json"
	"net/http"
)

// NewTokenAuth returns a middleware that guards its routes behind a "token"
// request header. verify reports whether a presented token grants access.
// A request without the header is rejected with 422 (a required field is
// missing); a header that fails verify is rejected with 403.
func NewTokenAuth(verify func(token string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("token")
			if token == "" {
				writeDetail(w, http.StatusUnprocessableEntity, "token header is required")
				return
			}
			if !verify(token) {
				writeDetail(w, http.StatusForbidden, "Invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeDetail writes the API's standard error body from inside a middleware,
// where the handler package's helpers are not available.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
