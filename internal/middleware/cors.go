// Package middleware provides reusable HTTP middleware for the restkata API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware applying CORS headers for the given
// origins. Each entry must be a full origin (scheme + host, no trailing
// slash) or "*". The allowed headers include the custom "token" header so
// browsers can preflight /secure-data calls.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "token"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
