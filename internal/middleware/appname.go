package middleware

import "net/http"

// NewAppNameHandler returns a middleware that stamps every response with an
// X-App-Name header identifying this service. It runs before CORS so even
// short-circuited OPTIONS preflights carry the header.
func NewAppNameHandler(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-App-Name", name)
			next.ServeHTTP(w, r)
		})
	}
}
