package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/restkata/restkata/internal/middleware"
)

// Routes returns a chi router exposing every API endpoint. Cross-cutting
// middleware (logging, CORS, metrics) is wired by the caller; only the
// per-route token guard lives here, because it belongs to a single endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.getRoot)
	r.Get("/healthz", s.getHealth)

	r.Get("/speed/{speed}", s.getSpeed)
	r.Get("/test/{speed}", s.testSpeed)
	r.Get("/search", s.search)
	r.Get("/ui", s.ui)
	r.Get("/pass/{password}", s.hashPassword)

	r.Route("/user", func(r chi.Router) {
		r.Post("/", s.createUser)
		r.Get("/{id}", s.getUser)
	})

	r.Route("/items", func(r chi.Router) {
		r.Post("/", s.createItem)
		r.Get("/", s.listItems)
		// Static /echo is registered alongside /{id}; chi prefers the
		// static match.
		r.Post("/echo", s.echoItem)
		r.Get("/{id}", s.getItem)
		r.Put("/{id}", s.updateItem)
		r.Delete("/{id}", s.deleteItem)
	})

	r.Route("/login", func(r chi.Router) {
		r.Post("/", s.login)
	})
	// The closure defers the dependency lookup to request time.
	tokenAuth := middleware.NewTokenAuth(func(token string) bool {
		return s.auth.VerifyToken(token)
	})
	r.With(tokenAuth).Get("/secure-data", s.secureData)

	r.Get("/export", s.getExport)

	r.Get("/openapi.yaml", s.openapiSpec)
	r.Get("/docs", s.docs)

	return r
}
