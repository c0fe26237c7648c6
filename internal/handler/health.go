package handler

import "net/http"

// messageResponse is the single-field greeting body shared by GET / and GET /ui.
type messageResponse struct {
	Message string `json:"message"`
}

// healthResponse is the GET /healthz body.
type healthResponse struct {
	Status string `json:"status"`
}

// getRoot handles GET /.
// It returns a static greeting, useful as a first smoke test of the server.
func (s *Server) getRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello, restkata!"})
}

// getHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
