package handler

import (
	"errors"
	"net/http"

	"github.com/restkata/restkata/internal/domain"
)

// sessionTokenHeader carries the session token back to a freshly logged-in
// client.
const sessionTokenHeader = "X-Session-Token"

type msgResponse struct {
	Msg string `json:"msg"`
}

// login handles POST /login/.
// Credentials arrive as an HTML form. A successful login answers with the
// session token in the X-Session-Token response header.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid form body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	token, err := s.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	w.Header().Set(sessionTokenHeader, token)
	writeJSON(w, http.StatusOK, msgResponse{Msg: "Login successful"})
}

// secureData handles GET /secure-data.
// Token verification happens in the middleware wired by Routes; a request
// reaching this handler is already authorised.
func (s *Server) secureData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, msgResponse{Msg: "This is protected data"})
}
