package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/restkata/restkata/internal/domain"
)

type hashedPasswordResponse struct {
	OriginalPassword string `json:"original_password"`
	HashedPassword   string `json:"hashed_password"`
}

// hashPassword handles GET /pass/{password}.
// It echoes the plaintext next to its bcrypt hash so clients can see the
// salt change between calls. Passwords beyond bcrypt's 72-byte limit are
// rejected with 422.
func (s *Server) hashPassword(w http.ResponseWriter, r *http.Request) {
	password := chi.URLParam(r, "password")

	hashed, err := s.auth.HashPassword(r.Context(), password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeDetail(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, hashedPasswordResponse{
		OriginalPassword: password,
		HashedPassword:   hashed,
	})
}
