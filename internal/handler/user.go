package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/restkata/restkata/internal/domain"
)

// createUserRequest uses pointer fields so a missing key is distinguishable
// from a zero value.
type createUserRequest struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createUserResponse struct {
	Msg  string       `json:"msg"`
	Data userResponse `json:"data"`
}

// createUser handles POST /user/.
// The user arrives as a JSON body; a duplicate ID is a 400.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.ID == nil || req.Name == nil || req.Email == nil {
		writeDetail(w, http.StatusUnprocessableEntity, "id, name and email are required")
		return
	}

	created, err := s.users.Create(r.Context(), domain.User{
		ID:    *req.ID,
		Name:  *req.Name,
		Email: *req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeDetail(w, http.StatusBadRequest, "User already exists")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, createUserResponse{
		Msg:  "User created",
		Data: userResponse{ID: created.ID, Name: created.Name, Email: created.Email},
	})
}

// getUser handles GET /user/{id}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "User not found")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}
