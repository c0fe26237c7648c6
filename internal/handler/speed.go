package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type speedResponse struct {
	Speed int64  `json:"speed"`
	Info  string `json:"info"`
}

type speedCheckResponse struct {
	Status string `json:"status"`
	Speed  int64  `json:"speed"`
}

type searchResponse struct {
	Item  int64 `json:"item"`
	Limit int64 `json:"limit"`
}

// getSpeed handles GET /speed/{speed}.
// The path parameter must parse as an integer; anything else is a 422.
func (s *Server) getSpeed(w http.ResponseWriter, r *http.Request) {
	speed, err := strconv.ParseInt(chi.URLParam(r, "speed"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "speed must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, speedResponse{
		Speed: speed,
		Info:  fmt.Sprintf("Your speed is %d", speed),
	})
}

// testSpeed handles GET /test/{speed}.
// Only the exact value 100 passes; every other speed is answered with 404.
func (s *Server) testSpeed(w http.ResponseWriter, r *http.Request) {
	speed, err := strconv.ParseInt(chi.URLParam(r, "speed"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "speed must be an integer")
		return
	}
	if speed != 100 {
		writeDetail(w, http.StatusNotFound, "Speed does not match")
		return
	}
	writeJSON(w, http.StatusOK, speedCheckResponse{Status: "success", Speed: speed})
}

// search handles GET /search.
// item is a required integer query parameter; limit is optional and
// defaults to 10.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawItem := q.Get("item")
	if rawItem == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "item query parameter is required")
		return
	}
	item, err := strconv.ParseInt(rawItem, 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "item must be an integer")
		return
	}

	limit := int64(10)
	if rawLimit := q.Get("limit"); rawLimit != "" {
		limit, err = strconv.ParseInt(rawLimit, 10, 64)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "limit must be an integer")
			return
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{Item: item, Limit: limit})
}

// ui handles GET /ui.
// It stalls for the configured delay to simulate a slow upstream, then
// answers with a greeting. A cancelled request aborts the wait.
func (s *Server) ui(w http.ResponseWriter, r *http.Request) {
	select {
	case <-time.After(s.uiDelay):
	case <-r.Context().Done():
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello Global"})
}
