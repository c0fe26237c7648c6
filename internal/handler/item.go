package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/restkata/restkata/internal/domain"
)

type itemResponse struct {
	ItemID int64  `json:"item_id"`
	Name   string `json:"name"`
}

// listedItem is the full row shape used by the paginated listing. The single
// lookup keeps the original compact shape; the list adds the timestamps.
type listedItem struct {
	ItemID    int64     `json:"item_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// mutationResponse is the body of every item mutation. Embedding a snapshot
// of the whole table lets clients watch the state evolve call by call.
// JSON marshalling stringifies the int64 keys.
type mutationResponse struct {
	Msg string           `json:"msg"`
	DB  map[int64]string `json:"db"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type listItemsResponse struct {
	Data       []listedItem `json:"data"`
	Pagination pagination   `json:"pagination"`
}

// echoItemRequest uses pointer fields so a missing key is distinguishable
// from a zero value.
type echoItemRequest struct {
	ID    *int64   `json:"id"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type echoItemResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// createItem handles POST /items/.
// Item fields arrive as query parameters (item_id, name); a duplicate ID is
// a 400.
func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawID := q.Get("item_id")
	if rawID == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "item_id query parameter is required")
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "item_id must be an integer")
		return
	}
	name := q.Get("name")
	if name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name query parameter is required")
		return
	}

	if _, err := s.items.Create(r.Context(), id, name); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeDetail(w, http.StatusBadRequest, "Item already exists")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	s.writeMutation(w, r, "Item added")
}

// listItems handles GET /items/.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100).
func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	page, err := optionalInt(r, "page")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "page must be an integer")
		return
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "limit must be an integer")
		return
	}

	params := domain.NewPaginationParams(page, limit)
	items, total, err := s.items.ListPaged(r.Context(), params)
	if err != nil {
		writeInternalError(r.Context(), w, err)
		return
	}

	data := make([]listedItem, len(items))
	for i, item := range items {
		data[i] = listedItem{
			ItemID:    item.ID,
			Name:      item.Name,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
	}
	writeJSON(w, http.StatusOK, listItemsResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// getItem handles GET /items/{id}.
func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := s.items.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Item not found")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{ItemID: item.ID, Name: item.Name})
}

// updateItem handles PUT /items/{id}.
// The new name arrives as a query parameter.
func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name query parameter is required")
		return
	}

	if _, err := s.items.Update(r.Context(), id, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Item not found")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	s.writeMutation(w, r, "Item updated")
}

// deleteItem handles DELETE /items/{id}.
func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := s.items.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Item not found")
			return
		}
		writeInternalError(r.Context(), w, err)
		return
	}

	s.writeMutation(w, r, "Item deleted")
}

// echoItem handles POST /items/echo.
// It round-trips a JSON body without touching storage, exercising model
// binding on its own.
func (s *Server) echoItem(w http.ResponseWriter, r *http.Request) {
	var req echoItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.ID == nil || req.Name == nil || req.Price == nil {
		writeDetail(w, http.StatusUnprocessableEntity, "id, name and price are required")
		return
	}

	writeJSON(w, http.StatusOK, echoItemResponse{
		ID:    *req.ID,
		Name:  *req.Name,
		Price: *req.Price,
	})
}

// --- mapping helpers --------------------------------------------------------

// writeMutation answers a successful mutation with msg plus the current
// snapshot of the items table.
func (s *Server) writeMutation(w http.ResponseWriter, r *http.Request, msg string) {
	snapshot, err := s.items.Snapshot(r.Context())
	if err != nil {
		writeInternalError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Msg: msg, DB: snapshot})
}

// itemID parses the {id} path parameter, writing a 422 on malformed input.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return id, true
}

// optionalInt parses an optional integer query parameter, returning nil when
// the parameter is absent.
func optionalInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
