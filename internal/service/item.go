// Package service contains the business logic for the restkata API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/restkata/restkata/internal/domain"
	"github.com/restkata/restkata/internal/repo"
)

// ItemService implements business logic for Item operations.
// Item names may be empty and IDs may be any int64, including negatives —
// the only business rule is ID uniqueness, enforced by the repo.
type ItemService struct {
	repo repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided ItemRepo.
func NewItemService(r repo.ItemRepo) *ItemService {
	return &ItemService{repo: r}
}

// Create persists a new item under the client-assigned ID.
// Returns domain.ErrConflict if an item with that ID already exists.
func (s *ItemService) Create(ctx context.Context, id int64, name string) (domain.Item, error) {
	result, err := s.repo.Create(ctx, domain.Item{ID: id, Name: name})
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single item by ID.
// Returns domain.ErrNotFound if no item with that ID exists.
func (s *ItemService) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.GetByID: %w", err)
	}
	return result, nil
}

// Update renames an existing item.
// Returns domain.ErrNotFound if no item with that ID exists.
func (s *ItemService) Update(ctx context.Context, id int64, name string) (domain.Item, error) {
	result, err := s.repo.Update(ctx, domain.Item{ID: id, Name: name})
	if err != nil {
		return domain.Item{}, fmt.Errorf("service.ItemService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an item by ID.
// Returns domain.ErrNotFound if no item with that ID exists.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItemService.Delete: %w", err)
	}
	return nil
}

// ListPaged returns one page of items ordered by ID plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItemService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Item, int64, error) {
	items, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItemService.ListPaged: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, total, nil
}

// Snapshot returns the entire item store as an id→name map. Mutation
// endpoints embed this snapshot in their responses, mirroring the write they
// just performed. JSON marshalling stringifies the int64 keys.
func (s *ItemService) Snapshot(ctx context.Context) (map[int64]string, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ItemService.Snapshot: %w", err)
	}
	snapshot := make(map[int64]string, len(items))
	for _, it := range items {
		snapshot[it.ID] = it.Name
	}
	return snapshot, nil
}
