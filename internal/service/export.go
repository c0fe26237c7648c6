package service

import (
	"context"
	"fmt"

	"github.com/restkata/restkata/internal/domain"
	"github.com/restkata/restkata/internal/repo"
)

// ExportService assembles a full flat export of the item store.
type ExportService struct {
	items repo.ItemRepo
}

// NewExportService constructs an ExportService backed by the provided ItemRepo.
func NewExportService(items repo.ItemRepo) *ExportService {
	return &ExportService{items: items}
}

// Export returns one ExportRow per item, ordered by ID ascending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, domain.ExportRow{
			ItemID:    it.ID,
			Name:      it.Name,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
		})
	}
	return rows, nil
}
