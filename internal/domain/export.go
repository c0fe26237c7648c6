package domain

import "time"

// ExportRow is a single row in the full-data export: a flat view of one item.
// JSON field names follow the item wire format; CSV encoding formats the
// timestamps as RFC3339 (handled by the HTTP layer).
type ExportRow struct {
	ItemID    int64     `json:"item_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
