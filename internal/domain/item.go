// Package domain contains the core data types for the restkata API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Item is a single named entry in the item store. IDs are client-assigned
// integers, so creating an item whose ID already exists is a conflict rather
// than an upsert.
type Item struct {
	ID        int64     `json:"item_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
