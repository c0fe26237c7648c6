package domain

import "time"

// User is a registered API user. The ID is supplied by the client on
// creation, mirroring the item store. Email is stored as an opaque string;
// no format validation is applied.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
