// Package handler implements the HTTP handlers for the restkata API.
// All handlers are methods on Server and are wired to paths by Routes.
// Methods are split into endpoint-specific files (health.go, item.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/restkata/restkata/internal/domain"
)

// ItemServicer defines the business operations the item handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ItemServicer interface {
	Create(ctx context.Context, id int64, name string) (domain.Item, error)
	GetByID(ctx context.Context, id int64) (domain.Item, error)
	Update(ctx context.Context, id int64, name string) (domain.Item, error)
	Delete(ctx context.Context, id int64) error
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Item, int64, error)
	Snapshot(ctx context.Context) (map[int64]string, error)
}

// UserServicer defines the business operations the user handlers depend on.
type UserServicer interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
}

// AuthServicer defines the credential operations the auth handlers depend on.
type AuthServicer interface {
	HashPassword(ctx context.Context, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(token string) bool
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by all API endpoints.
// Methods are in endpoint-specific files but all operate on this struct.
type Server struct {
	items  ItemServicer
	users  UserServicer
	auth   AuthServicer
	export ExportServicer

	// uiDelay is how long GET /ui stalls before answering, simulating a
	// slow upstream.
	uiDelay time.Duration
}

// NewServer constructs the Server with all its dependencies.
func NewServer(items ItemServicer, users UserServicer, auth AuthServicer, export ExportServicer, uiDelay time.Duration) *Server {
	return &Server{
		items:   items,
		users:   users,
		auth:    auth,
		export:  export,
		uiDelay: uiDelay,
	}
}
