// Package repo contains all database access logic for the restkata API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/restkata/restkata/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ItemRepo defines the persistence operations for Items.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ItemRepo interface {
	// Create inserts a new item with its client-assigned ID and returns the
	// persisted record (with DB-generated created_at and updated_at).
	// Returns domain.ErrConflict if an item with that ID already exists.
	Create(ctx context.Context, item domain.Item) (domain.Item, error)

	// GetByID retrieves a single item by its integer primary key.
	// Returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Item, error)

	// Update overwrites the name of an existing item and returns the updated
	// record. Returns domain.ErrNotFound if no item with that ID exists.
	Update(ctx context.Context, item domain.Item) (domain.Item, error)

	// Delete removes an item by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// ListPaged returns one page of items ordered by ID ascending, plus the
	// total row count for pagination metadata.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Item, int64, error)

	// ListAll returns every item ordered by ID ascending. Feeds the store
	// snapshot embedded in mutation responses and the /export endpoint.
	ListAll(ctx context.Context) ([]domain.Item, error)
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

// Create inserts a new item row and returns the full persisted record.
func (r *pgItemRepo) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		INSERT INTO items (id, name)
		VALUES (@id, @name)
		RETURNING id, name, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": item.ID, "name": item.Name})
	result, err := scanItem(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Item{}, fmt.Errorf("repo.ItemRepo.Create: %w", domain.ErrConflict)
		}
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an item by primary key.
func (r *pgItemRepo) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	const q = `
		SELECT id, name, created_at, updated_at
		FROM items
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update overwrites the item's name and returns the updated record.
func (r *pgItemRepo) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	const q = `
		UPDATE items
		SET name       = @name,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": item.ID, "name": item.Name})
	result, err := scanItem(row)
	if err != nil {
		return domain.Item{}, fmt.Errorf("repo.ItemRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an item by primary key.
func (r *pgItemRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM items WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItemRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ListPaged returns one page of items ordered by ID plus the total count.
func (r *pgItemRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Item, int64, error) {
	const q = `
		SELECT id, name, created_at, updated_at
		FROM items
		ORDER BY id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItemRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItemRepo.ListPaged: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItemRepo.ListPaged: rows: %w", err)
	}

	const countQ = `SELECT count(*) FROM items`
	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItemRepo.ListPaged: count: %w", err)
	}

	return items, total, nil
}

// ListAll returns every item ordered by ID ascending.
func (r *pgItemRepo) ListAll(ctx context.Context) ([]domain.Item, error) {
	const q = `
		SELECT id, name, created_at, updated_at
		FROM items
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListAll: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListAll: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListAll: rows: %w", err)
	}
	return items, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanItem maps a single database row into a domain.Item.
func scanItem(s scanner) (domain.Item, error) {
	var it domain.Item
	err := s.Scan(&it.ID, &it.Name, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, err
	}
	return it, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error,
// which signals a client-assigned ID collision.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
