// Package testutil holds database helpers shared by integration tests.
// Every helper keys off the TEST_DATABASE_URL environment variable and skips
// the calling test when it is unset, so `go test ./...` stays green on
// machines without Postgres.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
)

// envDatabaseURL names the environment variable carrying the test DSN.
const envDatabaseURL = "TEST_DATABASE_URL"

// NewPool connects a *pgxpool.Pool to the test database and registers a
// cleanup that closes it when the test and its subtests finish.
// Skips the test when no test database is configured.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB connects a database/sql handle to the test database via the pgx
// stdlib driver. goose needs *sql.DB rather than a pgx pool, which is the
// main reason this exists alongside NewPool.
// Skips the test when no test database is configured; closes on cleanup.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB is the TestMain variant of NewSQLDB: no *testing.T means no
// skip and no cleanup, so it panics on failure and the caller must Close.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

// requireDSN fetches the test DSN, skipping the test when it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(envDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set; skipping integration test", envDatabaseURL)
	}
	return dsn
}
