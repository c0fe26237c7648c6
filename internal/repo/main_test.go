package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/restkata/restkata/migrations"
	"github.com/restkata/restkata/testutil"
)

// TestMain migrates the test database once for the whole package, so the
// per-test transactions in item_test.go and user_test.go always see the
// current schema. Without TEST_DATABASE_URL the migration step is skipped
// and every test in the package skips itself via testutil.NewPool.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	// goose drives database/sql, not pgx pools, so open a plain *sql.DB here.
	db := testutil.MustOpenSQLDB(dsn)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("repo tests: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("repo tests: apply migrations: %v", err)
	}

	os.Exit(m.Run())
}
