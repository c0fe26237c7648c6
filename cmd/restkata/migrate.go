package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/restkata/restkata/internal/config"
	"github.com/restkata/restkata/migrations"
)

// migrateCmd groups the schema migration subcommands.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  `Apply, roll back, or inspect the embedded SQL migrations.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
			results, err := p.Up(ctx)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			if len(results) == 0 {
				fmt.Println("database is up to date")
				return nil
			}
			for _, r := range results {
				fmt.Printf("applied %s\n", r.Source.Path)
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
			result, err := p.Down(ctx)
			if err != nil {
				return fmt.Errorf("roll back migration: %w", err)
			}
			fmt.Printf("rolled back %s\n", result.Source.Path)
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
			statuses, err := p.Status(ctx)
			if err != nil {
				return fmt.Errorf("migration status: %w", err)
			}
			for _, st := range statuses {
				fmt.Printf("%-12s %s\n", st.State, st.Source.Path)
			}
			return nil
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

// withProvider opens the configured database, builds a goose provider over
// the embedded migrations, and hands it to fn. goose needs a database/sql
// handle, so this uses the pgx stdlib adapter instead of a pgx pool.
func withProvider(ctx context.Context, fn func(context.Context, *goose.Provider) error) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	return fn(ctx, provider)
}
