package main

import (
	"github.com/spf13/cobra"

	"github.com/restkata/restkata/internal/version"
)

// cfgFile is the optional YAML config path given via --config.
// Environment variables always take precedence over the file.
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "restkata",
	Short: "A compact JSON-over-HTTP practice API",
	Long: `restkata serves a compact JSON-over-HTTP practice API backed by Postgres.

Every endpoint exercises one web fundamental: path and query parameters,
model binding, error mapping, persistence, authentication, and export.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to a YAML config file (environment variables take precedence)")
}
