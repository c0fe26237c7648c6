// Package config loads and validates application configuration.
// Values come from three layers applied in order: built-in defaults, an
// optional YAML file, and finally environment variables. Environment always
// wins so deployments can override a checked-in config file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the restkata server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIToken is the static token accepted by the token middleware on
	// /secure-data. Defaults to "secret123".
	APIToken string

	// AdminUsername and AdminPassword are the single login credential pair.
	// The password is bcrypt-hashed at startup and never compared in plain
	// text after boot. Both default to "admin".
	AdminUsername string
	AdminPassword string

	// SessionTTL is how long a login session token stays valid. Defaults to 30m.
	SessionTTL time.Duration

	// UIDelay is the artificial latency of GET /ui. Defaults to 2s.
	UIDelay time.Duration

	// MaxBodyBytes caps incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// fileConfig mirrors Config for the YAML overlay file. All fields are
// pointers (or slices) so an absent key is distinguishable from a zero value
// and leaves the default untouched. Durations are strings in Go syntax.
type fileConfig struct {
	Port          *string  `yaml:"port"`
	DatabaseURL   *string  `yaml:"database_url"`
	LogLevel      *string  `yaml:"log_level"`
	CORSOrigins   []string `yaml:"cors_origins"`
	APIToken      *string  `yaml:"api_token"`
	AdminUsername *string  `yaml:"admin_username"`
	AdminPassword *string  `yaml:"admin_password"`
	SessionTTL    *string  `yaml:"session_ttl"`
	UIDelay       *string  `yaml:"ui_delay"`
	MaxBodyBytes  *int64   `yaml:"max_body_bytes"`
}

// Load builds a Config from defaults, the optional YAML file at path (pass ""
// to skip), and environment variables, in that order of precedence.
// Returns an error for an unreadable or malformed file, an invalid duration
// or integer value, or a missing DATABASE_URL.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:          "8080",
		LogLevel:      "info",
		CORSOrigins:   []string{"*"},
		APIToken:      "secret123",
		AdminUsername: "admin",
		AdminPassword: "admin",
		SessionTTL:    30 * time.Minute,
		UIDelay:       2 * time.Second,
		MaxBodyBytes:  1 << 20,
	}

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("required configuration not set: DATABASE_URL (or database_url in the config file)")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}

	return cfg, nil
}

// applyFile overlays the YAML file at path onto cfg.
// Unknown keys are rejected so typos fail loudly instead of silently keeping
// a default.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.DatabaseURL != nil {
		cfg.DatabaseURL = *fc.DatabaseURL
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.CORSOrigins != nil {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.APIToken != nil {
		cfg.APIToken = *fc.APIToken
	}
	if fc.AdminUsername != nil {
		cfg.AdminUsername = *fc.AdminUsername
	}
	if fc.AdminPassword != nil {
		cfg.AdminPassword = *fc.AdminPassword
	}
	if fc.SessionTTL != nil {
		d, err := time.ParseDuration(*fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("invalid session_ttl %q: %w", *fc.SessionTTL, err)
		}
		cfg.SessionTTL = d
	}
	if fc.UIDelay != nil {
		d, err := time.ParseDuration(*fc.UIDelay)
		if err != nil {
			return fmt.Errorf("invalid ui_delay %q: %w", *fc.UIDelay, err)
		}
		cfg.UIDelay = d
	}
	if fc.MaxBodyBytes != nil {
		cfg.MaxBodyBytes = *fc.MaxBodyBytes
	}
	return nil
}

// applyEnv overlays environment variables onto cfg. Empty variables are
// treated as unset.
func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.APIToken, "API_TOKEN")
	setString(&cfg.AdminUsername, "ADMIN_USERNAME")
	setString(&cfg.AdminPassword, "ADMIN_PASSWORD")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	if err := setDuration(&cfg.SessionTTL, "SESSION_TTL"); err != nil {
		return err
	}
	if err := setDuration(&cfg.UIDelay, "UI_DELAY"); err != nil {
		return err
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_BODY_BYTES %q: %w", v, err)
		}
		cfg.MaxBodyBytes = n
	}
	return nil
}

// setString assigns the environment variable named by key to dst when it is
// set and non-empty.
func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// setDuration parses the environment variable named by key as a Go duration.
func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
