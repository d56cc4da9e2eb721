// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings backends.
const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
	BackendSQLite    = "sqlite"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port string

	// SettingsBackend selects where the theme flag is persisted.
	SettingsBackend string
	SQLitePath      string

	// Firebase is only read when SettingsBackend is BackendFirestore.
	FirebaseProjectID string
	CredentialsFile   string

	DefaultTheme string
	SelectDelay  time.Duration

	// SeedFile replaces the embedded seed profiles when set.
	SeedFile string

	AllowedOrigins []string
}

// Load reads the environment, after merging an optional .env file from the working
// directory, and validates the result.
func Load() (*Config, error) {
	// A missing .env is the normal case in deployed environments.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		SettingsBackend:   strings.ToLower(getEnvOrDefault("SETTINGS_BACKEND", BackendMemory)),
		SQLitePath:        getEnvOrDefault("SETTINGS_SQLITE_PATH", "./data/settings.db"),
		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DefaultTheme:      strings.ToLower(getEnvOrDefault("DEFAULT_THEME", "light")),
		SeedFile:          os.Getenv("SEED_FILE"),
		AllowedOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	delay, err := time.ParseDuration(getEnvOrDefault("SELECT_DELAY", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("config: SELECT_DELAY: %w", err)
	}
	cfg.SelectDelay = delay

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: invalid PORT %q", c.Port)
	}
	switch c.SettingsBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: SETTINGS_SQLITE_PATH is required for the sqlite backend")
		}
	case BackendFirestore:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("config: FIREBASE_PROJECT_ID is required for the firestore backend")
		}
	default:
		return fmt.Errorf("config: unknown SETTINGS_BACKEND %q", c.SettingsBackend)
	}
	if c.DefaultTheme != "light" && c.DefaultTheme != "dark" {
		return fmt.Errorf("config: DEFAULT_THEME must be light or dark, got %q", c.DefaultTheme)
	}
	if c.SelectDelay < 0 {
		return fmt.Errorf("config: SELECT_DELAY must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
