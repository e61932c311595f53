// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Store backend names accepted in the "store" field.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Store selects the record store backend: "memory" or "sqlite".
	Store string `koanf:"store"`

	// SQLitePath is the database file used when Store is "sqlite".
	SQLitePath string `koanf:"sqlite_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Addr:       ":9080",
		Store:      StoreMemory,
		SQLitePath: "healthlog.db",
	}
}
