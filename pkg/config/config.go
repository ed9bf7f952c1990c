// Package config provides configuration management for argodb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify
//     Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//
// # Environment Variables
//
// Use the ARGODB_ prefix with underscores for nesting:
//
//	ARGODB_DATABASE_HOST=localhost
//	ARGODB_DATABASE_PORT=5432
//	ARGODB_PROCESS_MODE=flexible
//	ARGODB_LOG_LEVEL=info
package config

import "runtime"

// Processing modes. The mode decides validation strictness for incoming
// NetCDF files, never extraction logic.
const (
	// ModeArgo requires profiling-float variables in every file.
	ModeArgo = "argo"

	// ModeFlexible accepts any readable NetCDF file.
	ModeFlexible = "flexible"

	// ModeAuto detects the file type and validates accordingly.
	ModeAuto = "auto"
)

// Config represents the complete argodb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Process contains settings for the NetCDF ingestion pipeline.
	Process ProcessConfig `mapstructure:"process" yaml:"process"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of files processed concurrently by the
	// batch entry point. 1 keeps processing strictly sequential.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It is set by the CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize caps the number of measurement rows per bulk insert.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ProcessConfig contains settings for the ingestion pipeline.
type ProcessConfig struct {
	// Mode is the processing mode: "argo", "flexible" or "auto".
	// Invalid values fall back to "flexible" with a warning.
	Mode string `mapstructure:"mode" yaml:"mode"`

	// GridSize is the cell size in degrees for geographic aggregation.
	GridSize float64 `mapstructure:"grid_size" yaml:"grid_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "argo",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Process: ProcessConfig{
			Mode:     ModeFlexible,
			GridSize: 1.0,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// ValidMode reports whether s is a recognized processing mode.
func ValidMode(s string) bool {
	switch s {
	case ModeArgo, ModeFlexible, ModeAuto:
		return true
	}
	return false
}
