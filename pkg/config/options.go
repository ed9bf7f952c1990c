package config

import (
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of measurement rows per bulk
// insert.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptProcessMode sets the processing mode: "argo", "flexible" or "auto".
// Invalid values fall back to "flexible" with a warning so the pipeline
// keeps running.
func OptProcessMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if ValidMode(s) {
			c.Process.Mode = s
			return
		}
		gn.Warn(
			"Invalid processing mode '%s', falling back to '%s'",
			s, ModeFlexible,
		)
		c.Process.Mode = ModeFlexible
	}
}

// OptProcessGridSize sets the cell size in degrees for geographic
// aggregation.
func OptProcessGridSize(f float64) Option {
	return func(c *Config) {
		if f > 0 {
			c.Process.GridSize = f
			return
		}
		gn.Warn("<em>Grid Size</em> has to be positive, ignoring %v", f)
	}
}

// OptLogFormat sets the log output format: 'json' or 'text'.
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level: 'debug', 'info', 'warn', 'error'.
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs go: 'file', 'stdout' or 'stderr'.
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of files processed concurrently.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache and logs.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}
