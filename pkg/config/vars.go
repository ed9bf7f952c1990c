package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "argodb"

	// SupportedExtensions are the conventional NetCDF file extensions.
	// The extension is advisory only; file content decides
	// processability.
	SupportedExtensions = []string{".nc", ".netcdf", ".nc4"}
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/argodb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/argodb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/argodb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/argodb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
