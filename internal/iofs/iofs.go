// Package iofs prepares the on-disk layout argodb needs: config, cache
// and log directories, plus the default config file.
package iofs

import (
	_ "embed"
	"os"

	"github.com/oceandata/argodb/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ValidateConfigFile checks that a config file parses as YAML into the
// config structure. Unknown keys are not an error; viper ignores them
// the same way.
func ValidateConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadFileError(path, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ReadFileError(path, err)
	}

	return nil
}
