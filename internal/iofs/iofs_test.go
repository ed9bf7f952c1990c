package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oceandata/argodb/internal/iofs"
	"github.com/oceandata/argodb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// second run is a no-op
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, iofs.ConfigYAML, string(data))
	assert.Contains(t, string(data), "ARGODB_DATABASE_HOST")

	// an existing config file is never overwritten
	require.NoError(t, os.WriteFile(path, []byte("user: edited"), 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user: edited", string(data))
}

func TestValidateConfigFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good,
		[]byte("database:\n  host: db.example.com\n  port: 5433\n"), 0644))
	assert.NoError(t, iofs.ValidateConfigFile(good))

	// the shipped template is all comments, still valid YAML
	tmpl := filepath.Join(dir, "template.yaml")
	require.NoError(t, os.WriteFile(tmpl, []byte(iofs.ConfigYAML), 0644))
	assert.NoError(t, iofs.ValidateConfigFile(tmpl))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad,
		[]byte("database: [unclosed"), 0644))
	assert.Error(t, iofs.ValidateConfigFile(bad))

	assert.Error(t,
		iofs.ValidateConfigFile(filepath.Join(dir, "missing.yaml")))
}

func TestEnsureConfigFileMissingDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "no-such-home")
	assert.Error(t, iofs.EnsureConfigFile(home))
}
