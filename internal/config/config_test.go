package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 120\ninput = \"csv\"\nrepeat = [\"id\", \"name\"]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Width: 120, Input: "csv", Repeat: []string{"id", "name"}}, cfg)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadExplicitPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = [not toml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tablr"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tablr", "config.toml"), []byte("width = 60\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Width)
}
