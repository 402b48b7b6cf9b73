// Package config loads the optional tablr configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds defaults applied beneath command-line flags.
type Config struct {
	Width  int      `toml:"width"`
	Input  string   `toml:"input"`
	Repeat []string `toml:"repeat"`
}

// DefaultPath returns the per-user config location: config.toml in a tablr
// directory under the platform config dir ($XDG_CONFIG_HOME on Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tablr", "config.toml"), nil
}

// Load reads the TOML config at path, or the default location when path is
// empty. A missing file at the default location is fine; a missing file the
// user named explicitly is an error.
func Load(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
