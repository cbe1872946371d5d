// Package config loads cursorview's optional settings file. Settings only
// provide defaults; command line flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when no config file exists and no flag is given.
const (
	DefaultDays  = 7
	DefaultLimit = 20
)

// Config holds user-tunable defaults read from ~/.cursorview/config.yaml.
type Config struct {
	// Days is the default recency window.
	Days int `yaml:"days"`
	// Limit is the default prompt cap for the detail view.
	Limit int `yaml:"limit"`
	// StorageRoot overrides the platform-default workspace storage
	// location. Mainly useful for portable installs and tests.
	StorageRoot string `yaml:"storage_root"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Days:  DefaultDays,
		Limit: DefaultLimit,
	}
}

// Path returns the config file location, ~/.cursorview/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".cursorview", "config.yaml"), nil
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is not an error: the built-in defaults are
// returned. A malformed file is an error so the user finds out their
// settings aren't being applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Days <= 0 {
		cfg.Days = DefaultDays
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return cfg, nil
}
