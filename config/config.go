// Package config loads the optional omnifetch configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"omnifetch/sysinfo"
)

// Config holds user settings. Every field has a usable default, so running
// without a config file behaves exactly like an empty one.
type Config struct {
	// ReleaseFile is read for the OS line
	ReleaseFile string `yaml:"release_file"`

	// Debug enables debug logging to stderr
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{ReleaseFile: sysinfo.DefaultReleaseFile}
}

// DefaultPath returns the config file location: $OMNIFETCH_CONFIG if set,
// otherwise omnifetch/config.yaml under the XDG config directory.
func DefaultPath() string {
	if v := os.Getenv("OMNIFETCH_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(xdgConfig(), "omnifetch", "config.yaml")
}

func xdgConfig() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".config")
	}
	return ".config"
}

// Load reads the config at path. A missing file yields Default; an unreadable
// or malformed one is an error. OMNIFETCH_DEBUG, when non-empty, turns debug
// on regardless of the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if cfg.ReleaseFile == "" {
		cfg.ReleaseFile = sysinfo.DefaultReleaseFile
	}
	if os.Getenv("OMNIFETCH_DEBUG") != "" {
		cfg.Debug = true
	}
	return cfg, nil
}
