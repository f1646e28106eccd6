// Package config loads runtime settings for the LabBench backend.
//
// Sources are applied in order: built-in defaults, then an optional JSON file
// (-c / -config), then command-line flags. Later sources take precedence.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the LabBench backend.
//
// Fields:
//   - DataDir: per-user application data directory. The store creates
//     users.db inside it.
type Config struct {
	DataDir string
}

// LoadDefaults populates c with sensible defaults. The data directory
// defaults to the OS per-user config location (e.g. ~/.config/labbench);
// if that cannot be resolved, the current directory is used.
func (c *Config) LoadDefaults() {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	c.DataDir = filepath.Join(base, "labbench")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
