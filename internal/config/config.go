// Package config holds the settings of the chess program. Settings are
// read from a JSON file in the user's XDG config directory; anything the
// file leaves out keeps its default.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chessrules/internal/errors"
)

// configFile is the config path relative to the XDG config directories.
const configFile = "chessrules/config.json"

// Verbosity levels.
const (
	Quiet   = 0 // nothing
	Normal  = 1 // rejected moves
	Verbose = 2 // every move and position
)

// Config holds all program configuration.
type Config struct {
	Display DisplayConfig `json:"display"`

	// PlacementFile holds initial placement records. Empty means the
	// standard starting position.
	PlacementFile string `json:"placement_file,omitempty"`

	// LogFile receives diagnostics. Empty discards them.
	LogFile string `json:"log_file,omitempty"`

	Verbosity int `json:"verbosity"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display:   NewDisplayConfig(),
		Verbosity: Normal,
	}
}

// Load reads the config file from the XDG config directories. A missing
// file yields the defaults.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		cfg := NewConfig()
		return cfg, cfg.Validate()
	}
	return LoadFile(path)
}

// LoadFile reads the named config file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: config path comes from XDG lookup or the -config flag
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, errors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range %d-%d", c.Verbosity, Quiet, Verbose)
	}
	return c.Display.Validate()
}

// Save writes the config to the user's XDG config directory and returns
// the path written.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(configFile)
	if err != nil {
		return "", fmt.Errorf("cannot locate config file: %w", err)
	}
	return path, c.SaveFile(path, 0o664)
}

// SaveFile writes the config as indented JSON.
func (c *Config) SaveFile(path string, perm fs.FileMode) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}
