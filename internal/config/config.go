// Package config handles the configuration directory and the optional config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"todomatic/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "todomatic"

	// ConfigFile is the optional settings file inside the config directory.
	ConfigFile = "config.toml"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// SeedPath is the JSON file the session starts from. Empty means start empty.
	SeedPath string

	// DefaultFilter is the filter a new session starts with.
	DefaultFilter task.Filter

	// LogLevel is the charmbracelet/log level name ("debug", "info", ...).
	LogLevel string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors config.toml.
type fileConfig struct {
	DefaultFilter string `toml:"default_filter"`
	Seed          string `toml:"seed"`
	LogLevel      string `toml:"log_level"`
}

// New creates a Config with defaults for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todomatic or $HOME/.config/todomatic.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:           dir,
		DefaultFilter: task.All,
		LogLevel:      "info",
	}
}

// Load creates a Config for configDir and applies config.toml when present.
// A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	path := cfg.FilePath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if fc.DefaultFilter != "" {
		f, err := task.ParseFilter(fc.DefaultFilter)
		if err != nil {
			return nil, fmt.Errorf("config file %s: default_filter: %w", path, err)
		}
		cfg.DefaultFilter = f
	}
	if fc.Seed != "" {
		cfg.SeedPath = cfg.resolve(fc.Seed)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fc.LogLevel)
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// resolve makes a path from config.toml relative to the config directory.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}
