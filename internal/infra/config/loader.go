// Package config provides configuration loading functionality.
// Configuration covers ambient concerns only (paths, log level,
// default theme); tracker semantics are never configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the config file in the config directory.
const ConfigFileName = "config.toml"

// appDirName is the directory name under XDG config/data homes.
const appDirName = "pmdash"

// Config represents the application configuration.
type Config struct {
	DataDir string    `toml:"data_dir,omitempty"` // Override for the data directory
	Log     LogConfig `toml:"log,omitempty"`
	UI      UIConfig  `toml:"ui,omitempty"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// UIConfig holds presentation settings from the [ui] section.
type UIConfig struct {
	DefaultTheme string `toml:"default_theme,omitempty"` // light or dark, used before a theme is persisted
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader using the default config directory
// (XDG_CONFIG_HOME/pmdash, falling back to ~/.config/pmdash).
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appDirName)
}

// Load returns the configuration, merged over defaults. A missing file
// yields the defaults; a malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	base := NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	content, err := os.ReadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := toml.Unmarshal(content, &loaded); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return merge(base, &loaded), nil
}

// merge overlays non-zero fields of over onto base.
func merge(base, over *Config) *Config {
	out := *base
	if over.DataDir != "" {
		out.DataDir = over.DataDir
	}
	if over.Log.Level != "" {
		out.Log.Level = over.Log.Level
	}
	if over.UI.DefaultTheme != "" {
		out.UI.DefaultTheme = over.UI.DefaultTheme
	}
	return &out
}

// DefaultDataDir resolves the default data directory
// (XDG_DATA_HOME/pmdash, falling back to ~/.local/share/pmdash).
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appDirName), nil
}
