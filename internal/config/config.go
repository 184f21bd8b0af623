// SPDX-License-Identifier: MPL-2.0

// Package config locates the launcher's files and loads its optional
// application-level configuration.
//
// The game catalog lives in the config directory and the play-time ledger
// in the data directory, both following platform conventions (XDG on
// Linux). An optional config.toml in the config directory can override the
// catalog and ledger paths and the default verbosity.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config and data
	// directory leaf.
	AppName = "gamerun"

	// CatalogFileName is the game catalog file inside the config directory.
	CatalogFileName = "games.toml"

	// StatsFileName is the play-time ledger file inside the data directory.
	StatsFileName = "game_stats.tsv"

	// configFileName is the optional app config file (without extension).
	configFileName = "config"
)

// Config holds the application-level settings. Zero values defer to the
// platform defaults computed in Load.
type Config struct {
	// Catalog overrides the game catalog path.
	Catalog string `mapstructure:"catalog"`
	// StatsFile overrides the play-time ledger path.
	StatsFile string `mapstructure:"stats_file"`
	// Verbose enables debug logging by default.
	Verbose bool `mapstructure:"verbose"`
}

// ConfigDir returns the launcher configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DataDir returns the launcher data directory: %LOCALAPPDATA% on Windows,
// ~/Library/Application Support on macOS, $XDG_DATA_HOME (defaulting to
// ~/.local/share) on Linux and others.
func DataDir() (string, error) {
	var dataDir string

	switch runtime.GOOS {
	case "windows":
		dataDir = os.Getenv("LOCALAPPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		dataDir = os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dataDir = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(dataDir, AppName), nil
}

// EnsureDirs creates the config and data directories if needed.
func EnsureDirs() error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// Load reads the optional app config file and environment overrides
// (GAMERUN_CATALOG, GAMERUN_STATS_FILE, GAMERUN_VERBOSE). A missing config
// file is not an error; unset values fall back to the platform default
// paths.
func Load() (*Config, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("GAMERUN")
	v.AutomaticEnv()

	v.SetDefault("catalog", filepath.Join(configDir, CatalogFileName))
	v.SetDefault("stats_file", filepath.Join(dataDir, StatsFileName))
	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read app config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	return cfg, nil
}
