// Package config provides YAML-based configuration for slidepuzzle.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig controls puzzle setup.
type GameConfig struct {
	DefaultSeed  string `yaml:"default_seed"`
	HistoryDepth int    `yaml:"history_depth"`
	LevelsDir    string `yaml:"levels_dir"` // Extra puzzle pack; empty uses only the built-in one
}

// UIConfig controls the terminal interface.
type UIConfig struct {
	Theme     string `yaml:"theme"`
	ShowHints bool   `yaml:"show_hints"`
}

// StorageConfig controls solve persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error

	if c.Game.DefaultSeed != "" {
		if _, err := seed.Parse(c.Game.DefaultSeed); err != nil {
			errs = append(errs, fmt.Errorf("game.default_seed: %w", err))
		}
	}
	if c.Game.HistoryDepth < 1 {
		errs = append(errs, fmt.Errorf("game.history_depth: must be at least 1, got %d", c.Game.HistoryDepth))
	}
	if _, ok := render.ThemeByName(c.UI.Theme); !ok {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q (available: %s)",
			c.UI.Theme, strings.Join(render.ThemeNames(), ", ")))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path: must not be empty"))
	}
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address: must not be empty"))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes: must not be negative, got %d", c.Server.IdleTimeoutMinutes))
	}

	return errors.Join(errs...)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
