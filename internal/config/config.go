// Package config loads sweeper configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all sweeper configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Run     RunConfig     `yaml:"run"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig describes the board games are played on.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// RunConfig controls game runs and batch simulations.
type RunConfig struct {
	Seed        int64 `yaml:"seed"` // 0 means derive from wall clock
	Games       int   `yaml:"games"`
	Parallelism int   `yaml:"parallelism"`
}

// HistoryConfig controls the game-result store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is present: the
// classic 8x8 board with 8 mines.
func Default() Config {
	return Config{
		Board: BoardConfig{Height: 8, Width: 8, Mines: 8},
		Run:   RunConfig{Games: 100, Parallelism: 4},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(".sweeper", "history.db"),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path, falling back to defaults when path is
// empty or the file does not exist, then applies environment overrides and
// validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults.
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays SWEEPER_* environment variables onto the config.
func applyEnv(cfg *Config) error {
	for _, ov := range []struct {
		key string
		dst *int
	}{
		{"SWEEPER_BOARD_HEIGHT", &cfg.Board.Height},
		{"SWEEPER_BOARD_WIDTH", &cfg.Board.Width},
		{"SWEEPER_BOARD_MINES", &cfg.Board.Mines},
		{"SWEEPER_RUN_PARALLELISM", &cfg.Run.Parallelism},
	} {
		raw, ok := os.LookupEnv(ov.key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse %s=%q: %w", ov.key, raw, err)
		}
		*ov.dst = v
	}
	if raw, ok := os.LookupEnv("SWEEPER_HISTORY_PATH"); ok {
		cfg.History.Path = raw
	}
	if raw, ok := os.LookupEnv("SWEEPER_LOG_LEVEL"); ok {
		cfg.Logging.Level = raw
	}
	return nil
}

// Validate checks the config for values no component can run with.
func (c Config) Validate() error {
	if c.Board.Height <= 0 || c.Board.Width <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.Board.Height, c.Board.Width)
	}
	if c.Board.Mines < 0 || c.Board.Mines >= c.Board.Height*c.Board.Width {
		return fmt.Errorf("mines must be in [0, %d) for a %dx%d board, got %d",
			c.Board.Height*c.Board.Width, c.Board.Height, c.Board.Width, c.Board.Mines)
	}
	if c.Run.Games <= 0 {
		return fmt.Errorf("run.games must be positive, got %d", c.Run.Games)
	}
	if c.Run.Parallelism <= 0 {
		return fmt.Errorf("run.parallelism must be positive, got %d", c.Run.Parallelism)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path required when history is enabled")
	}
	return nil
}
