package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8, cfg.Board.Height)
	assert.Equal(t, 8, cfg.Board.Width)
	assert.Equal(t, 8, cfg.Board.Mines)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path falls back to defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sweeper.yaml")
		data := []byte("board:\n  height: 16\n  width: 30\n  mines: 99\nlogging:\n  level: debug\n")
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Board.Height)
		assert.Equal(t, 30, cfg.Board.Width)
		assert.Equal(t, 99, cfg.Board.Mines)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// Untouched sections keep defaults.
		assert.Equal(t, Default().Run.Games, cfg.Run.Games)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sweeper.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board: ["), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("board and history overrides apply", func(t *testing.T) {
		t.Setenv("SWEEPER_BOARD_HEIGHT", "5")
		t.Setenv("SWEEPER_BOARD_WIDTH", "6")
		t.Setenv("SWEEPER_BOARD_MINES", "4")
		t.Setenv("SWEEPER_HISTORY_PATH", "/tmp/x.db")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Board.Height)
		assert.Equal(t, 6, cfg.Board.Width)
		assert.Equal(t, 4, cfg.Board.Mines)
		assert.Equal(t, "/tmp/x.db", cfg.History.Path)
	})

	t.Run("non-numeric override errors", func(t *testing.T) {
		t.Setenv("SWEEPER_BOARD_HEIGHT", "tall")

		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Board.Height = 0 }},
		{"negative mines", func(c *Config) { c.Board.Mines = -1 }},
		{"all-mine board", func(c *Config) { c.Board.Mines = 64 }},
		{"zero games", func(c *Config) { c.Run.Games = 0 }},
		{"zero parallelism", func(c *Config) { c.Run.Parallelism = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"history without path", func(c *Config) { c.History.Path = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
