package main

import (
	"fmt"
	"os"

	"sweeper/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "sweeper - knowledge-based minesweeper agent",
	Long: `sweeper plays minesweeper by deduction rather than guessing.

It maintains a knowledge base of logical sentences about which unopened
cells are mines, derives new certain facts via subset resolution after
every observation, and only falls back to a random move when no cell is
provably safe.

Commands:
  solve     play one game to completion and print the outcome
  simulate  play a batch of games in parallel and report statistics
  history   show recorded results from past games
  play      watch the agent play in an interactive TUI`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		zapCfg := zap.NewProductionConfig()
		if cfg.Logging.Development {
			zapCfg = zap.NewDevelopmentConfig()
		}
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sweeper.yaml", "path to config file")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// gameSeed resolves the effective seed: flag wins, then config, then clock.
func gameSeed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if cfg.Run.Seed != 0 {
		return cfg.Run.Seed
	}
	return timeSeed()
}
