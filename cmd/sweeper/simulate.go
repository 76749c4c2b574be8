package main

import (
	"fmt"
	"strconv"

	"sweeper/internal/runner"

	"github.com/spf13/cobra"
)

var simulateSeed int64

// simulateCmd plays a batch of games and reports aggregate statistics.
var simulateCmd = &cobra.Command{
	Use:   "simulate [games]",
	Short: "Play a batch of games in parallel and report statistics",
	Long: `Plays many independent games concurrently. Each game gets its own board
and a fresh knowledge base; game i uses seed+i so runs are reproducible.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 0, "base seed (0 = random)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	games := cfg.Run.Games
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parse game count %q: %w", args[0], err)
		}
		games = n
	}

	simCfg := runner.SimConfig{
		Games:       games,
		Height:      cfg.Board.Height,
		Width:       cfg.Board.Width,
		Mines:       cfg.Board.Mines,
		Seed:        gameSeed(simulateSeed),
		Parallelism: cfg.Run.Parallelism,
	}

	r := runner.New(logger)
	results, err := r.Simulate(cmd.Context(), simCfg)
	if err != nil {
		return err
	}

	stats := runner.Aggregate(results)
	fmt.Printf("Board:    %dx%d, %d mines\n", simCfg.Height, simCfg.Width, simCfg.Mines)
	fmt.Printf("Games:    %d (seed %d, parallelism %d)\n", stats.Games, simCfg.Seed, simCfg.Parallelism)
	fmt.Printf("Won:      %d (%.1f%%)\n", stats.Wins, stats.WinRate*100)
	fmt.Printf("Lost:     %d\n", stats.Losses)
	fmt.Printf("Moves:    %.1f avg (%.1f guessed)\n", stats.AvgMoves, stats.AvgGuess)
	fmt.Printf("Duration: %s total\n", stats.TotalTime)

	return record(results)
}
