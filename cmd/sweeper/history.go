package main

import (
	"fmt"

	"sweeper/internal/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd shows recorded results from past games.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded results from past games",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of recent games to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in config")
	}
	store, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if stats.Games == 0 {
		fmt.Println("No games recorded yet. Run 'sweeper solve' or 'sweeper simulate' first.")
		return nil
	}

	fmt.Printf("Recorded: %d games, %d won (%.1f%%), %.1f moves avg\n\n",
		stats.Games, stats.Wins, stats.WinRate*100, stats.AvgMoves)

	results, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	fmt.Printf("%-20s  %-9s  %-7s  %-6s  %-7s  %s\n",
		"PLAYED", "BOARD", "OUTCOME", "MOVES", "GUESSES", "DURATION")
	for _, res := range results {
		outcome := "lost"
		if res.Won {
			outcome = "won"
		}
		fmt.Printf("%-20s  %dx%d/%-4d  %-7s  %-6d  %-7d  %s\n",
			res.PlayedAt.Format("2006-01-02 15:04:05"),
			res.Height, res.Width, res.Mines,
			outcome, res.Moves, res.Guesses, res.Duration)
	}
	return nil
}
