package main

import (
	"fmt"
	"math/rand"
	"time"

	"sweeper/internal/agent"
	"sweeper/internal/game"
	"sweeper/internal/history"
	"sweeper/internal/runner"

	"github.com/spf13/cobra"
)

var solveSeed int64

// solveCmd plays a single game to completion.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Play one game to completion and print the outcome",
	Long: `Plays a single game on the configured board. Every move is chosen by
deduction when possible; when no cell is provably safe the agent guesses.
The final board, the cells flagged as mines, and the outcome are printed.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "board and guess seed (0 = random)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	seed := gameSeed(solveSeed)
	board, err := game.NewBoard(cfg.Board.Height, cfg.Board.Width, cfg.Board.Mines,
		rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	ag := agent.New(cfg.Board.Height, cfg.Board.Width, seed, logger)

	r := runner.New(logger)
	res, err := r.Play(cmd.Context(), board, ag, seed)
	if err != nil {
		return err
	}

	fmt.Println(board.String())
	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Moves:   %d (%d deduced, %d guessed)\n", res.Moves, res.SafeMoves, res.Guesses)
	fmt.Printf("Flagged: %v\n", ag.Flagged())
	if res.Won {
		fmt.Println("Result:  won - every mine identified")
	} else {
		fmt.Println("Result:  lost")
	}

	return record([]runner.Result{res})
}

// record saves results to the history store when it is enabled.
func record(results []runner.Result) error {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	if err := store.SaveAll(results); err != nil {
		return fmt.Errorf("record results: %w", err)
	}
	return nil
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
