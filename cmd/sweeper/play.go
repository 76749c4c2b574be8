package main

import (
	"fmt"
	"math/rand"

	"sweeper/cmd/sweeper/ui"
	"sweeper/internal/agent"
	"sweeper/internal/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var playSeed int64

// playCmd watches the agent play in an interactive TUI.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch the agent play in an interactive TUI",
	Long: `Opens a terminal UI showing the board as the agent sees it. Step through
moves one keypress at a time or let the agent run; flagged mines, revealed
counts, and the size of the knowledge base are shown live.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "board and guess seed (0 = random)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	seed := gameSeed(playSeed)
	board, err := game.NewBoard(cfg.Board.Height, cfg.Board.Width, cfg.Board.Mines,
		rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	ag := agent.New(cfg.Board.Height, cfg.Board.Width, seed, logger)

	model := ui.NewPlayModel(board, ag, seed)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run play ui: %w", err)
	}
	return nil
}
