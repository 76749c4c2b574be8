// Package agent exposes the minesweeper player to the surrounding game
// loop. The agent itself holds no reasoning: every observation and move
// query is delegated to its knowledge base.
package agent

import (
	"math/rand"

	"sweeper/internal/knowledge"

	"go.uber.org/zap"
)

// Agent plays one game of minesweeper on a height×width board. Knowledge
// accumulates for the lifetime of the game; create a fresh agent per game.
type Agent struct {
	height int
	width  int
	kb     *knowledge.KnowledgeBase
	rng    *rand.Rand
	logger *zap.Logger
}

// New creates an agent for a height×width board. The seed drives random
// move selection only; deduction is deterministic. A nil logger defaults to
// a no-op logger.
func New(height, width int, seed int64, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{
		height: height,
		width:  width,
		kb:     knowledge.NewKnowledgeBase(height, width, logger),
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Observe reports a revealed cell and its adjacent-mine count to the
// knowledge base, which updates itself and deduces everything it can.
func (a *Agent) Observe(cell knowledge.Cell, count int) error {
	a.logger.Debug("observe",
		zap.Stringer("cell", cell),
		zap.Int("count", count))
	return a.kb.Observe(cell, count)
}

// SafeMove returns a cell proven safe and not yet played, if any.
func (a *Agent) SafeMove() (knowledge.Cell, bool) {
	return a.kb.SafeMove()
}

// RandomMove returns a random cell that is neither a known mine nor already
// played, if any.
func (a *Agent) RandomMove() (knowledge.Cell, bool) {
	return a.kb.RandomMove(a.rng)
}

// Flagged returns the cells the agent has proven to be mines.
func (a *Agent) Flagged() []knowledge.Cell {
	return a.kb.Mines()
}

// Knowledge returns the agent's knowledge base, for rendering and tests.
func (a *Agent) Knowledge() *knowledge.KnowledgeBase {
	return a.kb
}

// Dims returns the board dimensions the agent was created for.
func (a *Agent) Dims() (height, width int) {
	return a.height, a.width
}
