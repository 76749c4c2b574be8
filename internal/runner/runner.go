// Package runner drives complete games: it asks the agent for moves,
// reveals cells against the board, and feeds the resulting counts back as
// observations until the game is won, lost, or out of moves.
package runner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"sweeper/internal/agent"
	"sweeper/internal/game"
	"sweeper/internal/knowledge"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result records the outcome of one completed game.
type Result struct {
	GameID    string
	Seed      int64
	Height    int
	Width     int
	Mines     int
	Won       bool
	Moves     int
	SafeMoves int
	Guesses   int
	Flagged   int
	Duration  time.Duration
	PlayedAt  time.Time
}

// Runner plays games of minesweeper with a fresh agent per game.
type Runner struct {
	logger *zap.Logger
}

// New creates a runner. A nil logger defaults to a no-op logger.
func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Play runs one game of the agent against the board to completion:
// safe move if one is known, otherwise a random move, otherwise stop.
// A random move can hit a mine and lose; running out of moves with every
// mine identified wins.
func (r *Runner) Play(ctx context.Context, board game.Oracle, ag *agent.Agent, seed int64) (Result, error) {
	start := time.Now()
	res := Result{
		GameID:   uuid.NewString(),
		Seed:     seed,
		PlayedAt: start,
	}
	res.Height, res.Width = board.Dims()
	if b, ok := board.(*game.Board); ok {
		res.Mines = b.MineCount()
	}

	log := r.logger.With(zap.String("game_id", res.GameID))

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		move, guess, ok := nextMove(ag)
		if !ok {
			break
		}
		res.Moves++
		if guess {
			res.Guesses++
		} else {
			res.SafeMoves++
		}
		log.Debug("move",
			zap.Stringer("cell", move),
			zap.Bool("guess", guess))

		if board.IsMine(move) {
			// Only reachable through the random path.
			log.Debug("hit mine", zap.Stringer("cell", move))
			res.Duration = time.Since(start)
			return res, nil
		}

		count, err := board.RevealCount(move)
		if err != nil {
			return res, fmt.Errorf("reveal %v: %w", move, err)
		}
		if err := ag.Observe(move, count); err != nil {
			return res, fmt.Errorf("observe %v: %w", move, err)
		}
	}

	flagged := ag.Flagged()
	res.Flagged = len(flagged)
	if b, ok := board.(*game.Board); ok {
		res.Won = b.Won(flagged)
	}
	res.Duration = time.Since(start)
	log.Debug("game over",
		zap.Bool("won", res.Won),
		zap.Int("moves", res.Moves),
		zap.Int("guesses", res.Guesses))
	return res, nil
}

// PlayNew builds a seeded board and agent and plays one game.
func (r *Runner) PlayNew(ctx context.Context, height, width, mines int, seed int64) (Result, error) {
	board, err := game.NewBoard(height, width, mines, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Result{}, fmt.Errorf("new board: %w", err)
	}
	ag := agent.New(height, width, seed, r.logger)
	return r.Play(ctx, board, ag, seed)
}

func nextMove(ag *agent.Agent) (move knowledge.Cell, guess, ok bool) {
	if c, ok := ag.SafeMove(); ok {
		return c, false, true
	}
	if c, ok := ag.RandomMove(); ok {
		return c, true, true
	}
	return knowledge.Cell{}, false, false
}
