package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// SimConfig parameterizes a batch of independent games.
type SimConfig struct {
	Games       int
	Height      int
	Width       int
	Mines       int
	Seed        int64 // game i plays with Seed+i
	Parallelism int
}

// Stats aggregates a batch of results.
type Stats struct {
	Games     int
	Wins      int
	Losses    int
	WinRate   float64
	AvgMoves  float64
	AvgGuess  float64
	TotalTime time.Duration
}

// Simulate plays cfg.Games independent games, at most cfg.Parallelism at a
// time. Each game owns its board, agent, and knowledge base; nothing is
// shared between games. The first game error cancels the batch.
func (r *Runner) Simulate(ctx context.Context, cfg SimConfig) ([]Result, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("simulate: games must be positive, got %d", cfg.Games)
	}
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	results := make([]Result, cfg.Games)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			res, err := r.PlayNew(ctx, cfg.Height, cfg.Width, cfg.Mines, cfg.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Aggregate summarizes a batch of results.
func Aggregate(results []Result) Stats {
	stats := Stats{Games: len(results)}
	if stats.Games == 0 {
		return stats
	}
	var moves, guesses int
	for _, res := range results {
		if res.Won {
			stats.Wins++
		} else {
			stats.Losses++
		}
		moves += res.Moves
		guesses += res.Guesses
		stats.TotalTime += res.Duration
	}
	stats.WinRate = float64(stats.Wins) / float64(stats.Games)
	stats.AvgMoves = float64(moves) / float64(stats.Games)
	stats.AvgGuess = float64(guesses) / float64(stats.Games)
	return stats
}
