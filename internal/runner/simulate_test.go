package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSimulate(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := SimConfig{
		Games:       8,
		Height:      4,
		Width:       4,
		Mines:       2,
		Seed:        100,
		Parallelism: 3,
	}

	results, err := New(nil).Simulate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 8)

	seen := make(map[string]bool)
	for i, res := range results {
		assert.Equal(t, cfg.Seed+int64(i), res.Seed)
		assert.Equal(t, 4, res.Height)
		assert.Equal(t, 4, res.Width)
		assert.Equal(t, 2, res.Mines)
		assert.Positive(t, res.Moves)
		assert.False(t, seen[res.GameID], "game IDs must be unique")
		seen[res.GameID] = true
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	_, err := New(nil).Simulate(context.Background(), SimConfig{Games: 0})
	assert.Error(t, err)
}

func TestSimulateHonorsContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Simulate(ctx, SimConfig{
		Games: 4, Height: 8, Width: 8, Mines: 8, Parallelism: 2,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregate(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		stats := Aggregate(nil)
		assert.Zero(t, stats.Games)
		assert.Zero(t, stats.WinRate)
	})

	t.Run("mixed batch", func(t *testing.T) {
		stats := Aggregate([]Result{
			{Won: true, Moves: 10, Guesses: 1, Duration: time.Second},
			{Won: false, Moves: 4, Guesses: 3, Duration: time.Second},
		})
		assert.Equal(t, 2, stats.Games)
		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 1, stats.Losses)
		assert.InDelta(t, 0.5, stats.WinRate, 1e-9)
		assert.InDelta(t, 7.0, stats.AvgMoves, 1e-9)
		assert.InDelta(t, 2.0, stats.AvgGuess, 1e-9)
		assert.Equal(t, 2*time.Second, stats.TotalTime)
	})
}
