package history

import (
	"testing"
	"time"

	"sweeper/internal/runner"
)

func testResult(id string, won bool) runner.Result {
	return runner.Result{
		GameID:    id,
		Seed:      42,
		Height:    8,
		Width:     8,
		Mines:     8,
		Won:       won,
		Moves:     20,
		SafeMoves: 18,
		Guesses:   2,
		Flagged:   8,
		Duration:  150 * time.Millisecond,
		PlayedAt:  time.Now(),
	}
}

func TestSaveAndRecent(t *testing.T) {
	store, err := Open(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.Save(testResult("game-1", true)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Saving the same game again should be ignored.
	if err := store.Save(testResult("game-1", false)); err != nil {
		t.Fatalf("Save failed on duplicate: %v", err)
	}

	results, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	got := results[0]
	if got.GameID != "game-1" {
		t.Errorf("Expected game-1, got %s", got.GameID)
	}
	if !got.Won {
		t.Errorf("Expected original won=true to survive the duplicate save")
	}
	if got.Moves != 20 || got.Guesses != 2 || got.Flagged != 8 {
		t.Errorf("Round-tripped counters wrong: %+v", got)
	}
	if got.Duration != 150*time.Millisecond {
		t.Errorf("Expected 150ms duration, got %v", got.Duration)
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	store, err := Open(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	base := time.Now()
	for i := 0; i < 5; i++ {
		res := testResult("game-"+string(rune('a'+i)), i%2 == 0)
		res.PlayedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.Save(res); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	results, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].GameID != "game-e" {
		t.Errorf("Expected most recent first, got %s", results[0].GameID)
	}
}

func TestStats(t *testing.T) {
	store, err := Open(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Games != 0 || stats.WinRate != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	wins := []bool{true, true, false, true}
	results := make([]runner.Result, 0, len(wins))
	for i, won := range wins {
		results = append(results, testResult("game-"+string(rune('0'+i)), won))
	}
	if err := store.SaveAll(results); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Games != 4 {
		t.Errorf("Expected 4 games, got %d", stats.Games)
	}
	if stats.Wins != 3 {
		t.Errorf("Expected 3 wins, got %d", stats.Wins)
	}
	if stats.WinRate != 0.75 {
		t.Errorf("Expected 0.75 win rate, got %f", stats.WinRate)
	}
	if stats.AvgMoves != 20 {
		t.Errorf("Expected 20 avg moves, got %f", stats.AvgMoves)
	}
}
