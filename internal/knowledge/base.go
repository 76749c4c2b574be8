// Package knowledge implements the deductive core of the minesweeper agent.
//
// The knowledge base holds a growing list of sentences, each asserting that
// exactly N of a set of unopened cells are mines, plus the sets of cells
// already proven safe or mined. After every observation it runs a closure
// loop to a fixed point:
//
//	Observe(cell, count)
//	     |
//	1. Record the move, mark the cell safe
//	2. Add a sentence over the cell's undetermined neighbors
//	3. Resolve: any sentence with count == size (all mines) or count == 0
//	   (all safe) yields certain cells; propagate them into every sentence
//	4. Subset inference: B ⊆ A derives (A\B, A.count - B.count)
//	5. Repeat 3-4 until no new certainty and no new sentence appears
//
// The loop terminates: each round either resolves a cell (bounded by the
// board) or adds a structurally new sentence (bounded by the power set of
// board cells).
package knowledge

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// ErrOutOfBounds reports an observation for a cell outside the board.
var ErrOutOfBounds = errors.New("cell out of board bounds")

// ErrBadCount reports an oracle count that cannot be satisfied by the
// cell's undetermined neighborhood.
var ErrBadCount = errors.New("reported mine count inconsistent with neighborhood")

// KnowledgeBase accumulates everything the agent knows about one game.
// It is a per-game value: create one per board, discard it when the game
// ends. Not safe for concurrent use; Observe must run to completion before
// any move query.
type KnowledgeBase struct {
	height int
	width  int

	movesMade map[Cell]struct{}
	mines     map[Cell]struct{}
	safes     map[Cell]struct{}

	// safeOrder preserves insertion order of safes so SafeMove is
	// deterministic.
	safeOrder []Cell

	knowledge []*Sentence

	logger *zap.Logger
}

// NewKnowledgeBase creates an empty knowledge base for a height×width board.
// A nil logger defaults to a no-op logger.
func NewKnowledgeBase(height, width int, logger *zap.Logger) *KnowledgeBase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KnowledgeBase{
		height:    height,
		width:     width,
		movesMade: make(map[Cell]struct{}),
		mines:     make(map[Cell]struct{}),
		safes:     make(map[Cell]struct{}),
		logger:    logger,
	}
}

// MarkMine records that c is certainly a mine and propagates the fact into
// every held sentence. Idempotent.
func (kb *KnowledgeBase) MarkMine(c Cell) {
	if _, ok := kb.mines[c]; ok {
		return
	}
	kb.mines[c] = struct{}{}
	for _, s := range kb.knowledge {
		s.MarkMine(c)
	}
	kb.logger.Debug("marked mine", zap.Stringer("cell", c))
}

// MarkSafe records that c is certainly not a mine and propagates the fact
// into every held sentence. Idempotent.
func (kb *KnowledgeBase) MarkSafe(c Cell) {
	if _, ok := kb.safes[c]; ok {
		return
	}
	kb.safes[c] = struct{}{}
	kb.safeOrder = append(kb.safeOrder, c)
	for _, s := range kb.knowledge {
		s.MarkSafe(c)
	}
	kb.logger.Debug("marked safe", zap.Stringer("cell", c))
}

// Observe ingests one revealed cell and its adjacent-mine count, then runs
// the deductive closure to a fixed point. Called once per successfully
// revealed cell; observing the same cell again is a no-op.
//
// The count is validated against the cell's neighborhood before anything is
// recorded: a count the neighborhood cannot satisfy means the oracle and the
// caller disagree about the board, and silently absorbing it would poison
// every later deduction.
func (kb *KnowledgeBase) Observe(cell Cell, count int) error {
	if cell.Row < 0 || cell.Row >= kb.height || cell.Col < 0 || cell.Col >= kb.width {
		return fmt.Errorf("observe %v: %w", cell, ErrOutOfBounds)
	}
	if _, ok := kb.movesMade[cell]; ok {
		kb.logger.Debug("duplicate observation ignored", zap.Stringer("cell", cell))
		return nil
	}

	// Partition the 8-neighborhood: known mines discount the oracle count,
	// known safes carry no information, the rest form the new sentence.
	undetermined := make([]Cell, 0, 8)
	knownMines := 0
	for _, n := range kb.neighbors(cell) {
		if _, ok := kb.mines[n]; ok {
			knownMines++
			continue
		}
		if _, ok := kb.safes[n]; ok {
			continue
		}
		undetermined = append(undetermined, n)
	}

	remaining := count - knownMines
	if remaining < 0 || remaining > len(undetermined) {
		return fmt.Errorf("observe %v: count %d with %d known mines and %d undetermined neighbors: %w",
			cell, count, knownMines, len(undetermined), ErrBadCount)
	}

	kb.movesMade[cell] = struct{}{}
	kb.MarkSafe(cell)

	s := NewSentence(undetermined, remaining)
	if !s.Empty() && !kb.hasSentence(s) {
		kb.knowledge = append(kb.knowledge, s)
		kb.logger.Debug("new sentence", zap.Stringer("sentence", s))
	}

	kb.deduce()
	return nil
}

// deduce runs the deductive closure: resolve certain cells and derive
// subset-difference sentences until a fixed point.
func (kb *KnowledgeBase) deduce() {
	for {
		newSafes := make(map[Cell]struct{})
		newMines := make(map[Cell]struct{})
		for _, s := range kb.knowledge {
			for _, c := range s.KnownSafes() {
				newSafes[c] = struct{}{}
			}
			for _, c := range s.KnownMines() {
				newMines[c] = struct{}{}
			}
		}

		progress := false
		for c := range newSafes {
			if _, ok := kb.safes[c]; !ok {
				progress = true
			}
			kb.MarkSafe(c)
		}
		for c := range newMines {
			if _, ok := kb.mines[c]; !ok {
				progress = true
			}
			kb.MarkMine(c)
		}

		if kb.inferSubsets() {
			progress = true
		}
		kb.prune()

		if !progress {
			return
		}
	}
}

// inferSubsets derives (A\B, A.count-B.count) for every ordered pair where
// B's cells are a proper subset of A's. Reports whether any structurally new
// sentence was added.
func (kb *KnowledgeBase) inferSubsets() bool {
	var derived []*Sentence
	for _, a := range kb.knowledge {
		for _, b := range kb.knowledge {
			if a == b || a.Equal(b) || b.Empty() {
				continue
			}
			if !b.SubsetOf(a) {
				continue
			}
			cand := Difference(a, b)
			if cand.Empty() {
				continue
			}
			if !cand.consistent() {
				// Only possible when the oracle lied somewhere upstream.
				kb.logger.Warn("discarding inconsistent derived sentence",
					zap.Stringer("sentence", cand))
				continue
			}
			if kb.hasSentence(cand) || containsSentence(derived, cand) {
				continue
			}
			derived = append(derived, cand)
		}
	}
	kb.knowledge = append(kb.knowledge, derived...)
	for _, s := range derived {
		kb.logger.Debug("derived sentence", zap.Stringer("sentence", s))
	}
	return len(derived) > 0
}

// prune drops sentences whose every cell has been resolved. They carry no
// further information and only slow the pair scan down.
func (kb *KnowledgeBase) prune() {
	kept := kb.knowledge[:0]
	for _, s := range kb.knowledge {
		if s.Empty() {
			continue
		}
		kept = append(kept, s)
	}
	kb.knowledge = kept
}

func (kb *KnowledgeBase) hasSentence(s *Sentence) bool {
	return containsSentence(kb.knowledge, s)
}

func containsSentence(list []*Sentence, s *Sentence) bool {
	for _, have := range list {
		if have.Equal(s) {
			return true
		}
	}
	return false
}

// neighbors returns the in-bounds 8-neighborhood of c, excluding c itself.
func (kb *KnowledgeBase) neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for r := c.Row - 1; r <= c.Row+1; r++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			if r < 0 || r >= kb.height || col < 0 || col >= kb.width {
				continue
			}
			out = append(out, Cell{Row: r, Col: col})
		}
	}
	return out
}

// SafeMove returns a cell proven safe and not yet played, in the order the
// safes were discovered. The second return is false when no such cell
// exists. Does not mutate state.
func (kb *KnowledgeBase) SafeMove() (Cell, bool) {
	for _, c := range kb.safeOrder {
		if _, played := kb.movesMade[c]; !played {
			return c, true
		}
	}
	return Cell{}, false
}

// RandomMove returns a uniformly random cell that is neither a known mine
// nor already played. The second return is false when every board cell is
// excluded. Does not mutate state.
func (kb *KnowledgeBase) RandomMove(rng *rand.Rand) (Cell, bool) {
	candidates := make([]Cell, 0, kb.height*kb.width)
	for r := 0; r < kb.height; r++ {
		for c := 0; c < kb.width; c++ {
			cell := Cell{Row: r, Col: c}
			if _, ok := kb.mines[cell]; ok {
				continue
			}
			if _, ok := kb.movesMade[cell]; ok {
				continue
			}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// Mines returns the cells proven to be mines, row-major.
func (kb *KnowledgeBase) Mines() []Cell { return setToSlice(kb.mines) }

// Safes returns the cells proven safe, row-major.
func (kb *KnowledgeBase) Safes() []Cell { return setToSlice(kb.safes) }

// MovesMade returns the cells already played, row-major.
func (kb *KnowledgeBase) MovesMade() []Cell { return setToSlice(kb.movesMade) }

// IsMine reports whether c has been proven to be a mine.
func (kb *KnowledgeBase) IsMine(c Cell) bool {
	_, ok := kb.mines[c]
	return ok
}

// IsSafe reports whether c has been proven safe.
func (kb *KnowledgeBase) IsSafe(c Cell) bool {
	_, ok := kb.safes[c]
	return ok
}

// Played reports whether c has already been chosen as a move.
func (kb *KnowledgeBase) Played(c Cell) bool {
	_, ok := kb.movesMade[c]
	return ok
}

// SentenceCount returns the number of live sentences held.
func (kb *KnowledgeBase) SentenceCount() int { return len(kb.knowledge) }

// Sentences returns copies of the live sentences, for inspection.
func (kb *KnowledgeBase) Sentences() []*Sentence {
	out := make([]*Sentence, len(kb.knowledge))
	for i, s := range kb.knowledge {
		out[i] = NewSentence(s.Cells(), s.count)
	}
	return out
}

func setToSlice(set map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return sortCells(out)
}
