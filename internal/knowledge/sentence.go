package knowledge

import (
	"fmt"
	"strings"
)

// Sentence is a single logical constraint about the board: exactly Count of
// the cells in the set are mines. Sentences are owned by the KnowledgeBase
// and mutated in place as cells get resolved; nothing outside the knowledge
// base holds a reference to one.
type Sentence struct {
	cells map[Cell]struct{}
	count int
}

// NewSentence builds a sentence over the given cells. Duplicate cells in the
// input collapse into the set.
func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[Cell]struct{}, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Count returns the number of mines the sentence asserts among its cells.
func (s *Sentence) Count() int { return s.count }

// Size returns the number of unresolved cells the sentence still covers.
func (s *Sentence) Size() int { return len(s.cells) }

// Empty reports whether every cell in the sentence has been resolved.
func (s *Sentence) Empty() bool { return len(s.cells) == 0 }

// Contains reports whether the sentence still covers the given cell.
func (s *Sentence) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the covered cells in row-major order.
func (s *Sentence) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return sortCells(out)
}

// KnownMines returns every covered cell when the count accounts for all of
// them: if exactly len(cells) of the cells are mines, each one is a mine.
// The nonzero guard keeps the empty sentence from matching vacuously.
func (s *Sentence) KnownMines() []Cell {
	if s.count == 0 || len(s.cells) != s.count {
		return nil
	}
	return s.Cells()
}

// KnownSafes returns every covered cell when the sentence asserts zero
// mines among them.
func (s *Sentence) KnownSafes() []Cell {
	if s.count != 0 {
		return nil
	}
	return s.Cells()
}

// MarkMine records that c is a mine. If the sentence covers c, the cell is
// removed and the count drops by one, since c was one of the counted mines.
// No-op for cells the sentence does not cover.
func (s *Sentence) MarkMine(c Cell) {
	if _, ok := s.cells[c]; !ok {
		return
	}
	delete(s.cells, c)
	s.count--
}

// MarkSafe records that c is not a mine. If the sentence covers c, the cell
// is removed; the count is unchanged. No-op otherwise.
func (s *Sentence) MarkSafe(c Cell) {
	delete(s.cells, c)
}

// SubsetOf reports whether every cell of s is covered by other.
func (s *Sentence) SubsetOf(other *Sentence) bool {
	if len(s.cells) > len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Difference derives the sentence over a's cells minus b's cells, with the
// counts subtracted. Only meaningful when b is a subset of a; callers check
// that first.
func Difference(a, b *Sentence) *Sentence {
	diff := &Sentence{
		cells: make(map[Cell]struct{}, len(a.cells)-len(b.cells)),
		count: a.count - b.count,
	}
	for c := range a.cells {
		if _, ok := b.cells[c]; !ok {
			diff.cells[c] = struct{}{}
		}
	}
	return diff
}

// Equal reports structural equality: same cell set and same count.
func (s *Sentence) Equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// consistent reports whether the sentence can still be satisfied:
// 0 <= count <= len(cells). Subset inference over a lying oracle can
// produce sentences that violate this; the knowledge base discards them.
func (s *Sentence) consistent() bool {
	return s.count >= 0 && s.count <= len(s.cells)
}

// String renders the sentence as "{(r,c) ...} = count".
func (s *Sentence) String() string {
	cells := s.Cells()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, " "), s.count)
}
