package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceKnownMines(t *testing.T) {
	t.Run("count equal to size makes every cell a mine", func(t *testing.T) {
		s := NewSentence([]Cell{{1, 1}}, 1)
		assert.Equal(t, []Cell{{1, 1}}, s.KnownMines())
	})

	t.Run("two cells two mines", func(t *testing.T) {
		s := NewSentence([]Cell{{0, 0}, {0, 1}}, 2)
		assert.Equal(t, []Cell{{0, 0}, {0, 1}}, s.KnownMines())
	})

	t.Run("ambiguous sentence yields nothing", func(t *testing.T) {
		s := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
		assert.Empty(t, s.KnownMines())
	})

	t.Run("empty sentence is not all mines", func(t *testing.T) {
		s := NewSentence(nil, 0)
		assert.Empty(t, s.KnownMines())
	})
}

func TestSentenceKnownSafes(t *testing.T) {
	t.Run("zero count makes every cell safe", func(t *testing.T) {
		s := NewSentence([]Cell{{2, 2}, {2, 3}}, 0)
		assert.Equal(t, []Cell{{2, 2}, {2, 3}}, s.KnownSafes())
	})

	t.Run("nonzero count yields nothing", func(t *testing.T) {
		s := NewSentence([]Cell{{2, 2}, {2, 3}}, 1)
		assert.Empty(t, s.KnownSafes())
	})
}

func TestSentenceMarkMine(t *testing.T) {
	t.Run("member cell is removed and count drops", func(t *testing.T) {
		s := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2)
		s.MarkMine(Cell{0, 1})
		assert.Equal(t, []Cell{{0, 0}, {0, 2}}, s.Cells())
		assert.Equal(t, 1, s.Count())
	})

	t.Run("non-member cell is a no-op", func(t *testing.T) {
		s := NewSentence([]Cell{{0, 0}}, 1)
		s.MarkMine(Cell{5, 5})
		assert.Equal(t, []Cell{{0, 0}}, s.Cells())
		assert.Equal(t, 1, s.Count())
	})
}

func TestSentenceMarkSafe(t *testing.T) {
	t.Run("member cell is removed, count unchanged", func(t *testing.T) {
		s := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
		s.MarkSafe(Cell{0, 0})
		assert.Equal(t, []Cell{{0, 1}}, s.Cells())
		assert.Equal(t, 1, s.Count())
	})

	t.Run("non-member cell is a no-op", func(t *testing.T) {
		s := NewSentence([]Cell{{0, 0}}, 1)
		s.MarkSafe(Cell{9, 9})
		assert.Equal(t, 1, s.Size())
	})
}

func TestSentenceEqual(t *testing.T) {
	a := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	b := NewSentence([]Cell{{0, 1}, {0, 0}}, 1)
	c := NewSentence([]Cell{{0, 0}, {0, 1}}, 2)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewSentence([]Cell{{0, 0}}, 1)))
}

func TestSentenceSubsetAndDifference(t *testing.T) {
	a := NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 1)
	b := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)

	require.True(t, b.SubsetOf(a))
	require.False(t, a.SubsetOf(b))

	diff := Difference(a, b)
	assert.Equal(t, []Cell{{0, 2}}, diff.Cells())
	assert.Equal(t, 0, diff.Count())
	assert.Equal(t, []Cell{{0, 2}}, diff.KnownSafes())
}

func TestSentenceString(t *testing.T) {
	s := NewSentence([]Cell{{1, 0}, {0, 1}}, 1)
	assert.Equal(t, "{(0,1) (1,0)} = 1", s.String())
}
