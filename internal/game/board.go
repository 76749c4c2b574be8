// Package game holds the board side of minesweeper: mine placement, the
// neighbor counts the oracle reports, and the win check. The agent never
// sees this package's internals; it only receives (cell, count) pairs
// through the game loop.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"sweeper/internal/knowledge"
)

// ErrOutOfBounds reports a query for a cell outside the board.
var ErrOutOfBounds = errors.New("cell out of board bounds")

// ErrMineCell reports a reveal of a cell that holds a mine.
var ErrMineCell = errors.New("cell is a mine")

// Oracle is the board interface the game loop drives the agent against.
type Oracle interface {
	// RevealCount returns the number of mines adjacent to a non-mine
	// cell. Errors on out-of-bounds cells and on mines.
	RevealCount(c knowledge.Cell) (int, error)
	// IsMine reports whether the cell holds a mine.
	IsMine(c knowledge.Cell) bool
	// Dims returns the board height and width.
	Dims() (height, width int)
}

// Board is a concrete minesweeper board with a fixed mine layout.
type Board struct {
	height int
	width  int
	mines  map[knowledge.Cell]struct{}
}

var _ Oracle = (*Board)(nil)

// NewBoard places mineCount mines uniformly at random on a height×width
// board using the given source.
func NewBoard(height, width, mineCount int, rng *rand.Rand) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", height, width)
	}
	if mineCount < 0 || mineCount >= height*width {
		return nil, fmt.Errorf("mine count %d out of range for %dx%d board", mineCount, height, width)
	}
	b := &Board{
		height: height,
		width:  width,
		mines:  make(map[knowledge.Cell]struct{}, mineCount),
	}
	for len(b.mines) != mineCount {
		c := knowledge.Cell{Row: rng.Intn(height), Col: rng.Intn(width)}
		b.mines[c] = struct{}{}
	}
	return b, nil
}

// NewBoardWithMines builds a board with an explicit mine layout. Used by
// tests and by replays of recorded games.
func NewBoardWithMines(height, width int, mines []knowledge.Cell) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", height, width)
	}
	b := &Board{
		height: height,
		width:  width,
		mines:  make(map[knowledge.Cell]struct{}, len(mines)),
	}
	for _, c := range mines {
		if !b.inBounds(c) {
			return nil, fmt.Errorf("mine %v: %w", c, ErrOutOfBounds)
		}
		b.mines[c] = struct{}{}
	}
	if len(b.mines) >= height*width {
		return nil, fmt.Errorf("board %dx%d is all mines", height, width)
	}
	return b, nil
}

// Dims returns the board height and width.
func (b *Board) Dims() (height, width int) {
	return b.height, b.width
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return len(b.mines) }

// Mines returns the mine cells in row-major order.
func (b *Board) Mines() []knowledge.Cell {
	out := make([]knowledge.Cell, 0, len(b.mines))
	for c := range b.mines {
		out = append(out, c)
	}
	return sortCells(out)
}

// IsMine reports whether c holds a mine. Out-of-bounds cells are not mines.
func (b *Board) IsMine(c knowledge.Cell) bool {
	_, ok := b.mines[c]
	return ok
}

// NearbyMines counts the mines within one row and column of c, excluding c
// itself.
func (b *Board) NearbyMines(c knowledge.Cell) int {
	count := 0
	for r := c.Row - 1; r <= c.Row+1; r++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			n := knowledge.Cell{Row: r, Col: col}
			if b.inBounds(n) && b.IsMine(n) {
				count++
			}
		}
	}
	return count
}

// RevealCount implements Oracle. It refuses out-of-bounds cells and mines;
// revealing a mine is a lost game, not an observation.
func (b *Board) RevealCount(c knowledge.Cell) (int, error) {
	if !b.inBounds(c) {
		return 0, fmt.Errorf("reveal %v: %w", c, ErrOutOfBounds)
	}
	if b.IsMine(c) {
		return 0, fmt.Errorf("reveal %v: %w", c, ErrMineCell)
	}
	return b.NearbyMines(c), nil
}

// Won reports whether the flagged cells identify every mine exactly.
func (b *Board) Won(flagged []knowledge.Cell) bool {
	if len(flagged) != len(b.mines) {
		return false
	}
	for _, c := range flagged {
		if !b.IsMine(c) {
			return false
		}
	}
	return true
}

// String renders the mine layout as a text grid, X for mines.
func (b *Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat("--", b.width) + "-\n"
	for r := 0; r < b.height; r++ {
		sb.WriteString(rule)
		for c := 0; c < b.width; c++ {
			if b.IsMine(knowledge.Cell{Row: r, Col: c}) {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}

func (b *Board) inBounds(c knowledge.Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

func sortCells(cells []knowledge.Cell) []knowledge.Cell {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
