package knowledge

import (
	"fmt"
	"sort"
)

// Cell identifies a single board square by zero-indexed row and column.
// It is a value type and safe to use as a map key.
type Cell struct {
	Row int
	Col int
}

// String returns the (row,col) rendering used in logs and sentence dumps.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders cells row-major. Used to produce deterministic slices from
// cell sets so that logs and tests are stable.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// sortCells sorts a cell slice in place, row-major, and returns it.
func sortCells(cells []Cell) []Cell {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
