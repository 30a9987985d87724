// Package engine implements the Minesweeper grid simulation: mine placement,
// adjacency counting, flood reveal, chording, win detection, and the game
// session state machine. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package engine

import "fmt"

// Cell is a single grid cell.
//
// Adjacent is only meaningful for non-mined cells; for mined cells it is left
// at zero and ignored by all consumers.
type Cell struct {
	Mine     bool
	Adjacent int // Number of mined Moore neighbors, 0-8
	Revealed bool
	Flagged  bool
}

// Grid is a fixed-size rectangular board of cells.
// Cells are stored in row-major order: index = row*Cols + col.
// Dimensions are fixed at creation and never change.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell // Flat array of cells, length Rows*Cols
}

// NewGrid creates a grid of rows*cols cells, all hidden, unmined, unflagged.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}

// InBounds returns true if (row, col) is within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns a pointer to the cell at (row, col).
// The caller must ensure the coordinate is in bounds.
func (g *Grid) At(row, col int) *Cell {
	return &g.Cells[g.index(row, col)]
}

// Validate checks structural integrity: positive dimensions and a cell slice
// matching them. Grids arriving across a trust boundary are validated before
// any indexing.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrMalformedGrid)
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, g.Rows, g.Cols)
	}
	if len(g.Cells) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d cells for %dx%d grid", ErrMalformedGrid, len(g.Cells), g.Rows, g.Cols)
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// MineCount returns the number of mined cells.
func (g *Grid) MineCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Mine {
			count++
		}
	}
	return count
}

// RevealedCount returns the number of revealed cells.
func (g *Grid) RevealedCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Revealed {
			count++
		}
	}
	return count
}

// RevealedSafeCount returns the number of revealed non-mined cells.
// Losing uncovers the full mine layout, so progress metrics use this
// instead of RevealedCount.
func (g *Grid) RevealedSafeCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Revealed && !cell.Mine {
			count++
		}
	}
	return count
}

// eachNeighbor calls fn for every in-bounds Moore neighbor of (row, col).
// Out-of-bounds neighbors are clipped at grid edges.
func (g *Grid) eachNeighbor(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}
