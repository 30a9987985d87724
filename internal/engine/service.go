package engine

import "fmt"

// Service boundary. These are the operations a remote caller (or any caller
// handing grids across a trust boundary) uses. Unlike the package-level
// functions, which mutate in place for local callers, these defensively copy
// the input grid so the caller's reference is never silently altered.

// StartGame creates a grid, places mines honoring the 3x3 safe zone around
// the first click, computes adjacency counts, floods from the click, and
// returns the fully-updated grid.
func StartGame(rows, cols, mineCount, firstRow, firstCol int, rng Rand) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(firstRow, firstCol) {
		return nil, fmt.Errorf("%w: first click (%d, %d)", ErrOutOfBounds, firstRow, firstCol)
	}
	if err := PlaceMines(g, mineCount, firstRow, firstCol, rng); err != nil {
		return nil, err
	}
	CountAdjacent(g)
	FloodReveal(g, firstRow, firstCol)
	return g, nil
}

// Reveal takes a caller-supplied grid snapshot and a target cell. If the
// target is already revealed or flagged the input grid is returned unchanged
// (success, not an error). Otherwise the result of flooding from the target
// is returned as a new grid; the input is never mutated.
func Reveal(g *Grid, row, col int) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}

	cell := g.At(row, col)
	if cell.Revealed || cell.Flagged {
		return g, nil
	}

	next := g.Clone()
	if _, err := RevealCell(next, row, col); err != nil {
		return nil, err
	}
	return next, nil
}
