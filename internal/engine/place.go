package engine

import "fmt"

// SafeZoneSize is the number of cells reserved for the first click: the
// clicked cell plus its up-to-8 Moore neighbors. Mine counts must leave at
// least this many cells unmined so placement can always succeed.
const SafeZoneSize = 9

// MaxMines returns the largest mine count placeable on a rows x cols grid
// under the neighborhood safe-zone policy. Boards too small for the safe
// zone cap at zero mines rather than a negative count, so mine-free games
// stay playable on any valid grid.
func MaxMines(rows, cols int) int {
	if limit := rows*cols - SafeZoneSize; limit > 0 {
		return limit
	}
	return 0
}

// PlaceMines marks exactly mineCount cells as mined, chosen uniformly at
// random without replacement from all cells outside the safe zone.
//
// Safe-zone policy: neighborhood exclusion. (safeRow, safeCol) and its
// Moore neighbors, clipped at grid edges, are guaranteed mine-free, so the
// first click always floods an open region.
//
// Placement builds the full eligible-position list and shuffles it rather
// than rejection-sampling, so termination does not degrade as mineCount
// approaches the eligible cell count. Returns ErrTooManyMines if mineCount
// exceeds the eligible cells; nothing is mutated in that case.
func PlaceMines(g *Grid, mineCount, safeRow, safeCol int, rng Rand) error {
	if !g.InBounds(safeRow, safeCol) {
		return fmt.Errorf("%w: safe cell (%d, %d)", ErrOutOfBounds, safeRow, safeCol)
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrTooManyMines, mineCount)
	}

	eligible := make([]int, 0, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if inSafeZone(row, col, safeRow, safeCol) {
				continue
			}
			eligible = append(eligible, g.index(row, col))
		}
	}

	if mineCount > len(eligible) {
		return fmt.Errorf("%w: %d mines, %d eligible cells", ErrTooManyMines, mineCount, len(eligible))
	}

	// Fisher-Yates, then take the first mineCount positions.
	for i := len(eligible) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	for _, idx := range eligible[:mineCount] {
		g.Cells[idx].Mine = true
	}

	return nil
}

// inSafeZone reports whether (row, col) lies in the 3x3 neighborhood
// centered on the safe cell.
func inSafeZone(row, col, safeRow, safeCol int) bool {
	dr, dc := row-safeRow, col-safeCol
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}
