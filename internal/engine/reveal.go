package engine

import "fmt"

// RevealResult describes the outcome of a reveal operation.
type RevealResult int

const (
	// RevealNone means nothing changed: the target was already revealed
	// or flagged. A deliberate no-op, not an error.
	RevealNone RevealResult = iota

	// RevealSafe means one or more non-mined cells were revealed.
	RevealSafe

	// RevealMine means the target was mined; the game is lost.
	RevealMine
)

// String returns a human-readable name for the result.
func (r RevealResult) String() string {
	switch r {
	case RevealNone:
		return "none"
	case RevealSafe:
		return "safe"
	case RevealMine:
		return "mine"
	default:
		return "unknown"
	}
}

// FloodReveal expands from (row, col), revealing the connected region of
// zero-adjacency cells plus its bordering numbered cells. Returns the number
// of cells newly revealed.
//
// The traversal uses an explicit stack rather than recursion, so large
// boards cannot grow the call stack. Coordinates are bounds-checked on pop,
// not on push. Each cell is visited at most once, bounding total work to
// O(rows*cols).
//
// Flags are not a propagation barrier: flagged cells inside a flooded region
// are revealed like any other. Only RevealCell, the manual-click entry
// point, consults the flag field.
func FloodReveal(g *Grid, row, col int) int {
	type coord struct{ r, c int }

	visited := make([]bool, len(g.Cells))
	stack := []coord{{row, col}}
	revealed := 0

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(cur.r, cur.c) {
			continue
		}
		idx := g.index(cur.r, cur.c)
		if visited[idx] {
			continue
		}
		visited[idx] = true

		cell := &g.Cells[idx]
		if cell.Revealed {
			continue
		}
		cell.Revealed = true
		cell.Flagged = false // flag is meaningless once revealed
		revealed++

		// Numbered cells are revealed but stop expansion; mined cells
		// never expand (the seed itself is the only mine that can appear
		// here, via a losing click).
		if cell.Mine || cell.Adjacent != 0 {
			continue
		}

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				stack = append(stack, coord{cur.r + dr, cur.c + dc})
			}
		}
	}

	return revealed
}

// RevealCell is the manual-click entry point. It refuses flagged cells and
// already-revealed cells (both are no-ops, reported as RevealNone), reveals
// a mined target directly, and floods from a safe target.
func RevealCell(g *Grid, row, col int) (RevealResult, error) {
	if !g.InBounds(row, col) {
		return RevealNone, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}

	cell := g.At(row, col)
	if cell.Revealed || cell.Flagged {
		return RevealNone, nil
	}
	if cell.Mine {
		cell.Revealed = true
		return RevealMine, nil
	}

	FloodReveal(g, row, col)
	return RevealSafe, nil
}
