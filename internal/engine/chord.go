package engine

import "fmt"

// ChordResult describes the outcome of a chord action.
type ChordResult struct {
	Revealed int  // Number of cells newly revealed
	MineHit  bool // True if a mined neighbor was revealed (game lost)
}

// Chord performs the auto-reveal action on a revealed numbered cell.
//
// If the number of flagged, not-yet-revealed neighbors equals the cell's
// adjacency count, every remaining unflagged hidden neighbor is revealed:
// mined neighbors individually, zero-adjacency neighbors through a nested
// flood, numbered neighbors individually. A revealed mine loses the game
// and uncovers every mine grid-wide.
//
// Anything else - hidden target, zero-adjacency target, unsatisfied flag
// count - is a no-op. Wrong flags are exactly how chording kills you; the
// engine makes no attempt to verify the flags are correct.
func Chord(g *Grid, row, col int) (ChordResult, error) {
	var res ChordResult

	if !g.InBounds(row, col) {
		return res, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}

	cell := g.At(row, col)
	if !cell.Revealed || cell.Mine || cell.Adjacent <= 0 {
		return res, nil
	}

	flagged := 0
	g.eachNeighbor(row, col, func(r, c int) {
		n := g.At(r, c)
		if n.Flagged && !n.Revealed {
			flagged++
		}
	})
	if flagged != cell.Adjacent {
		return res, nil
	}

	g.eachNeighbor(row, col, func(r, c int) {
		n := g.At(r, c)
		if n.Revealed || n.Flagged {
			return
		}
		switch {
		case n.Mine:
			n.Revealed = true
			res.Revealed++
			res.MineHit = true
		case n.Adjacent == 0:
			res.Revealed += FloodReveal(g, r, c)
		default:
			n.Revealed = true
			res.Revealed++
		}
	})

	if res.MineHit {
		RevealAllMines(g)
	}

	return res, nil
}
