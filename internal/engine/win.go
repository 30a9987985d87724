package engine

// CheckWin returns true iff every non-mined cell is revealed. The revealed
// state of mined cells is irrelevant: a game can be won with every mine
// still hidden and unflagged.
func CheckWin(g *Grid) bool {
	for _, cell := range g.Cells {
		if !cell.Mine && !cell.Revealed {
			return false
		}
	}
	return true
}

// RevealAllMines uncovers every mined cell. Called when a game is lost so
// the player can see the full layout.
func RevealAllMines(g *Grid) {
	for i := range g.Cells {
		if g.Cells[i].Mine {
			g.Cells[i].Revealed = true
		}
	}
}
