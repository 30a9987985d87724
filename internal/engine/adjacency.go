package engine

// CountAdjacent computes the mined-neighbor count for every non-mined cell.
// The count covers the 8-connected Moore neighborhood, clipped at grid
// boundaries. Mined cells are skipped; their Adjacent value stays zero and
// no consumer reads it.
//
// Idempotent: repeated runs yield the same counts as long as mine placement
// has not changed.
func CountAdjacent(g *Grid) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := g.At(row, col)
			if cell.Mine {
				continue
			}
			count := 0
			g.eachNeighbor(row, col, func(r, c int) {
				if g.At(r, c).Mine {
					count++
				}
			})
			cell.Adjacent = count
		}
	}
}
