package engine

import "testing"

func TestCountAdjacentExact(t *testing.T) {
	// Layout with mines at (0,0) and (2,2):
	//   * . .
	//   . . .
	//   . . *
	g := gridFromLayout(t, []string{
		"*..",
		"...",
		"..*",
	})

	expected := [][]int{
		{0, 1, 0}, // (0,0) is mined, value ignored
		{1, 2, 1},
		{0, 1, 0}, // (2,2) is mined, value ignored
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell := g.At(r, c)
			if cell.Mine {
				continue
			}
			if cell.Adjacent != expected[r][c] {
				t.Errorf("Adjacent(%d, %d) = %d, expected %d", r, c, cell.Adjacent, expected[r][c])
			}
		}
	}
}

func TestCountAdjacentMatchesNeighborhood(t *testing.T) {
	// Property check: every non-mined cell's count equals the exact number
	// of mined cells in its clipped Moore neighborhood.
	g, _ := NewGrid(12, 20)
	if err := PlaceMines(g, 50, 6, 10, NewSeededRand(7)); err != nil {
		t.Fatalf("PlaceMines: %v", err)
	}
	CountAdjacent(g)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.At(r, c)
			if cell.Mine {
				continue
			}
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if g.InBounds(nr, nc) && g.At(nr, nc).Mine {
						want++
					}
				}
			}
			if cell.Adjacent != want {
				t.Errorf("Adjacent(%d, %d) = %d, expected %d", r, c, cell.Adjacent, want)
			}
		}
	}
}

func TestCountAdjacentIdempotent(t *testing.T) {
	g := gridFromLayout(t, []string{
		".*.",
		"*.*",
		".*.",
	})

	before := g.Clone()
	CountAdjacent(g)
	if !g.Equal(before) {
		t.Error("second CountAdjacent run changed the grid")
	}
}

func TestCountAdjacentSurrounded(t *testing.T) {
	g := gridFromLayout(t, []string{
		"***",
		"*.*",
		"***",
	})
	if got := g.At(1, 1).Adjacent; got != 8 {
		t.Errorf("fully surrounded cell Adjacent = %d, expected 8", got)
	}
}
