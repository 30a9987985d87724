package engine

import "testing"

// gridFromLayout builds a grid from a textual layout for deterministic
// tests, bypassing random placement. '*' marks a mine, '.' an empty cell.
// Adjacency counts are computed before returning.
func gridFromLayout(t *testing.T, layout []string) *Grid {
	t.Helper()

	g, err := NewGrid(len(layout), len(layout[0]))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for r, row := range layout {
		if len(row) != g.Cols {
			t.Fatalf("ragged layout row %d: %q", r, row)
		}
		for c, ch := range row {
			if ch == '*' {
				g.At(r, c).Mine = true
			}
		}
	}
	CountAdjacent(g)
	return g
}

// fixedRand returns a predetermined sequence of values, reduced modulo n.
// Lets tests steer mine placement exactly.
type fixedRand struct {
	values []int
	pos    int
}

func (f *fixedRand) Intn(n int) int {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v % n
}

// revealedSet returns the set of revealed flat indices, for comparing
// flood results between runs.
func revealedSet(g *Grid) map[int]bool {
	set := make(map[int]bool)
	for i, cell := range g.Cells {
		if cell.Revealed {
			set[i] = true
		}
	}
	return set
}
