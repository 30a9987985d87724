package engine

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T, rows, cols, mines int, seed int64) *Session {
	t.Helper()
	s, err := NewSession(rows, cols, mines, NewSeededRand(seed))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(t, 9, 9, 10, 42)

	if s.Status() != StatusNotStarted {
		t.Fatalf("initial status = %v, expected not_started", s.Status())
	}
	if s.Grid().MineCount() != 0 {
		t.Fatal("mines must not be placed before the first reveal")
	}

	// First reveal places mines, starts the game, floods from the click
	res, err := s.Reveal(4, 4)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if res != RevealSafe {
		t.Fatalf("first reveal = %v, expected RevealSafe (safe zone)", res)
	}
	if s.Status() != StatusInProgress && s.Status() != StatusWon {
		t.Errorf("status after first reveal = %v", s.Status())
	}
	if s.Grid().MineCount() != 10 {
		t.Errorf("mine count = %d, expected 10", s.Grid().MineCount())
	}

	// The clicked cell and its whole neighborhood opened (safe zone floods)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if !s.Grid().At(4+dr, 4+dc).Revealed {
				t.Errorf("safe zone cell (%d, %d) not revealed", 4+dr, 4+dc)
			}
		}
	}
}

func TestSessionClock(t *testing.T) {
	s := newTestSession(t, 9, 9, 10, 1)

	// Clock is frozen before the first reveal
	s.Tick()
	s.Tick()
	if s.Ticks() != 0 {
		t.Errorf("clock ran before start: %d ticks", s.Ticks())
	}

	if _, err := s.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	s.Tick()
	s.Tick()
	s.Tick()
	if s.Status() == StatusInProgress && s.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", s.Ticks())
	}
}

func TestSessionLossStopsClockAndRevealsMines(t *testing.T) {
	s := newTestSession(t, 9, 9, 10, 7)
	if _, err := s.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if s.Status() != StatusInProgress {
		t.Skipf("seed opened the whole board, status %v", s.Status())
	}

	// Click a known mine
	var mr, mc int
	found := false
	for r := 0; r < 9 && !found; r++ {
		for c := 0; c < 9 && !found; c++ {
			if s.Grid().At(r, c).Mine {
				mr, mc = r, c
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no mine on the board")
	}

	res, err := s.Reveal(mr, mc)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if res != RevealMine {
		t.Fatalf("result = %v, expected RevealMine", res)
	}
	if s.Status() != StatusLost {
		t.Fatalf("status = %v, expected lost", s.Status())
	}

	// Every mine is uncovered for the post-mortem
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := s.Grid().At(r, c)
			if cell.Mine && !cell.Revealed {
				t.Errorf("mine at (%d, %d) hidden after loss", r, c)
			}
		}
	}

	// Clock frozen, further reveals ignored
	before := s.Ticks()
	s.Tick()
	if s.Ticks() != before {
		t.Error("clock ran after loss")
	}
	if res, _ := s.Reveal(0, 0); res != RevealNone {
		t.Errorf("reveal after loss = %v, expected RevealNone", res)
	}
}

func TestSessionWin(t *testing.T) {
	// 4x4 board with the minimum interesting mine count: one mine.
	// Reveal everything except the mine.
	s := newTestSession(t, 4, 4, 1, 3)
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if s.Grid().At(r, c).Mine {
				continue
			}
			if _, err := s.Reveal(r, c); err != nil {
				t.Fatalf("Reveal(%d, %d): %v", r, c, err)
			}
		}
	}

	if s.Status() != StatusWon {
		t.Fatalf("status = %v, expected won", s.Status())
	}

	// Winning does not require touching the mine
	mineRevealed := false
	for _, cell := range s.Grid().Cells {
		if cell.Mine && cell.Revealed {
			mineRevealed = true
		}
	}
	if mineRevealed {
		t.Error("win should not reveal the mine")
	}
}

func TestSessionFlags(t *testing.T) {
	s := newTestSession(t, 9, 9, 10, 5)

	// Flagging works before the first reveal
	if err := s.ToggleFlag(0, 0); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if s.FlagCount() != 1 {
		t.Errorf("FlagCount() = %d, expected 1", s.FlagCount())
	}
	if s.MinesRemaining() != 9 {
		t.Errorf("MinesRemaining() = %d, expected 9", s.MinesRemaining())
	}

	// A flagged first click is refused, exactly like mid-game
	if res, err := s.Reveal(0, 0); err != nil || res != RevealNone {
		t.Errorf("flagged first click: res %v, err %v, expected RevealNone", res, err)
	}
	if s.Status() != StatusNotStarted {
		t.Errorf("refused click must not start the game, status = %v", s.Status())
	}

	// Toggle off
	if err := s.ToggleFlag(0, 0); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if s.FlagCount() != 0 {
		t.Errorf("FlagCount() = %d, expected 0", s.FlagCount())
	}

	// Flagging a revealed cell is a no-op
	if _, err := s.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if err := s.ToggleFlag(4, 4); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if s.Grid().At(4, 4).Flagged {
		t.Error("revealed cell must not accept a flag")
	}
}

func TestSessionFloodClearsFlagCounter(t *testing.T) {
	// Hand-place the layout so the flood path is fixed: mines along the
	// bottom edge, a zero region covering the top of the board.
	s := newTestSession(t, 4, 4, 2, 1)
	s.grid.At(3, 0).Mine = true
	s.grid.At(3, 3).Mine = true
	CountAdjacent(s.grid)
	s.minesPlaced = true
	s.status = StatusInProgress

	if err := s.ToggleFlag(0, 0); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if s.FlagCount() != 1 {
		t.Fatalf("FlagCount() = %d, expected 1", s.FlagCount())
	}

	// (0, 1) is a zero cell, so the flood sweeps through the flagged
	// (0, 0) and clears its flag. The counter must follow the grid.
	res, err := s.Reveal(0, 1)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if res != RevealSafe {
		t.Fatalf("result = %v, expected RevealSafe", res)
	}
	if s.Status() != StatusInProgress {
		t.Fatalf("status = %v, expected in_progress", s.Status())
	}

	cell := s.grid.At(0, 0)
	if !cell.Revealed || cell.Flagged {
		t.Fatal("flood should reveal (0, 0) and clear its flag")
	}
	if s.FlagCount() != 0 {
		t.Errorf("FlagCount() = %d, expected 0 after the flood cleared the flag", s.FlagCount())
	}
	if s.MinesRemaining() != 2 {
		t.Errorf("MinesRemaining() = %d, expected 2", s.MinesRemaining())
	}
}

func TestSessionMineFreeTinyBoard(t *testing.T) {
	// Boards too small for the safe zone still accept zero mines; the
	// first click opens the whole board and wins on the spot.
	s, err := NewSession(1, 1, 0, NewSeededRand(1))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	res, err := s.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if res != RevealSafe {
		t.Fatalf("result = %v, expected RevealSafe", res)
	}
	if s.Status() != StatusWon {
		t.Errorf("status = %v, expected won", s.Status())
	}

	if _, err := NewSession(3, 3, 0, NewSeededRand(1)); err != nil {
		t.Errorf("NewSession(3, 3, 0) = %v, expected nil", err)
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, 9, 9, 10, 9)
	if _, err := s.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	s.Tick()
	if err := s.ToggleFlag(0, 0); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}

	s.Reset()

	if s.Status() != StatusNotStarted {
		t.Errorf("status after reset = %v, expected not_started", s.Status())
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", s.Ticks())
	}
	if s.FlagCount() != 0 {
		t.Errorf("FlagCount() = %d, expected 0", s.FlagCount())
	}
	if s.Grid().MineCount() != 0 {
		t.Error("reset grid should have no mines until the next first click")
	}
	if s.Grid().RevealedCount() != 0 {
		t.Error("reset grid should be fully hidden")
	}
}

func TestSessionRejectsOverConstrainedMines(t *testing.T) {
	// 3x3 has zero eligible cells once the safe zone is reserved
	if _, err := NewSession(3, 3, 1, NewSeededRand(1)); !errors.Is(err, ErrTooManyMines) {
		t.Errorf("NewSession error = %v, expected ErrTooManyMines", err)
	}
	if _, err := NewSession(9, 9, 73, NewSeededRand(1)); !errors.Is(err, ErrTooManyMines) {
		t.Errorf("NewSession error = %v, expected ErrTooManyMines", err)
	}
	if _, err := NewSession(0, 9, 5, NewSeededRand(1)); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("NewSession error = %v, expected ErrBadDimensions", err)
	}
}

func TestSessionChordLoss(t *testing.T) {
	// Construct the misflag scenario through the session API on a board
	// built by direct construction, to verify the session transitions to
	// Lost and stops accepting input.
	s := newTestSession(t, 9, 9, 10, 11)
	if _, err := s.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if s.Status() != StatusInProgress {
		t.Skipf("seed opened the whole board, status %v", s.Status())
	}

	// Find a revealed numbered cell with at least one hidden mined
	// neighbor, flag the wrong neighbors to satisfy it, then chord.
	g := s.Grid()
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.At(r, c)
			if !cell.Revealed || cell.Adjacent == 0 {
				continue
			}
			var hidden, mined [][2]int
			g.eachNeighbor(r, c, func(nr, nc int) {
				n := g.At(nr, nc)
				if !n.Revealed {
					hidden = append(hidden, [2]int{nr, nc})
					if n.Mine {
						mined = append(mined, [2]int{nr, nc})
					}
				}
			})
			if len(mined) == 0 || len(hidden) <= cell.Adjacent {
				continue
			}

			// Flag Adjacent-many non-mined hidden neighbors
			flagged := 0
			for _, pos := range hidden {
				if flagged == cell.Adjacent {
					break
				}
				if g.At(pos[0], pos[1]).Mine {
					continue
				}
				if err := s.ToggleFlag(pos[0], pos[1]); err != nil {
					t.Fatalf("ToggleFlag: %v", err)
				}
				flagged++
			}
			if flagged != cell.Adjacent {
				// Not enough safe neighbors to misflag here; keep looking
				for _, pos := range hidden {
					if g.At(pos[0], pos[1]).Flagged {
						if err := s.ToggleFlag(pos[0], pos[1]); err != nil {
							t.Fatalf("ToggleFlag: %v", err)
						}
					}
				}
				continue
			}

			res, err := s.Chord(r, c)
			if err != nil {
				t.Fatalf("Chord: %v", err)
			}
			if !res.MineHit {
				t.Fatal("misflagged chord should hit the mine")
			}
			if s.Status() != StatusLost {
				t.Fatalf("status = %v, expected lost", s.Status())
			}
			return
		}
	}
	t.Skip("no chordable misflag position on this seed")
}
