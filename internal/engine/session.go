package engine

import "fmt"

// Status is the lifecycle state of a game session.
//
// Transitions: NotStarted -> InProgress on the first reveal (which also
// places the mines), InProgress -> Won or Lost on a terminal reveal.
// Terminal states are only left through Reset.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session owns one game of Minesweeper: the grid, the mine configuration,
// the state machine, the flag counter, and the clock.
//
// A session is the unit of exclusive ownership. Every operation runs to
// completion before the caller observes a result; callers sharing a session
// across goroutines must serialize access themselves.
type Session struct {
	grid      *Grid
	rows      int
	cols      int
	mineCount int
	rng       Rand

	status      Status
	minesPlaced bool
	flags       int
	ticks       uint64 // Clock, advanced by Tick while in progress
}

// NewSession creates a session with an all-hidden empty grid. Mines are not
// placed until the first reveal, so that reveal can seed the safe zone.
//
// mineCount must leave room for the 3x3 safe zone; MaxMines gives the cap.
func NewSession(rows, cols, mineCount int, rng Rand) (*Session, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if mineCount < 0 || mineCount > MaxMines(rows, cols) {
		return nil, fmt.Errorf("%w: %d mines on %dx%d (max %d)",
			ErrTooManyMines, mineCount, rows, cols, MaxMines(rows, cols))
	}
	return &Session{
		grid:      grid,
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		rng:       rng,
	}, nil
}

// Reset returns the session to NotStarted with a fresh hidden grid.
// The rng is kept; pass a new one via SetRand for a different layout stream.
func (s *Session) Reset() {
	grid, _ := NewGrid(s.rows, s.cols) // dimensions already validated
	s.grid = grid
	s.status = StatusNotStarted
	s.minesPlaced = false
	s.flags = 0
	s.ticks = 0
}

// SetRand replaces the random source used for the next mine placement.
func (s *Session) SetRand(rng Rand) {
	s.rng = rng
}

// Grid exposes the session's grid for rendering. Callers must not mutate it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Over returns true once the session reached Won or Lost.
func (s *Session) Over() bool {
	return s.status == StatusWon || s.status == StatusLost
}

// FlagCount returns the number of flags currently planted.
func (s *Session) FlagCount() int {
	return s.flags
}

// MinesRemaining returns the configured mine count minus planted flags.
// Can go negative when the player overflags; the HUD shows it as-is.
func (s *Session) MinesRemaining() int {
	return s.mineCount - s.flags
}

// Ticks returns the elapsed clock ticks. The platform layer divides by its
// tick rate for display.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Tick advances the clock by one tick. The clock only runs while the game
// is in progress; terminal states and the pre-first-click state freeze it.
func (s *Session) Tick() {
	if s.status == StatusInProgress {
		s.ticks++
	}
}

// Reveal reveals the cell at (row, col).
//
// The first reveal places the mines (with a 3x3 safe zone around the click),
// computes adjacency counts, and starts the clock. Revealing a flagged or
// already-revealed cell is a no-op. Revealing a mine loses the game and
// uncovers every mine. Win detection runs after every reveal that changed
// the grid.
func (s *Session) Reveal(row, col int) (RevealResult, error) {
	if s.Over() {
		return RevealNone, nil
	}
	if !s.grid.InBounds(row, col) {
		return RevealNone, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}

	if !s.minesPlaced {
		// Flags planted before the first click must not block it: a flagged
		// first click is still a no-op, same as mid-game.
		if s.grid.At(row, col).Flagged {
			return RevealNone, nil
		}
		if err := PlaceMines(s.grid, s.mineCount, row, col, s.rng); err != nil {
			return RevealNone, err
		}
		CountAdjacent(s.grid)
		s.minesPlaced = true
		s.status = StatusInProgress
	}

	res, err := RevealCell(s.grid, row, col)
	if err != nil {
		return res, err
	}

	switch res {
	case RevealMine:
		s.lose()
	case RevealSafe:
		// A flood can sweep away flags inside the opened region.
		s.recountFlags()
		s.checkWin()
	}
	return res, nil
}

// ToggleFlag plants or removes a flag on a hidden cell. Flagging a revealed
// cell is a no-op. Allowed before the first reveal.
func (s *Session) ToggleFlag(row, col int) error {
	if s.Over() {
		return nil
	}
	if !s.grid.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}

	cell := s.grid.At(row, col)
	if cell.Revealed {
		return nil
	}
	if cell.Flagged {
		cell.Flagged = false
		s.flags--
	} else {
		cell.Flagged = true
		s.flags++
	}
	return nil
}

// Chord performs the auto-reveal action on a revealed numbered cell and
// feeds the outcome through the session state machine.
func (s *Session) Chord(row, col int) (ChordResult, error) {
	if s.Over() || !s.minesPlaced {
		return ChordResult{}, nil
	}

	res, err := Chord(s.grid, row, col)
	if err != nil {
		return res, err
	}

	// Chording clears flags implicitly when flood runs through them.
	s.recountFlags()

	if res.MineHit {
		s.lose()
	} else if res.Revealed > 0 {
		s.checkWin()
	}
	return res, nil
}

// lose transitions to Lost and uncovers the full layout.
func (s *Session) lose() {
	s.status = StatusLost
	RevealAllMines(s.grid)
}

// checkWin transitions to Won when every non-mined cell is revealed.
func (s *Session) checkWin() {
	if CheckWin(s.grid) {
		s.status = StatusWon
	}
}

// recountFlags re-derives the flag counter from the grid. Flood reveal
// clears flags it passes through, so the counter drifts after any reveal
// or chord that opened a zero region.
func (s *Session) recountFlags() {
	flags := 0
	for _, cell := range s.grid.Cells {
		if cell.Flagged && !cell.Revealed {
			flags++
		}
	}
	s.flags = flags
}
