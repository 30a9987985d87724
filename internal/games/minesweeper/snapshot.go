package minesweeper

import "github.com/mkarpenko/tui-mines/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateReady       GameStateType = "ready" // Before the first reveal
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Mines     int
	Revealed  int
	Flags     int
	CursorRow int
	CursorCol int
	Clock     uint64
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Status() == engine.StatusWon:
		state = StateWon
	case g.session.Status() == engine.StatusLost:
		state = StateLost
	case g.paused:
		state = StatePaused
	case g.session.Status() == engine.StatusNotStarted:
		state = StateReady
	}

	return Snapshot{
		Tick:      g.tick,
		Rows:      g.cfg.Board.Rows,
		Cols:      g.cfg.Board.Cols,
		Mines:     g.cfg.Board.Mines,
		Revealed:  g.session.Grid().RevealedCount(),
		Flags:     g.session.FlagCount(),
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Clock:     g.session.Ticks(),
		State:     state,
	}
}
