// Package minesweeper implements the Minesweeper game on top of the pure
// engine package. It owns the cursor, the board layout on screen, and the
// HUD; all rules live in internal/engine.
package minesweeper

import (
	"fmt"

	"github.com/mkarpenko/tui-mines/internal/config"
	"github.com/mkarpenko/tui-mines/internal/core"
	"github.com/mkarpenko/tui-mines/internal/engine"
	"github.com/mkarpenko/tui-mines/internal/registry"
)

// Game implements registry.Game for one Minesweeper variant.
type Game struct {
	preset config.Preset
	cfg    config.MinesConfig

	session *engine.Session
	seed    int64

	cursorRow int
	cursorCol int

	tick     uint64
	tickRate int

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	boardX     int
	boardY     int
	cellWidth  int
	paused     bool
	tooSmall   bool
	sessionErr error
}

// Package-level variables set by CLI flags before the game is created.
var (
	configPath     string
	selectedPreset string
)

// SetConfigPath sets the config file path used by the custom variant.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset overrides the board preset for the custom variant.
func SetPreset(preset string) {
	selectedPreset = preset
}

// New creates a game locked to the given preset.
func New(preset config.Preset) *Game {
	return &Game{preset: preset}
}

// NewCustom creates a game that reads its board from the YAML config
// (or from the preset selected via SetPreset).
func NewCustom() *Game {
	return &Game{preset: config.PresetCustom}
}

func init() {
	registry.Register("mines", func() registry.Game {
		return NewCustom()
	})
	registry.Register("beginner", func() registry.Game {
		return New(config.PresetBeginner)
	})
	registry.Register("intermediate", func() registry.Game {
		return New(config.PresetIntermediate)
	})
	registry.Register("expert", func() registry.Game {
		return New(config.PresetExpert)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.preset == config.PresetCustom {
		return "mines"
	}
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == config.PresetCustom {
		return "Minesweeper"
	}
	return "Minesweeper (" + config.PresetTitle(g.preset) + ")"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.paused = false
	g.sessionErr = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.loadBoard()

	session, err := engine.NewSession(
		g.cfg.Board.Rows, g.cfg.Board.Cols, g.cfg.Board.Mines,
		engine.NewSeededRand(cfg.Seed),
	)
	if err != nil {
		// Configs are validated on load; this guards hand-edited boards.
		g.sessionErr = err
		g.cfg.Board = config.BoardForPreset(config.PresetBeginner)
		session, _ = engine.NewSession(
			g.cfg.Board.Rows, g.cfg.Board.Cols, g.cfg.Board.Mines,
			engine.NewSeededRand(cfg.Seed),
		)
	}
	g.session = session

	g.cursorRow = g.cfg.Board.Rows / 2
	g.cursorCol = g.cfg.Board.Cols / 2

	g.layout()
}

// loadBoard resolves the board configuration for this variant.
func (g *Game) loadBoard() {
	if g.preset != config.PresetCustom {
		g.cfg = config.DefaultMinesConfig()
		config.ApplyPreset(&g.cfg, g.preset)
		return
	}

	loaded, err := config.LoadMines(configPath)
	if err != nil {
		loaded = config.DefaultMinesConfig()
	}
	g.cfg = loaded

	if selectedPreset != "" {
		config.ApplyPreset(&g.cfg, config.Preset(selectedPreset))
	}
}

// layout computes the board position on screen and the too-small flag.
func (g *Game) layout() {
	// Each cell renders as a glyph plus a spacer column, so the cursor
	// brackets have room on both sides.
	g.cellWidth = 2

	boardW := g.cfg.Board.Cols * g.cellWidth
	boardH := g.cfg.Board.Rows

	requiredW := boardW + 2
	requiredH := boardH + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardX = (g.screenW - boardW) / 2
	g.boardY = g.hudHeight + (g.screenH-g.hudHeight-boardH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.session.Over() {
		g.Reset(core.RuntimeConfig{
			// Derive a fresh seed so restarts get a new layout.
			Seed:     g.seed*6364136223846793005 + 1442695040888963407,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}

	if g.session.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.session.Tick()

	return core.StepResult{State: g.State()}
}

// processInput moves the cursor and applies reveal/flag/chord actions.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, g.cfg.Board.Rows-1)
	case input.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, g.cfg.Board.Rows-1)
	case input.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, g.cfg.Board.Cols-1)
	case input.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, g.cfg.Board.Cols-1)
	}

	switch {
	case input.Has(core.ActionReveal):
		g.session.Reveal(g.cursorRow, g.cursorCol) //nolint:errcheck // cursor is always in bounds
	case input.Has(core.ActionFlag):
		g.session.ToggleFlag(g.cursorRow, g.cursorCol) //nolint:errcheck // cursor is always in bounds
	case input.Has(core.ActionChord):
		if g.cfg.Rules.Chording {
			g.session.Chord(g.cursorRow, g.cursorCol) //nolint:errcheck // cursor is always in bounds
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderCursor(dst)

	switch {
	case g.session.Status() == engine.StatusWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Time: %s — press R to restart", g.elapsedString()))
	case g.session.Status() == engine.StatusLost:
		g.renderOverlay(dst, "Boom!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.cfg.Display.ShowMinesLeft {
		hud += fmt.Sprintf(" — Mines: %d", g.session.MinesRemaining())
	}
	if g.cfg.Display.ShowTimer {
		hud += "  Time: " + g.elapsedString()
	}

	if g.sessionErr != nil {
		hud += "  (bad board config, using beginner)"
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws every cell with its classic color.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.session.Grid()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x := g.boardX + col*g.cellWidth
			y := g.boardY + row
			r, c := cellGlyph(grid.At(row, col))
			dst.SetColored(x, y, r, c)
		}
	}
}

// renderCursor brackets the cell under the cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	x := g.boardX + g.cursorCol*g.cellWidth
	y := g.boardY + g.cursorRow
	dst.SetColored(x-1, y, '[', core.ColorBrightWhite)
	dst.SetColored(x+1, y, ']', core.ColorBrightWhite)
}

// cellGlyph maps a cell to its display rune and color.
// Digit colors follow the classic scheme (1 blue, 2 green, 3 red, ...).
func cellGlyph(cell *engine.Cell) (rune, core.Color) {
	switch {
	case cell.Revealed && cell.Mine:
		return '*', core.ColorBrightRed
	case cell.Revealed && cell.Adjacent == 0:
		return '·', core.ColorGray
	case cell.Revealed:
		return rune('0' + cell.Adjacent), digitColor(cell.Adjacent)
	case cell.Flagged:
		return 'F', core.ColorBrightYellow
	default:
		return '░', core.ColorDefault
	}
}

func digitColor(n int) core.Color {
	switch n {
	case 1:
		return core.ColorBrightBlue
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorRed
	case 4:
		return core.ColorBlue
	case 5:
		return core.ColorMagenta
	case 6:
		return core.ColorCyan
	case 7:
		return core.ColorWhite
	case 8:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// elapsedString formats the session clock as m:ss.
func (g *Game) elapsedString() string {
	seconds := g.session.Ticks() / uint64(g.tickRate)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// State returns the current game state. Score is the number of revealed
// safe cells; the mines uncovered by a loss do not count.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Grid().RevealedSafeCount(),
		GameOver: g.session.Over(),
		Won:      g.session.Status() == engine.StatusWon,
		Paused:   g.paused,
	}
}

// Session exposes the underlying engine session for result recording.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Board returns the active board configuration.
func (g *Game) Board() config.BoardConfig {
	return g.cfg.Board
}

// ElapsedMs returns the session clock converted to milliseconds.
func (g *Game) ElapsedMs() int {
	return int(g.session.Ticks() * 1000 / uint64(g.tickRate))
}
