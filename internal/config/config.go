// Package config provides YAML-based configuration loading and board
// preset management for the platform.
package config

import (
	"fmt"

	"github.com/mkarpenko/tui-mines/internal/engine"
)

// MinesConfig contains all configuration for the Minesweeper game.
type MinesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board geometry and mine count.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// RulesConfig defines optional gameplay rules.
type RulesConfig struct {
	// Chording enables the auto-reveal action on satisfied numbered cells.
	Chording bool `yaml:"chording"`
}

// DisplayConfig defines HUD options.
type DisplayConfig struct {
	ShowTimer     bool `yaml:"show_timer"`
	ShowMinesLeft bool `yaml:"show_mines_left"`
}

// Validate checks that the board is playable: positive dimensions and a
// mine count that leaves room for the first-click safe zone.
func (b BoardConfig) Validate() error {
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", b.Rows, b.Cols)
	}
	if b.Mines < 0 {
		return fmt.Errorf("config: mine count must be non-negative, got %d", b.Mines)
	}
	if limit := engine.MaxMines(b.Rows, b.Cols); b.Mines > limit {
		return fmt.Errorf("config: %d mines do not fit a %dx%d board with a safe first click (max %d)",
			b.Mines, b.Rows, b.Cols, limit)
	}
	return nil
}
