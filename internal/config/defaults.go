package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the default Minesweeper configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Board: BoardConfig{
			Rows:  9,
			Cols:  9,
			Mines: 10,
		},
		Rules: RulesConfig{
			Chording: true,
		},
		Display: DisplayConfig{
			ShowTimer:     true,
			ShowMinesLeft: true,
		},
	}
}
