package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBoardValidate(t *testing.T) {
	tests := []struct {
		name    string
		board   BoardConfig
		wantErr bool
	}{
		{"beginner", BoardConfig{9, 9, 10}, false},
		{"expert", BoardConfig{16, 30, 99}, false},
		{"max mines", BoardConfig{9, 9, 72}, false},
		{"too many mines", BoardConfig{9, 9, 73}, true},
		{"no room for safe zone", BoardConfig{3, 3, 1}, true},
		{"zero rows", BoardConfig{0, 9, 5}, true},
		{"negative mines", BoardConfig{9, 9, -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.board.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate(%+v) = nil, expected error", tc.board)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate(%+v) = %v, expected nil", tc.board, err)
			}
		})
	}
}

func TestBoardForPreset(t *testing.T) {
	tests := []struct {
		preset Preset
		board  BoardConfig
	}{
		{PresetBeginner, BoardConfig{9, 9, 10}},
		{PresetIntermediate, BoardConfig{16, 16, 40}},
		{PresetExpert, BoardConfig{16, 30, 99}},
		{"unknown", BoardConfig{9, 9, 10}}, // falls back to beginner
	}

	for _, tc := range tests {
		if got := BoardForPreset(tc.preset); got != tc.board {
			t.Errorf("BoardForPreset(%q) = %+v, expected %+v", tc.preset, got, tc.board)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultMinesConfig()
	ApplyPreset(&cfg, PresetExpert)
	if cfg.Board != BoardForPreset(PresetExpert) {
		t.Errorf("board after preset = %+v", cfg.Board)
	}

	// Custom keeps the configured board
	custom := DefaultMinesConfig()
	custom.Board = BoardConfig{12, 20, 30}
	ApplyPreset(&custom, PresetCustom)
	if custom.Board != (BoardConfig{12, 20, 30}) {
		t.Errorf("custom preset overwrote the board: %+v", custom.Board)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg MinesConfig
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		t.Fatalf("embedded default is invalid YAML: %v", err)
	}
	if cfg != DefaultMinesConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultMinesConfig())
	}
	if err := cfg.Board.Validate(); err != nil {
		t.Errorf("embedded default board invalid: %v", err)
	}
}
