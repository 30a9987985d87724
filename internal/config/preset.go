package config

// Preset represents a named board difficulty.
type Preset string

// The classic fixed presets.
const (
	PresetBeginner     Preset = "beginner"
	PresetIntermediate Preset = "intermediate"
	PresetExpert       Preset = "expert"
	PresetCustom       Preset = "custom"
)

// Presets lists the selectable fixed presets in difficulty order.
func Presets() []Preset {
	return []Preset{PresetBeginner, PresetIntermediate, PresetExpert}
}

// BoardForPreset returns the board geometry for a preset.
// Unknown presets fall back to beginner.
func BoardForPreset(p Preset) BoardConfig {
	switch p {
	case PresetIntermediate:
		return BoardConfig{Rows: 16, Cols: 16, Mines: 40}
	case PresetExpert:
		return BoardConfig{Rows: 16, Cols: 30, Mines: 99}
	default:
		return BoardConfig{Rows: 9, Cols: 9, Mines: 10}
	}
}

// PresetTitle returns a display name for a preset.
func PresetTitle(p Preset) string {
	switch p {
	case PresetBeginner:
		return "Beginner"
	case PresetIntermediate:
		return "Intermediate"
	case PresetExpert:
		return "Expert"
	case PresetCustom:
		return "Custom"
	default:
		return string(p)
	}
}

// ApplyPreset overwrites the board section with the preset geometry.
// PresetCustom keeps whatever the config file specified.
func ApplyPreset(cfg *MinesConfig, p Preset) {
	if p == PresetCustom || p == "" {
		return
	}
	cfg.Board = BoardForPreset(p)
}
