package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpenko/tui-mines/internal/core"
	"github.com/mkarpenko/tui-mines/internal/games/minesweeper"
	"github.com/mkarpenko/tui-mines/internal/platform/tui"
	"github.com/mkarpenko/tui-mines/internal/registry"
	"github.com/mkarpenko/tui-mines/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play <difficulty>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Reveal cell
  F                - Toggle flag
  C                - Chord (auto-reveal around a satisfied number)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

The "mines" variant reads its board from the YAML config; the named
difficulties use fixed boards.

Examples:
  mines play beginner
  mines play expert
  mines play mines --config ./my-board.yaml
  mines play mines --preset intermediate`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: beginner, intermediate, expert")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if the variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available difficulties.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Pass config path and preset to the game before creation
	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetPreset(flagPreset)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
