// mines is a terminal Minesweeper with local play, an SSH server, and
// persistent best times.
//
// Usage:
//
//	mines list               - List available difficulties
//	mines play <difficulty>  - Play a board
//	mines menu               - Start menu to pick a difficulty interactively
//	mines serve              - Start SSH server for remote play
//	mines scores <difficulty> - Show best times for a difficulty
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.mines/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/mkarpenko/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal Minesweeper platform.

Available commands:
  list     - Show all available difficulties
  play     - Play a board directly
  menu     - Interactive difficulty picker menu
  serve    - Start SSH server for remote play
  scores   - View best times

Examples:
  mines list
  mines play beginner
  mines play mines --config ./my-board.yaml
  mines menu
  mines serve --ssh :2222
  mines scores expert`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
