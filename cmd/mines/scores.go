package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarpenko/tui-mines/internal/registry"
	"github.com/mkarpenko/tui-mines/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <difficulty>",
	Short: "Show best times for a difficulty",
	Long: `Display the ten fastest wins for the specified difficulty,
plus the overall win rate.

Examples:
  mines scores beginner
  mines scores expert`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if the variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available difficulties.")
		os.Exit(1)
	}

	// Get the variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get the fastest wins
	results, err := store.BestTimes(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best times: %v\n", err)
		os.Exit(1)
	}

	// Display
	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first time!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Time", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "----", "-----", "----")

	for i, r := range results {
		seconds := r.DurationMs / 1000
		timeStr := fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
		boardStr := fmt.Sprintf("%dx%d/%d", r.Rows, r.Cols, r.Mines)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-12s  %s\n", i+1, timeStr, boardStr, dateStr)
	}

	// Show win rate
	fmt.Println()
	stats, err := store.Stats(gameID)
	if err == nil && stats.Games > 0 {
		fmt.Printf("Played: %d  Won: %d (%.0f%%)\n",
			stats.Games, stats.Wins,
			float64(stats.Wins)/float64(stats.Games)*100)
	}
}
