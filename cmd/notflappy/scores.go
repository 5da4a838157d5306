package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpov/notflappy/internal/platform/tui"
	"github.com/akarpov/notflappy/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Print the best recorded runs, newest first among ties.

With --tui the scores open in an interactive browser instead.

Examples:
  notflappy scores
  notflappy scores --limit 25
  notflappy scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet. Play a game first!")
		return
	}

	fmt.Printf("%-6s %-10s %s\n", "Rank", "Score", "Date")
	for i, e := range entries {
		fmt.Printf("%-6d %-10d %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
