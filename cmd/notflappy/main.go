// notflappy is a terminal-rendered side-scrolling arcade game: steer a
// bird through gap obstacles without hitting them or leaving the screen.
//
// Usage:
//
//	notflappy play              - Play in the current terminal
//	notflappy serve             - Serve the game over SSH
//	notflappy scores            - Show recorded high scores
//	notflappy sprites           - Inspect the sprite set
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible obstacle gaps
//	--db <path>     - Scores database path (default: ~/.notflappy/scores.db)
//	--config <path> - Custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "notflappy",
	Short: "NotFlappyBird - a side-scroller for your terminal",
	Long: `NotFlappyBird renders a bird-and-pipes side-scroller directly in the
terminal using a differential renderer: only cells that changed between
frames are rewritten.

The playfield is a fixed 300x80 cells; the terminal must be at least
that large.

Examples:
  notflappy play
  notflappy play --tui
  notflappy serve --addr :2222
  notflappy scores
  notflappy sprites`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.notflappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frame rate override (0 = use config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(spritesCmd)
}
