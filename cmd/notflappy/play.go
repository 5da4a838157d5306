package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpov/notflappy/internal/config"
	"github.com/akarpov/notflappy/internal/game"
	"github.com/akarpov/notflappy/internal/platform/term"
	"github.com/akarpov/notflappy/internal/platform/tui"
	"github.com/akarpov/notflappy/internal/storage"
)

var (
	flagTUI  bool
	flagRamp bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the current terminal.

Controls:
  Space       - Flap (starts a run from the title screen)
  Left/Right  - Nudge the bird sideways
  Q/Ctrl+C    - Quit

By default the game drives the terminal directly with a tight polling
loop for minimal input latency. With --tui it runs inside a Bubble Tea
program instead, which is friendlier to terminal multiplexers.

Examples:
  notflappy play
  notflappy play --tui
  notflappy play --ramp --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Run inside a Bubble Tea program instead of driving the terminal directly")
	playCmd.Flags().BoolVar(&flagRamp, "ramp", false, "Enable the score-driven difficulty ramp")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRamp {
		cfg.Difficulty.Enabled = true
	}
	if flagFPS > 0 {
		cfg.Render.FrameRate = flagFPS
	}

	state, err := game.New(cfg, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without persistence
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagTUI {
		err = tui.Run(state, store)
	} else {
		err = term.Run(state, term.Options{Store: store})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
