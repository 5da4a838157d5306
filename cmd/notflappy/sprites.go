package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpov/notflappy/internal/sprite"
)

var flagSpritesShow bool

var spritesCmd = &cobra.Command{
	Use:   "sprites [name...]",
	Short: "Inspect the sprite set",
	Long: `List the built-in sprites and check that each one's declared
dimensions match its drawn character block. With names given, only
those sprites are inspected; with --show their character blocks are
printed too.

Examples:
  notflappy sprites
  notflappy sprites bird_0 --show`,
	Run: runSprites,
}

func init() {
	spritesCmd.Flags().BoolVar(&flagSpritesShow, "show", false, "Print each sprite's character block")
}

func runSprites(cmd *cobra.Command, args []string) {
	names := args
	if len(names) == 0 {
		names = sprite.BuiltinNames()
	}

	bad := 0
	for _, name := range names {
		view, err := sprite.Builtin(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-24s ERROR: %v\n", name, err)
			bad++
			continue
		}

		status := "ok"
		if err := view.Validate(); err != nil {
			status = err.Error()
			bad++
		}
		fmt.Printf("%-24s %3dx%-3d origin (%d,%d)  %s\n",
			name, view.Width, view.Height, view.OriginX, view.OriginY, status)

		if flagSpritesShow {
			for _, row := range view.Rows() {
				fmt.Printf("    |%s|\n", row)
			}
		}
	}

	if bad > 0 {
		fmt.Fprintf(os.Stderr, "\n%d sprite(s) failed validation\n", bad)
		os.Exit(1)
	}
}
