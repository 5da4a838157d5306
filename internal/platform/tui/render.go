package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/akarpov/notflappy/internal/game"
)

var (
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	resizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true).
			Padding(1, 2)
)

// renderFrame presents the committed grid plus a one-line status row.
// The status row replaces the original's terminal-title score updates,
// which a Bubble Tea program cannot perform.
func renderFrame(grid *cellGrid, state *game.State) string {
	status := fmt.Sprintf(" NotFlappyBird | %s | score %d | space flap, q quit", state.Screen, state.Score)
	return frameStyle.Render(grid.String()) + "\n" + statusStyle.Render(status)
}

// renderTooSmall asks the player to enlarge the window to the playfield
// contract.
func renderTooSmall(w, h int) string {
	msg := fmt.Sprintf("Terminal too small: need %d x %d cells, have %d x %d.\nResize the window to continue.",
		game.Width, game.Height+1, w, h)
	return resizeStyle.Render(msg)
}
