// Package tui provides the Bubble Tea frontend for the game, the high
// score browser, and SSH serving via Wish. Unlike the direct terminal
// frontend it cannot busy-wait: Bubble Tea owns the event loop, so the
// logic timers are driven by tick messages at the input cadence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one scheduler pass and a frame.
type TickMsg time.Time

// tickCmd schedules the next tick after the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
