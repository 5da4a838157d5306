package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/notflappy/internal/core"
)

// mapKey translates a Bubble Tea key message to a game key.
func mapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case " ", "up", "w":
		return core.KeyFlap, true
	case "left", "a":
		return core.KeyLeft, true
	case "right", "d":
		return core.KeyRight, true
	case "q", "ctrl+c":
		return core.KeyQuit, true
	}
	return 0, false
}

// keyState buffers key presses between ticks and answers the game's
// polls. Like the raw terminal poller, a press is consumed by the poll
// that observes it. No locking: Bubble Tea delivers messages and ticks
// on one goroutine.
type keyState struct {
	pressed map[core.Key]bool
}

func newKeyState() *keyState {
	return &keyState{pressed: make(map[core.Key]bool)}
}

func (ks *keyState) press(k core.Key) {
	ks.pressed[k] = true
}

// KeyDown reports and consumes a pending press.
func (ks *keyState) KeyDown(k core.Key) bool {
	if ks.pressed[k] {
		delete(ks.pressed, k)
		return true
	}
	return false
}
