package term

import (
	"io"
	"sync"

	"github.com/akarpov/notflappy/internal/core"
)

// Keyboard collects key presses from a raw-mode terminal stream and
// answers the game's KeyDown polls. A terminal cannot report held keys,
// so KeyDown means "pressed since the previous poll"; each press is
// consumed by the poll that observes it.
//
// The reader goroutine touches only the pressed set, never game state,
// so the single-thread ownership of the game loop holds.
type Keyboard struct {
	mu      sync.Mutex
	pressed map[core.Key]bool
}

// NewKeyboard creates an idle keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[core.Key]bool)}
}

// KeyDown reports and consumes a pending press of k.
func (kb *Keyboard) KeyDown(k core.Key) bool {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if kb.pressed[k] {
		delete(kb.pressed, k)
		return true
	}
	return false
}

// press records a pending key press.
func (kb *Keyboard) press(k core.Key) {
	kb.mu.Lock()
	kb.pressed[k] = true
	kb.mu.Unlock()
}

// Listen reads raw terminal bytes until the stream closes, translating
// them into key presses. Run it on its own goroutine.
func (kb *Keyboard) Listen(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		kb.decode(buf[:n])
	}
}

// decode translates a chunk of raw input bytes. Arrow keys arrive as
// CSI sequences (ESC [ C / ESC [ D); everything else is a single byte.
func (kb *Keyboard) decode(chunk []byte) {
	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case ' ':
			kb.press(core.KeyFlap)
		case 'q', 'Q', 0x03: // q or Ctrl+C
			kb.press(core.KeyQuit)
		case 0x1b: // ESC - possible CSI arrow sequence
			if i+2 < len(chunk) && chunk[i+1] == '[' {
				switch chunk[i+2] {
				case 'C':
					kb.press(core.KeyRight)
				case 'D':
					kb.press(core.KeyLeft)
				}
				i += 2
			}
		}
	}
}
