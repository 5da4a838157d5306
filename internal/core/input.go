package core

// Key identifies a game-relevant key, abstracted from physical key codes.
// Frontends translate their own input events into these.
type Key int

const (
	KeyFlap  Key = iota // Space - flap / start a run
	KeyLeft             // Left arrow - nudge bird left
	KeyRight            // Right arrow - nudge bird right
	KeyQuit             // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyFlap:
		return "Flap"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the key-state capability the game tick polls each pass.
// Implementations report whether a key is currently held (or was pressed
// since the previous poll, for event-driven frontends).
type Input interface {
	KeyDown(k Key) bool
}

// NullInput is an Input with no keys ever down. Useful in tests and for
// headless runs.
type NullInput struct{}

// KeyDown always reports false.
func (NullInput) KeyDown(Key) bool { return false }
