// Package display implements the double-buffered differential renderer:
// entities composite into a back buffer which is diffed against the
// front buffer, and only changed cells reach the terminal backend.
package display

// Backend is the terminal capability interface the renderer writes
// through. The core never performs terminal I/O itself; frontends
// provide an implementation (raw ANSI, Bubble Tea cell grid, test
// recorder).
type Backend interface {
	// MoveCursor positions the cursor at column x, row y (0-based).
	MoveCursor(x, y int)

	// WriteRune emits a single character at the cursor position.
	WriteRune(r rune)

	// Clear wipes the whole terminal.
	Clear()

	// ViewportSize reports the backend's current size in cells.
	ViewportSize() (cols, rows int)
}
