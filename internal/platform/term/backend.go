// Package term is the direct terminal frontend: an ANSI escape-code
// implementation of the display backend, a raw-mode keyboard poller and
// the busy-wait run loop.
package term

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Backend writes cursor-addressed single characters to a terminal using
// ANSI CSI sequences. Writes are buffered; the run loop flushes once per
// presented frame.
type Backend struct {
	out *bufio.Writer
	fd  int
}

// NewBackend creates a backend over the given terminal file.
func NewBackend(f *os.File) *Backend {
	return &Backend{
		out: bufio.NewWriterSize(f, 32*1024),
		fd:  int(f.Fd()),
	}
}

// MoveCursor positions the cursor at column x, row y (0-based).
func (b *Backend) MoveCursor(x, y int) {
	fmt.Fprintf(b.out, "\x1b[%d;%dH", y+1, x+1)
}

// WriteRune emits one character at the cursor position.
func (b *Backend) WriteRune(r rune) {
	b.out.WriteRune(r)
}

// Clear wipes the screen and homes the cursor.
func (b *Backend) Clear() {
	b.out.WriteString("\x1b[2J\x1b[H")
}

// ViewportSize reports the terminal size in cells.
func (b *Backend) ViewportSize() (cols, rows int) {
	cols, rows, err := term.GetSize(b.fd)
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

// HideCursor turns the terminal cursor off for the duration of play.
func (b *Backend) HideCursor() {
	b.out.WriteString("\x1b[?25l")
}

// ShowCursor restores the cursor on exit.
func (b *Backend) ShowCursor() {
	b.out.WriteString("\x1b[?25h")
}

// SetTitle sets the terminal window title.
func (b *Backend) SetTitle(title string) {
	fmt.Fprintf(b.out, "\x1b]0;%s\x07", title)
}

// Flush pushes buffered writes to the terminal.
func (b *Backend) Flush() error {
	return b.out.Flush()
}
