package tui

import "strings"

// cellGrid implements the display backend over an in-memory rune grid.
// The differential renderer writes changed cells into it; View() then
// presents the whole grid as a string and Bubble Tea does its own
// terminal diffing on top.
type cellGrid struct {
	width  int
	height int
	cells  [][]rune
	cx, cy int
}

func newCellGrid(width, height int) *cellGrid {
	g := &cellGrid{width: width, height: height}
	g.cells = make([][]rune, height)
	for y := range g.cells {
		g.cells[y] = make([]rune, width)
	}
	g.Clear()
	return g
}

// MoveCursor sets the write position.
func (g *cellGrid) MoveCursor(x, y int) {
	g.cx, g.cy = x, y
}

// WriteRune stores a rune at the cursor and advances it, clipping
// writes outside the grid.
func (g *cellGrid) WriteRune(r rune) {
	if g.cx >= 0 && g.cx < g.width && g.cy >= 0 && g.cy < g.height {
		g.cells[g.cy][g.cx] = r
	}
	g.cx++
}

// Clear fills the grid with spaces.
func (g *cellGrid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
}

// ViewportSize reports the grid dimensions.
func (g *cellGrid) ViewportSize() (cols, rows int) {
	return g.width, g.height
}

// String joins the grid rows for display.
func (g *cellGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y][x])
		}
	}
	return sb.String()
}
