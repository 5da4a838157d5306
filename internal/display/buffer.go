package display

// FrameBuffer holds the two fixed-size character grids the renderer
// diffs: "current" mirrors what the terminal shows, "next" is the frame
// being composed. Owned solely by the rendering loop; game logic never
// sees it.
type FrameBuffer struct {
	width   int
	height  int
	current [][]rune
	next    [][]rune
}

// NewFrameBuffer allocates both grids filled with the background rune.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		width:   width,
		height:  height,
		current: allocate(width, height),
		next:    allocate(width, height),
	}
	return fb
}

func allocate(width, height int) [][]rune {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = background
		}
	}
	return cells
}

// Width returns the buffer width in cells.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the buffer height in cells.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// clearNext resets the back buffer to the background fill.
func (fb *FrameBuffer) clearNext() {
	for y := range fb.next {
		for x := range fb.next[y] {
			fb.next[y][x] = background
		}
	}
}

// setNext writes one cell into the back buffer. Out-of-bounds cells are
// clipped silently; that is defined behavior, not an error.
func (fb *FrameBuffer) setNext(x, y int, r rune) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.next[y][x] = r
}

// Front returns the committed rune at (x, y), the background rune when
// out of bounds. Exposed for tests and for frontends that re-present
// the whole committed frame.
func (fb *FrameBuffer) Front(x, y int) rune {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return background
	}
	return fb.current[y][x]
}

// flush diffs next against current cell by cell, emitting exactly one
// positioned write per changed cell and committing it. Unchanged cells
// produce no backend traffic at all.
func (fb *FrameBuffer) flush(b Backend) int {
	writes := 0
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if fb.current[y][x] != fb.next[y][x] {
				b.MoveCursor(x, y)
				b.WriteRune(fb.next[y][x])
				fb.current[y][x] = fb.next[y][x]
				writes++
			}
		}
	}
	return writes
}
