package display

import (
	"time"

	"github.com/akarpov/notflappy/internal/entity"
)

// Frame characters.
const (
	background  = ' '
	borderHoriz = '='
	borderVert  = '|'
)

// Renderer composites the entity registry into the back buffer, frames
// it with the static border, and flushes the diff to the backend. The
// render cadence is gated separately from the logic timers.
type Renderer struct {
	buf       *FrameBuffer
	backend   Backend
	period    time.Duration
	lastFrame time.Time
}

// New creates a renderer over the given backend with the given frame
// rate.
func New(backend Backend, width, height, frameRate int) *Renderer {
	if frameRate <= 0 {
		frameRate = 144
	}
	return &Renderer{
		buf:     NewFrameBuffer(width, height),
		backend: backend,
		period:  time.Second / time.Duration(frameRate),
	}
}

// Buffer exposes the frame buffer for tests.
func (r *Renderer) Buffer() *FrameBuffer {
	return r.buf
}

// Due reports whether the render cadence has elapsed since the last
// presented frame.
func (r *Renderer) Due(now time.Time) bool {
	return now.Sub(r.lastFrame) > r.period
}

// Frame composes and presents one frame: clear the back buffer, paint
// the registered entities in order, paint the border on top, then emit
// only the changed cells. Returns the number of cell writes. A second
// call on unchanged state emits zero writes.
func (r *Renderer) Frame(reg *entity.Registry, now time.Time) (int, error) {
	r.buf.clearNext()

	for _, e := range reg.Entities() {
		if !e.Visible {
			continue
		}
		if err := r.paint(e); err != nil {
			return 0, err
		}
	}

	r.paintBorder()

	writes := r.buf.flush(r.backend)
	r.lastFrame = now
	return writes, nil
}

// paint stamps an entity's current view into the back buffer at its
// bounding-box origin. Row breaks in the view content move the pen to
// the start of the next row; cells outside the buffer clip silently.
func (r *Renderer) paint(e *entity.Entity) error {
	view, err := e.CurrentView()
	if err != nil {
		return err
	}

	bounds, err := e.Bounds()
	if err != nil {
		return err
	}

	y := bounds.Y
	for _, row := range view.Rows() {
		x := bounds.X
		for _, ch := range row {
			r.buf.setNext(x, y, ch)
			x++
		}
		y++
	}
	return nil
}

// paintBorder draws the static frame, always last so it stays on top of
// anything that scrolls under it.
func (r *Renderer) paintBorder() {
	for x := 0; x < r.buf.width; x++ {
		r.buf.setNext(x, 0, borderHoriz)
		r.buf.setNext(x, r.buf.height-1, borderHoriz)
	}
	for y := 0; y < r.buf.height; y++ {
		r.buf.setNext(0, y, borderVert)
		r.buf.setNext(r.buf.width-1, y, borderVert)
	}
}
