// Package entity implements the positioned, multi-view drawable object
// underlying every on-screen element, plus the paint-order registry the
// renderer walks.
package entity

import (
	"errors"
	"fmt"

	"github.com/akarpov/notflappy/internal/core"
	"github.com/akarpov/notflappy/internal/sprite"
)

// MaxViews is the animation frame cap per entity. Exceeding it is a
// static configuration bug, reported as ErrViewCapacity and fatal at
// startup rather than truncated silently.
const MaxViews = 10

var (
	// ErrViewCapacity is returned by AddView past MaxViews.
	ErrViewCapacity = errors.New("entity: view capacity exceeded")

	// ErrNoViews is returned when an operation needs a current view and
	// the entity has none. The original implementation would divide by
	// zero here; callers must treat it as a wiring bug.
	ErrNoViews = errors.New("entity: no views")
)

// Type tags what an entity represents. It has no behavioral meaning in
// the renderer; game code uses it for bookkeeping and diagnostics.
type Type int

const (
	TypePlayer Type = iota
	TypeMonster
	TypeBird
	TypeObstacle
	TypeScoreDigit
	TypeOverlay
)

// String returns the tag name.
func (t Type) String() string {
	switch t {
	case TypePlayer:
		return "player"
	case TypeMonster:
		return "monster"
	case TypeBird:
		return "bird"
	case TypeObstacle:
		return "obstacle"
	case TypeScoreDigit:
		return "score-digit"
	case TypeOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Entity is a positioned, animated drawable. X and Y are the anchor in
// screen-cell coordinates; each view's origin offsets the anchor to the
// top-left corner of the drawn grid. Entities are value-owned by their
// aggregate (bird, obstacle, score counter); the registry only holds
// references for paint order.
type Entity struct {
	X, Y    int
	Type    Type
	Visible bool

	views   []sprite.View
	current int
}

// New creates an entity of the given type at the origin, visible, with
// no views yet.
func New(t Type) Entity {
	return Entity{Type: t, Visible: true}
}

// AddView appends an animation frame. The first added view becomes the
// current one.
func (e *Entity) AddView(v sprite.View) error {
	if len(e.views) >= MaxViews {
		return fmt.Errorf("%w: %s already has %d views", ErrViewCapacity, e.Type, MaxViews)
	}
	e.views = append(e.views, v)
	return nil
}

// NumViews returns the number of loaded animation frames.
func (e *Entity) NumViews() int {
	return len(e.views)
}

// CurrentView returns the active animation frame.
func (e *Entity) CurrentView() (sprite.View, error) {
	if len(e.views) == 0 {
		return sprite.View{}, fmt.Errorf("%w (%s)", ErrNoViews, e.Type)
	}
	return e.views[e.current], nil
}

// CurrentIndex returns the index of the active view.
func (e *Entity) CurrentIndex() int {
	return e.current
}

// SetCurrentView selects a view by index. The score counter uses this to
// pick digit glyphs directly.
func (e *Entity) SetCurrentView(i int) error {
	if len(e.views) == 0 {
		return fmt.Errorf("%w (%s)", ErrNoViews, e.Type)
	}
	if i < 0 || i >= len(e.views) {
		return fmt.Errorf("entity: view index %d out of range [0,%d)", i, len(e.views))
	}
	e.current = i
	return nil
}

// AdvanceView cycles to the next animation frame, wrapping to the first
// after the last.
func (e *Entity) AdvanceView() error {
	if len(e.views) == 0 {
		return fmt.Errorf("%w (%s)", ErrNoViews, e.Type)
	}
	e.current = (e.current + 1) % len(e.views)
	return nil
}

// Bounds returns the bounding box of the current view: the anchor shifted
// by the view origin, sized by the view's declared dimensions. This is
// the single source of truth for both painting and collision.
func (e *Entity) Bounds() (core.Rect, error) {
	v, err := e.CurrentView()
	if err != nil {
		return core.Rect{}, err
	}
	return core.NewRect(e.X-v.OriginX, e.Y-v.OriginY, v.Width, v.Height), nil
}

// Collides reports whether two entities' current-view bounding boxes
// strictly overlap on both axes. It is symmetric; touching edges do not
// collide.
func Collides(a, b *Entity) (bool, error) {
	ra, err := a.Bounds()
	if err != nil {
		return false, err
	}
	rb, err := b.Bounds()
	if err != nil {
		return false, err
	}
	return ra.Overlaps(rb), nil
}
