package game

import (
	"fmt"
	"math/rand"

	"github.com/akarpov/notflappy/internal/entity"
	"github.com/akarpov/notflappy/internal/sprite"
)

// Obstacle is a recycled pipe pair: Y is the gap center, HalfGap the
// half-height of the passable gap. The two child entities are derived
// from (X, Y, HalfGap) on every update and never positioned directly.
type Obstacle struct {
	X, Y    int
	HalfGap int

	Top    entity.Entity
	Bottom entity.Entity

	// ScoreCollected is set once the bird has passed this obstacle and
	// cleared again when it recycles off-screen.
	ScoreCollected bool
}

// newObstacle loads the pipe-half sprites and derives the child
// positions for the first time.
func newObstacle(x, y, halfGap int) (Obstacle, error) {
	o := Obstacle{X: x, Y: y, HalfGap: halfGap}

	top, err := sprite.Builtin("obstacle_top")
	if err != nil {
		return Obstacle{}, fmt.Errorf("game: loading obstacle: %w", err)
	}
	bottom, err := sprite.Builtin("obstacle_bottom")
	if err != nil {
		return Obstacle{}, fmt.Errorf("game: loading obstacle: %w", err)
	}

	o.Top = entity.New(entity.TypeObstacle)
	if err := o.Top.AddView(top); err != nil {
		return Obstacle{}, err
	}
	o.Bottom = entity.New(entity.TypeObstacle)
	if err := o.Bottom.AddView(bottom); err != nil {
		return Obstacle{}, err
	}

	o.sync()
	return o, nil
}

// sync recomputes the child entity positions from the obstacle fields.
// Pure position bookkeeping, no other side effects.
func (o *Obstacle) sync() {
	o.Top.X = o.X
	o.Bottom.X = o.X
	o.Top.Y = o.Y - o.HalfGap
	o.Bottom.Y = o.Y + o.HalfGap
}

// offLeftEdge reports whether the obstacle has scrolled fully past the
// left boundary, using the top view's declared width.
func (o *Obstacle) offLeftEdge() bool {
	v, err := o.Top.CurrentView()
	if err != nil {
		return false
	}
	return o.X < -v.Width
}

// recycle teleports the obstacle just past the right boundary with a
// fresh gap center in the middle half of the screen and re-arms scoring.
func (o *Obstacle) recycle(rng *rand.Rand) {
	o.X = Width
	o.Y = randGapCenter(rng)
	o.ScoreCollected = false
}

// randGapCenter picks a gap center within the middle half of the screen
// height: [H/4, 3H/4).
func randGapCenter(rng *rand.Rand) int {
	return rng.Intn(Height-Height/2) + Height/4
}
