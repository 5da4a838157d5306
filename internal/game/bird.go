package game

import (
	"fmt"

	"github.com/akarpov/notflappy/internal/config"
	"github.com/akarpov/notflappy/internal/entity"
	"github.com/akarpov/notflappy/internal/sprite"
)

// birdFrames are the wing-flap animation frames, in cycle order.
var birdFrames = []string{"bird_0", "bird_1", "bird_2"}

// Bird is the player: one entity plus a floating-point vertical velocity
// in cells per logic tick. Position integrates the truncated velocity,
// so slow drifts accumulate in the fraction before moving a cell.
type Bird struct {
	Entity   entity.Entity
	Velocity float64
}

// newBird loads the bird entity with its animation frames.
func newBird() (Bird, error) {
	b := Bird{Entity: entity.New(entity.TypeBird)}
	for _, name := range birdFrames {
		v, err := sprite.Builtin(name)
		if err != nil {
			return Bird{}, fmt.Errorf("game: loading bird: %w", err)
		}
		if err := b.Entity.AddView(v); err != nil {
			return Bird{}, fmt.Errorf("game: loading bird: %w", err)
		}
	}
	return b, nil
}

// applyGravity accelerates the bird downward until it reaches the
// velocity ceiling.
func (b *Bird) applyGravity(p config.Physics) {
	if b.Velocity < p.VelocityCeiling {
		b.Velocity += p.Gravity
	}
}

// flap applies the upward impulse. The floor clamp means hammering the
// key cannot drive the bird arbitrarily fast upward.
func (b *Bird) flap(p config.Physics) {
	if b.Velocity > p.VelocityFloor {
		b.Velocity += p.FlapImpulse
	}
}

// integrate moves the bird by the whole-cell part of its velocity.
func (b *Bird) integrate() {
	b.Entity.Y += int(b.Velocity)
}
