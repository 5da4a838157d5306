package game

import (
	"github.com/akarpov/notflappy/internal/core"
	"github.com/akarpov/notflappy/internal/entity"
)

// The three methods in this file are the periodic tick callbacks. They
// run synchronously on the single logic goroutine; nothing else mutates
// the state.

// ScrollWorld moves every obstacle one cell left, collects scoring while
// playing, recycles obstacles that left the screen, and scrolls the
// start prompt across the title screen.
func (s *State) ScrollWorld() error {
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.X--

		if s.Screen == ScreenPlaying && o.X < s.Bird.Entity.X && !o.ScoreCollected {
			s.Score++
			s.Counter.Update(s.Score)
			o.ScoreCollected = true
		}

		if o.offLeftEdge() {
			o.recycle(s.rng)
		}
		o.sync()
	}

	if s.Screen == ScreenTitle {
		s.startButton.X++
		if s.startButton.X > Width {
			v, err := s.startButton.CurrentView()
			if err != nil {
				return err
			}
			s.startButton.X = -v.Width
		}
	}
	return nil
}

// AnimateBird advances the wing-flap animation frame.
func (s *State) AnimateBird() error {
	return s.Bird.Entity.AdvanceView()
}

// Tick polls input and advances bird physics by one step: flap and
// arrow handling, gravity, title-screen autopilot, and while playing
// the collision and out-of-bounds checks that end the run.
func (s *State) Tick(in core.Input) error {
	if in.KeyDown(core.KeyQuit) {
		s.quit = true
	}
	if in.KeyDown(core.KeyLeft) {
		s.Bird.Entity.X--
	}
	if in.KeyDown(core.KeyRight) {
		s.Bird.Entity.X++
	}
	if in.KeyDown(core.KeyFlap) {
		if s.Screen == ScreenTitle {
			s.StartRun()
		}
		s.Bird.flap(s.cfg.Physics)
		if err := s.Bird.Entity.AdvanceView(); err != nil {
			return err
		}
	}

	s.Bird.applyGravity(s.cfg.Physics)

	switch s.Screen {
	case ScreenTitle:
		s.autopilot()
	case ScreenPlaying:
		if err := s.checkCollisions(); err != nil {
			return err
		}
	}

	s.Bird.integrate()
	return nil
}

// autopilot keeps the demo bird alive on the title screen: an upward
// nudge whenever it sinks into the lower quarter, a steady rightward
// drift, and a wrap back to the origin at the right edge.
func (s *State) autopilot() {
	if s.Bird.Entity.Y > Height-Height/4 {
		s.Bird.Velocity -= 3 + float64(s.rng.Intn(10))/8
	}

	if s.Bird.Entity.X < Width {
		s.Bird.Entity.X++
	} else {
		s.Bird.Entity.X = 0
		s.Bird.Entity.Y = 0
	}
}

// checkCollisions ends the run on contact with either obstacle half or
// when the bird leaves the playfield.
func (s *State) checkCollisions() error {
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		hitTop, err := entity.Collides(&s.Bird.Entity, &o.Top)
		if err != nil {
			return err
		}
		hitBottom, err := entity.Collides(&s.Bird.Entity, &o.Bottom)
		if err != nil {
			return err
		}
		if hitTop || hitBottom {
			s.endRun()
			return nil
		}
	}

	b := &s.Bird.Entity
	if b.X < 0 || b.X > Width || b.Y < 0 || b.Y > Height {
		s.endRun()
	}
	return nil
}
