// Package game holds the entity aggregates and the fixed-tick rules:
// world scrolling, bird physics, collision, scoring and the
// title/playing screen machine. It is pure logic; rendering and input
// sources are injected.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/akarpov/notflappy/internal/config"
	"github.com/akarpov/notflappy/internal/entity"
	"github.com/akarpov/notflappy/internal/sprite"
)

// Playfield geometry. This is a fixed contract with the rendering
// pipeline and the terminal backend, not a tunable.
const (
	Width  = 300
	Height = 80
)

// MaxObstacles caps the obstacle set; exceeding it is a configuration
// bug, reported at startup.
const MaxObstacles = 25

// Bird spawn position for a fresh run.
const (
	SpawnX = 10
	SpawnY = Height / 2
)

// ErrTooManyObstacles is returned when the configured obstacle count
// exceeds MaxObstacles.
var ErrTooManyObstacles = errors.New("game: obstacle capacity exceeded")

// Screen is the current mode of the state machine. GameOver is
// transient: ending a run resets in place and folds straight back to
// Title, so observers only ever see Title or Playing between ticks.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State aggregates everything the tick callbacks mutate. It is built
// once at startup with all entities loaded and registered, then owned
// exclusively by the single logic loop; game over resets fields in
// place rather than reallocating.
type State struct {
	Bird      Bird
	Obstacles []Obstacle
	Screen    Screen
	Score     int
	Counter   ScoreCounter

	title       entity.Entity
	startButton entity.Entity

	registry *entity.Registry
	cfg      config.Config
	ramp     *config.Ramp
	rng      *rand.Rand

	quit        bool
	finishedRun int
	hasFinished bool
}

// New builds the full game state: overlays, the obstacle set, the bird
// and the score counter, registered in paint order (overlays first,
// bird above obstacles, digits on top). Any load or capacity failure is
// fatal.
func New(cfg config.Config, seed int64) (*State, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Obstacles.Count > MaxObstacles {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyObstacles, cfg.Obstacles.Count, MaxObstacles)
	}

	s := &State{
		Screen:   ScreenTitle,
		registry: entity.NewRegistry(),
		cfg:      cfg,
		ramp:     config.NewRamp(cfg.Difficulty),
		rng:      rand.New(rand.NewSource(seed)),
	}

	if err := s.loadOverlays(); err != nil {
		return nil, err
	}
	if err := s.loadObstacles(); err != nil {
		return nil, err
	}

	bird, err := newBird()
	if err != nil {
		return nil, err
	}
	bird.Entity.X = SpawnX
	bird.Entity.Y = SpawnY
	s.Bird = bird
	if err := s.registry.Add(&s.Bird.Entity); err != nil {
		return nil, err
	}

	counter, err := newScoreCounter(Width-9, 1)
	if err != nil {
		return nil, err
	}
	s.Counter = counter
	for i := 0; i < ScoreDigits; i++ {
		if err := s.registry.Add(s.Counter.Digit(i)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// loadOverlays builds the title banner and the scrolling start prompt.
func (s *State) loadOverlays() error {
	title, err := sprite.Builtin("not_flappy_bird")
	if err != nil {
		return fmt.Errorf("game: loading title: %w", err)
	}
	s.title = entity.New(entity.TypeOverlay)
	if err := s.title.AddView(title); err != nil {
		return err
	}
	s.title.X = Width / 2
	s.title.Y = Height / 2
	if err := s.registry.Add(&s.title); err != nil {
		return err
	}

	prompt, err := sprite.Builtin("press_space_to_start")
	if err != nil {
		return fmt.Errorf("game: loading start prompt: %w", err)
	}
	s.startButton = entity.New(entity.TypeOverlay)
	if err := s.startButton.AddView(prompt); err != nil {
		return err
	}
	// Enters from the left edge and scrolls across.
	s.startButton.X = -prompt.Width
	s.startButton.Y = Height/2 + 30
	return s.registry.Add(&s.startButton)
}

// loadObstacles seeds the obstacle set spread evenly across the screen
// with randomized gaps, and registers both halves of each.
func (s *State) loadObstacles() error {
	count := s.cfg.Obstacles.Count
	if count <= 0 {
		count = 1
	}
	s.Obstacles = make([]Obstacle, 0, count)
	for i := 0; i < count; i++ {
		o, err := newObstacle(Width/4+i*Width/count, randGapCenter(s.rng), s.randHalfGap())
		if err != nil {
			return err
		}
		s.Obstacles = append(s.Obstacles, o)
		if err := s.registry.Add(&s.Obstacles[i].Top); err != nil {
			return err
		}
		if err := s.registry.Add(&s.Obstacles[i].Bottom); err != nil {
			return err
		}
	}
	return nil
}

// randHalfGap picks a half-gap within the configured range.
func (s *State) randHalfGap() int {
	min, max := s.cfg.Obstacles.MinHalfGap, s.cfg.Obstacles.MaxHalfGap
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Registry returns the paint-order registry for the renderer.
func (s *State) Registry() *entity.Registry {
	return s.registry
}

// Config returns the tuning the state was built with.
func (s *State) Config() config.Config {
	return s.cfg
}

// ScrollPeriod returns the current world-scroll cadence, shortened by
// the difficulty ramp as the score grows.
func (s *State) ScrollPeriod() time.Duration {
	ms := s.ramp.ScrollPeriodMs(s.cfg.Timers.ScrollMs, s.Score)
	return time.Duration(ms) * time.Millisecond
}

// Quit reports whether the player asked to leave. Checked by the run
// loop once per logic tick.
func (s *State) Quit() bool {
	return s.quit
}

// RequestQuit flags the state for shutdown at the next loop check.
func (s *State) RequestQuit() {
	s.quit = true
}

// StartRun transitions Title -> Playing: overlays hidden, bird at the
// spawn point, score cleared and the obstacle set redistributed evenly
// across the screen width with fresh gap centers.
func (s *State) StartRun() {
	s.Screen = ScreenPlaying
	s.title.Visible = false
	s.startButton.Visible = false

	s.Bird.Entity.X = SpawnX
	s.Bird.Entity.Y = SpawnY
	s.Bird.Velocity = 0

	s.Score = 0
	s.Counter.Update(0)

	count := len(s.Obstacles)
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.X = Width/4 + i*Width/count
		o.Y = randGapCenter(s.rng)
		o.ScoreCollected = false
		o.sync()
	}
}

// endRun transitions Playing -> GameOver -> Title in one step: the
// finished score is published for persistence, then the state resets in
// place with overlays re-shown.
func (s *State) endRun() {
	s.Screen = ScreenGameOver

	s.finishedRun = s.Score
	s.hasFinished = true

	s.Score = 0
	s.Counter.Update(0)
	s.title.Visible = true
	s.startButton.Visible = true

	s.Screen = ScreenTitle
}

// TakeFinishedRun returns the score of the most recently ended run,
// once. Frontends poll it after each tick to persist scores.
func (s *State) TakeFinishedRun() (int, bool) {
	if !s.hasFinished {
		return 0, false
	}
	s.hasFinished = false
	return s.finishedRun, true
}

// TitleVisible reports whether the title overlay is shown (tests).
func (s *State) TitleVisible() bool {
	return s.title.Visible
}

// StartPromptVisible reports whether the start prompt is shown (tests).
func (s *State) StartPromptVisible() bool {
	return s.startButton.Visible
}
