// Package config provides YAML-based tuning for the game: physics,
// obstacle seeding, timer periods and the optional difficulty ramp.
// Screen geometry is not configurable; the 300x80 playfield is a fixed
// contract of the rendering pipeline.
package config

// Config is the full tuning file.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Timers     Timers     `yaml:"timers"`
	Render     Render     `yaml:"render"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// Physics defines the bird's vertical motion parameters, all in cells
// per logic tick.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Added each tick while below the ceiling
	VelocityCeiling float64 `yaml:"velocity_ceiling"` // Terminal fall speed
	FlapImpulse     float64 `yaml:"flap_impulse"`     // Applied on flap (negative = up)
	VelocityFloor   float64 `yaml:"velocity_floor"`   // Flapping never drives velocity below this
}

// Obstacles defines how the obstacle set is seeded.
type Obstacles struct {
	Count      int `yaml:"count"`        // Number of recycled obstacle pairs
	MinHalfGap int `yaml:"min_half_gap"` // Smallest half-gap in cells
	MaxHalfGap int `yaml:"max_half_gap"` // Largest half-gap in cells
}

// Timers defines the periods of the logic subsystems in milliseconds.
type Timers struct {
	ScrollMs  int `yaml:"scroll_ms"`  // World scroll cadence
	AnimateMs int `yaml:"animate_ms"` // Bird wing-flap animation cadence
	InputMs   int `yaml:"input_ms"`   // Input poll + physics cadence
}

// Render defines the render cadence, independent of the logic timers.
type Render struct {
	FrameRate int `yaml:"frame_rate"` // Frames per second
}

// Difficulty defines the optional score-driven ramp. Disabled by default
// so the stock game keeps the fixed scroll cadence.
type Difficulty struct {
	Enabled     bool    `yaml:"enabled"`
	MaxAtScore  int     `yaml:"max_at_score"` // Score at which the ramp tops out
	SpeedFactor float64 `yaml:"speed_factor"` // Scroll period shrinks by up to this fraction
}
