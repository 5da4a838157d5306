package config

// Ramp computes the score-driven difficulty level and the resulting
// scroll cadence. With the ramp disabled every query returns the base
// values unchanged.
type Ramp struct {
	cfg Difficulty
}

// NewRamp creates a ramp from the difficulty section of the config.
func NewRamp(cfg Difficulty) *Ramp {
	return &Ramp{cfg: cfg}
}

// Level returns the current difficulty in [0, 1] for the given score.
func (r *Ramp) Level(score int) float64 {
	if !r.cfg.Enabled {
		return 0
	}
	maxAt := r.cfg.MaxAtScore
	if maxAt <= 0 {
		maxAt = 1
	}
	level := float64(score) / float64(maxAt)
	if level > 1 {
		level = 1
	}
	if level < 0 {
		level = 0
	}
	return level
}

// ScrollPeriodMs shrinks the base scroll period by up to SpeedFactor as
// the level rises, never below a quarter of the base.
func (r *Ramp) ScrollPeriodMs(baseMs, score int) int {
	level := r.Level(score)
	period := float64(baseMs) * (1.0 - level*r.cfg.SpeedFactor)
	min := float64(baseMs) / 4
	if period < min {
		period = min
	}
	if period < 1 {
		period = 1
	}
	return int(period)
}
