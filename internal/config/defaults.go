package config

import (
	_ "embed"
)

//go:embed defaults/notflappy.yaml
var defaultYAML []byte

// Default returns the hardcoded tuning used when no YAML source is
// available. Values match the original game's constants.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:         0.2,
			VelocityCeiling: 1.0,
			FlapImpulse:     -2.0,
			VelocityFloor:   -2.0,
		},
		Obstacles: Obstacles{
			Count:      3,
			MinHalfGap: 8,
			MaxHalfGap: 10,
		},
		Timers: Timers{
			ScrollMs:  50,
			AnimateMs: 250,
			InputMs:   20,
		},
		Render: Render{
			FrameRate: 144,
		},
		Difficulty: Difficulty{
			Enabled:     false,
			MaxAtScore:  50,
			SpeedFactor: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default tuning file, for the config
// dump command and for tests.
func DefaultYAML() []byte {
	return defaultYAML
}
