package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if fromYAML != Default() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", fromYAML, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tuning.yaml")
	content := []byte("physics:\n  gravity: 0.5\ntimers:\n  scroll_ms: 25\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %f, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Timers.ScrollMs != 25 {
		t.Errorf("scroll_ms = %d, expected 25", cfg.Timers.ScrollMs)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with a malformed explicit path should fail")
	}
}

func TestRampDisabled(t *testing.T) {
	r := NewRamp(Difficulty{Enabled: false, MaxAtScore: 50, SpeedFactor: 0.5})

	if r.Level(100) != 0 {
		t.Errorf("Level() = %f with ramp disabled, expected 0", r.Level(100))
	}
	if r.ScrollPeriodMs(50, 100) != 50 {
		t.Errorf("ScrollPeriodMs() = %d with ramp disabled, expected 50", r.ScrollPeriodMs(50, 100))
	}
}

func TestRampLevel(t *testing.T) {
	r := NewRamp(Difficulty{Enabled: true, MaxAtScore: 50, SpeedFactor: 0.5})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{25, 0.5},
		{50, 1},
		{100, 1}, // capped
	}
	for _, tc := range tests {
		if got := r.Level(tc.score); got != tc.expected {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestRampScrollPeriod(t *testing.T) {
	r := NewRamp(Difficulty{Enabled: true, MaxAtScore: 50, SpeedFactor: 0.5})

	if got := r.ScrollPeriodMs(50, 0); got != 50 {
		t.Errorf("ScrollPeriodMs at score 0 = %d, expected 50", got)
	}
	if got := r.ScrollPeriodMs(50, 50); got != 25 {
		t.Errorf("ScrollPeriodMs at max score = %d, expected 25", got)
	}

	// An aggressive factor still floors at a quarter of the base
	steep := NewRamp(Difficulty{Enabled: true, MaxAtScore: 10, SpeedFactor: 0.95})
	if got := steep.ScrollPeriodMs(40, 100); got != 10 {
		t.Errorf("ScrollPeriodMs floored = %d, expected 10", got)
	}
}
