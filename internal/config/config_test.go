package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultInvadersYAML)
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("Embedded defaults differ from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
input:
  fire: ["f"]
rules:
  points_per_hit: 10
  start_on_move: false
paths:
  high_score: /tmp/hs.txt
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}

	if !reflect.DeepEqual(cfg.Input.Fire, []string{"f"}) {
		t.Errorf("Input.Fire = %v, expected [f]", cfg.Input.Fire)
	}
	if cfg.Rules.PointsPerHit != 10 {
		t.Errorf("Rules.PointsPerHit = %d, expected 10", cfg.Rules.PointsPerHit)
	}
	if cfg.Rules.StartOnMove {
		t.Error("Rules.StartOnMove should be false")
	}
	if cfg.Paths.HighScore != "/tmp/hs.txt" {
		t.Errorf("Paths.HighScore = %q, expected /tmp/hs.txt", cfg.Paths.HighScore)
	}

	// Untouched sections keep defaults
	if !reflect.DeepEqual(cfg.Input.Left, DefaultInvadersConfig().Input.Left) {
		t.Errorf("Input.Left = %v, expected defaults", cfg.Input.Left)
	}
	if cfg.Rules.MaxShots != 2 {
		t.Errorf("Rules.MaxShots = %d, expected 2", cfg.Rules.MaxShots)
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadInvaders() with a missing custom path should fail")
	}
}

func TestLoadInvadersInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadInvaders(path); err == nil {
		t.Error("LoadInvaders() with invalid YAML should fail")
	}
}

func TestNormalize(t *testing.T) {
	cfg := InvadersConfig{
		Timing:    TimingConfig{IdleIntervalMs: -1, ActiveIntervalMs: -5},
		Formation: FormationConfig{InitialIntervalMs: 100, MinIntervalMs: 500, SpeedupMs: -3},
	}
	cfg.Normalize()

	d := DefaultInvadersConfig()
	if !reflect.DeepEqual(cfg.Input, d.Input) {
		t.Errorf("Input = %+v, expected defaults", cfg.Input)
	}
	if cfg.Timing.IdleIntervalMs != 16 || cfg.Timing.ActiveIntervalMs != 1 {
		t.Errorf("Timing = %+v, expected defaults", cfg.Timing)
	}
	if cfg.Formation.MinIntervalMs != 100 {
		t.Errorf("MinIntervalMs = %d, expected clamp to 100", cfg.Formation.MinIntervalMs)
	}
	if cfg.Formation.SpeedupMs != 0 {
		t.Errorf("SpeedupMs = %d, expected 0", cfg.Formation.SpeedupMs)
	}
	if cfg.Rules.PointsPerHit != 50 || cfg.Rules.MaxShots != 2 {
		t.Errorf("Rules = %+v, expected defaults", cfg.Rules)
	}
	if cfg.Paths.HighScore != "high_score.txt" {
		t.Errorf("Paths.HighScore = %q, expected default", cfg.Paths.HighScore)
	}
}

func TestFormationInterval(t *testing.T) {
	f := DefaultInvadersConfig().Formation

	tests := []struct {
		descents int
		expected time.Duration
	}{
		{0, 2000 * time.Millisecond},
		{1, 1750 * time.Millisecond},
		{4, 1000 * time.Millisecond},
		{7, 250 * time.Millisecond},
		{20, 250 * time.Millisecond},
		{-1, 2000 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := f.Interval(tc.descents); got != tc.expected {
			t.Errorf("Interval(%d) = %v, expected %v", tc.descents, got, tc.expected)
		}
	}
	if f.Initial() != 2000*time.Millisecond {
		t.Errorf("Initial() = %v, expected 2s", f.Initial())
	}
}

func TestTimingIntervals(t *testing.T) {
	tm := TimingConfig{IdleIntervalMs: 16, ActiveIntervalMs: 1}
	if tm.IdleInterval() != 16*time.Millisecond {
		t.Errorf("IdleInterval() = %v, expected 16ms", tm.IdleInterval())
	}
	if tm.ActiveInterval() != time.Millisecond {
		t.Errorf("ActiveInterval() = %v, expected 1ms", tm.ActiveInterval())
	}
}
