// Package config provides YAML-based configuration loading for the game:
// key bindings, loop timing, scoring rules, formation pace and file paths.
package config

import "time"

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Input     InputConfig     `yaml:"input"`
	Timing    TimingConfig    `yaml:"timing"`
	Rules     RulesConfig     `yaml:"rules"`
	Formation FormationConfig `yaml:"formation"`
	Paths     PathsConfig     `yaml:"paths"`
	Sound     SoundConfig     `yaml:"sound"`
}

// InputConfig maps each action to the keys that trigger it. Keys use the
// terminal layer's names ("left", "a", " ", "enter", "esc", "ctrl+c").
type InputConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fire  []string `yaml:"fire"`
	Quit  []string `yaml:"quit"`
	Pause []string `yaml:"pause"`
}

// TimingConfig defines how long the loop sleeps between ticks.
type TimingConfig struct {
	IdleIntervalMs   int `yaml:"idle_interval_ms"`   // Menu and pause screens
	ActiveIntervalMs int `yaml:"active_interval_ms"` // Gameplay
}

// IdleInterval returns the sleep between ticks outside gameplay.
func (t TimingConfig) IdleInterval() time.Duration {
	return time.Duration(t.IdleIntervalMs) * time.Millisecond
}

// ActiveInterval returns the sleep between ticks during gameplay.
func (t TimingConfig) ActiveInterval() time.Duration {
	return time.Duration(t.ActiveIntervalMs) * time.Millisecond
}

// RulesConfig defines scoring and player rules.
type RulesConfig struct {
	PointsPerHit int `yaml:"points_per_hit"`
	MaxShots     int `yaml:"max_shots"`
	// StartOnMove lets Left/Right start a game from the menu, as Fire does.
	StartOnMove bool `yaml:"start_on_move"`
}

// FormationConfig defines how fast the invader formation marches.
type FormationConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	SpeedupMs         int `yaml:"speedup_ms"` // Removed from the interval on every descent
}

// PathsConfig defines where persistent data lives.
type PathsConfig struct {
	HighScore string `yaml:"high_score"`
	History   string `yaml:"history"` // Empty disables run history
}

// SoundConfig defines audio settings.
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // Directory searched for <name>.wav files
}

// DefaultInvadersConfig returns the built-in configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Input: InputConfig{
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Fire:  []string{" ", "enter", "k", "w"},
			Quit:  []string{"esc", "q", "ctrl+c"},
			Pause: []string{"p"},
		},
		Timing: TimingConfig{
			IdleIntervalMs:   16,
			ActiveIntervalMs: 1,
		},
		Rules: RulesConfig{
			PointsPerHit: 50,
			MaxShots:     2,
			StartOnMove:  true,
		},
		Formation: FormationConfig{
			InitialIntervalMs: 2000,
			MinIntervalMs:     250,
			SpeedupMs:         250,
		},
		Paths: PathsConfig{
			HighScore: "high_score.txt",
			History:   "~/.invaders/runs.db",
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     "sound",
		},
	}
}

// Normalize replaces missing or invalid values with defaults.
func (c *InvadersConfig) Normalize() {
	d := DefaultInvadersConfig()

	if len(c.Input.Left) == 0 {
		c.Input.Left = d.Input.Left
	}
	if len(c.Input.Right) == 0 {
		c.Input.Right = d.Input.Right
	}
	if len(c.Input.Fire) == 0 {
		c.Input.Fire = d.Input.Fire
	}
	if len(c.Input.Quit) == 0 {
		c.Input.Quit = d.Input.Quit
	}
	if len(c.Input.Pause) == 0 {
		c.Input.Pause = d.Input.Pause
	}

	if c.Timing.IdleIntervalMs <= 0 {
		c.Timing.IdleIntervalMs = d.Timing.IdleIntervalMs
	}
	if c.Timing.ActiveIntervalMs < 0 {
		c.Timing.ActiveIntervalMs = d.Timing.ActiveIntervalMs
	}

	if c.Rules.PointsPerHit <= 0 {
		c.Rules.PointsPerHit = d.Rules.PointsPerHit
	}
	if c.Rules.MaxShots <= 0 {
		c.Rules.MaxShots = d.Rules.MaxShots
	}

	if c.Formation.InitialIntervalMs <= 0 {
		c.Formation.InitialIntervalMs = d.Formation.InitialIntervalMs
	}
	if c.Formation.MinIntervalMs <= 0 {
		c.Formation.MinIntervalMs = d.Formation.MinIntervalMs
	}
	if c.Formation.MinIntervalMs > c.Formation.InitialIntervalMs {
		c.Formation.MinIntervalMs = c.Formation.InitialIntervalMs
	}
	if c.Formation.SpeedupMs < 0 {
		c.Formation.SpeedupMs = 0
	}

	if c.Paths.HighScore == "" {
		c.Paths.HighScore = d.Paths.HighScore
	}
}
