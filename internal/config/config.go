// Package config provides YAML-based game configuration loading and
// difficulty management for Butterfly Effect.
package config

import "fmt"

// ButterflyConfig contains all configuration for the game.
type ButterflyConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Rules      RulesConfig      `yaml:"rules"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the board size and where the rocket starts.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// RulesConfig defines the turn budget and level progression.
type RulesConfig struct {
	MaxTurns       int `yaml:"max_turns"`
	GoalThreshold  int `yaml:"goal_threshold"`   // level advances once goals reached exceed this
	MoveIntervalMs int `yaml:"move_interval_ms"` // time between rocket steps
}

// InputConfig defines how simultaneously held keys are resolved.
type InputConfig struct {
	Priority []string `yaml:"priority"` // e.g. [left, down, up, right]
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels" or "none"
	MaxAt int    `yaml:"max_at"` // levels cleared at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra speed at max difficulty
	TurnReduction   int     `yaml:"turn_reduction"`   // turns removed at max difficulty
}

// Validate checks that the config describes a playable board.
func (c ButterflyConfig) Validate() error {
	if c.Arena.Width < 3 || c.Arena.Height < 3 {
		return fmt.Errorf("arena %dx%d is too small", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.StartX < 1 || c.Arena.StartX > c.Arena.Width-2 ||
		c.Arena.StartY < 1 || c.Arena.StartY > c.Arena.Height-2 {
		return fmt.Errorf("start (%d,%d) is outside the arena interior", c.Arena.StartX, c.Arena.StartY)
	}
	if c.Rules.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d", c.Rules.MaxTurns)
	}
	if c.Rules.GoalThreshold < 0 {
		return fmt.Errorf("goal_threshold must not be negative, got %d", c.Rules.GoalThreshold)
	}
	if c.Rules.MoveIntervalMs < 1 {
		return fmt.Errorf("move_interval_ms must be positive, got %d", c.Rules.MoveIntervalMs)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
