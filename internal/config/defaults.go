package config

import (
	_ "embed"
)

//go:embed defaults/butterfly.yaml
var defaultButterflyYAML []byte

// DefaultButterflyConfig returns the default configuration.
func DefaultButterflyConfig() ButterflyConfig {
	return ButterflyConfig{
		Arena: ArenaConfig{
			Width:  24,
			Height: 16,
			StartX: 1,
			StartY: 1,
		},
		Rules: RulesConfig{
			MaxTurns:       10,
			GoalThreshold:  2,
			MoveIntervalMs: 50,
		},
		Input: InputConfig{
			Priority: []string{"left", "down", "up", "right"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				TurnReduction:   3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "butterfly":
		return defaultButterflyYAML
	default:
		return nil
	}
}
