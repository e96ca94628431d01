package config

import "math"

// DifficultyManager scales speed and turn budget with progress through a pack.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty grows as levels are cleared.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "levels"
}

// Level returns the difficulty level (0.0 to 1.0) after cleared levels.
func (d *DifficultyManager) Level(cleared int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(cleared)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval returns the time between rocket steps in milliseconds.
func (d *DifficultyManager) MoveInterval(baseMs int, cleared int) int {
	level := d.Level(cleared)
	ms := int(math.Round(float64(baseMs) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
	if ms < 10 {
		ms = 10
	}
	return ms
}

// Turns returns the turn budget for the next level.
func (d *DifficultyManager) Turns(base int, cleared int) int {
	level := d.Level(cleared)
	result := base - int(level*float64(d.cfg.Scaling.TurnReduction))
	if result < 1 {
		result = 1
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
