// Package levels provides level packs for Butterfly Effect.
// This package depends on core but core does not depend on levels.
package levels

import (
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

// Level is a single board layout.
type Level struct {
	ID   string
	Name string
	// Rows is the layout text, top row first.
	Rows []string
	// MaxTurns overrides the configured turn budget when positive.
	MaxTurns int
	FilePath string
}

// ToGrid builds a bordered grid of the given size holding the layout.
func (l *Level) ToGrid(width, height int) *core.Grid {
	return core.ParseLayout(width, height, l.Rows)
}

// Turns returns the budget for this level given the configured default.
func (l *Level) Turns(fallback int) int {
	if l.MaxTurns > 0 {
		return l.MaxTurns
	}
	return fallback
}

// Pack is an ordered set of levels played as one run.
type Pack struct {
	ID     string
	Name   string
	Levels []Level
	Source string
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Levels)
}

// Level returns the level at index i.
func (p Pack) Level(i int) (Level, bool) {
	if i < 0 || i >= len(p.Levels) {
		return Level{}, false
	}
	return p.Levels[i], true
}
