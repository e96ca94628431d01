// Package core implements the rules of Butterfly Effect: the grid, the rocket
// token, the trail of walls it leaves at every bend and the reachability check
// that decides whether a level can still be solved.
//
// This package is UI-agnostic and fully deterministic.
package core

import "fmt"

// Cell is a position on the grid. Y grows upward.
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Dir is a movement direction of the token.
type Dir uint8

const (
	DirNeutral Dir = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Delta returns the unit offset for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. Neutral is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNeutral
	}
}

func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "neutral"
	}
}

// ParseDir converts a config name into a direction.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	}
	return DirNeutral, fmt.Errorf("unknown direction %q", s)
}

// HeldKeys is the set of direction signals held during one tick.
type HeldKeys struct {
	Left, Up, Right, Down bool
}

// Has reports whether the key for d is held.
func (h HeldKeys) Has(d Dir) bool {
	switch d {
	case DirLeft:
		return h.Left
	case DirUp:
		return h.Up
	case DirRight:
		return h.Right
	case DirDown:
		return h.Down
	}
	return false
}

// Any reports whether any direction is held.
func (h HeldKeys) Any() bool {
	return h.Left || h.Up || h.Right || h.Down
}

// DefaultPriority is the order used when several directions are held at once.
var DefaultPriority = []Dir{DirLeft, DirDown, DirUp, DirRight}
