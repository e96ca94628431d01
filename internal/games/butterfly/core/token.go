package core

// Token is the rocket the player steers.
type Token struct {
	Pos       Cell
	Dir       Dir
	TurnsLeft int
	// History lists every cell occupied since the last reset, oldest first.
	History []Cell
}

// NewToken creates a token resting on start with a full turn budget.
func NewToken(start Cell, maxTurns int) *Token {
	t := &Token{}
	t.Reset(start, maxTurns)
	return t
}

// Reset puts the token back on start, stationary, with a full budget.
func (t *Token) Reset(start Cell, maxTurns int) {
	if maxTurns < 0 {
		maxTurns = 0
	}
	t.Pos = start
	t.Dir = DirNeutral
	t.TurnsLeft = maxTurns
	t.History = []Cell{start}
}

// CanTurn reports whether any direction change is left.
func (t *Token) CanTurn() bool {
	return t.TurnsLeft > 0
}

// ApplyIntent asks the token to head in requested. Neutral keeps the current
// direction and reversing is refused. A change of direction, the first launch
// included, spends one turn. It reports whether the direction changed.
func (t *Token) ApplyIntent(requested Dir) bool {
	if !t.CanTurn() {
		return false
	}
	if requested == DirNeutral || requested == t.Dir {
		return false
	}
	if t.Dir != DirNeutral && requested == t.Dir.Opposite() {
		return false
	}
	t.Dir = requested
	t.TurnsLeft--
	return true
}

// Advance moves the token one cell along its direction. The move is clamped
// to the grid and dropped when the target cell is walled. It reports whether
// the token moved.
func (t *Token) Advance(g *Grid) bool {
	if t.Dir == DirNeutral {
		return false
	}
	next := t.Pos.Step(t.Dir)
	next.X = clamp(next.X, 0, g.Width()-1)
	next.Y = clamp(next.Y, 0, g.Height()-1)
	if next == t.Pos || !g.IsFree(next) {
		return false
	}
	t.Pos = next
	t.History = append(t.History, next)
	return true
}

// DirectionFromHeld picks the direction to request this tick. When several
// keys are held the first one in priority wins. With nothing held the current
// direction is returned.
func DirectionFromHeld(held HeldKeys, priority []Dir, current Dir) Dir {
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	for _, d := range priority {
		if held.Has(d) {
			return d
		}
	}
	return current
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
