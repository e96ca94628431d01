package core

// Trail turns the bends of the token's path into walls.
type Trail struct {
	// Deposited counts walls laid since the trail was created.
	Deposited int
}

// IsBend reports whether a path running prev -> mid -> last turns at mid.
func IsBend(prev, last Cell) bool {
	return prev.X != last.X && prev.Y != last.Y
}

// MaybeDeposit looks at the last three cells of history and walls the middle
// one when the path bends there. It returns the walled cell.
func (t *Trail) MaybeDeposit(g *Grid, history []Cell) (Cell, bool) {
	n := len(history)
	if n < 3 {
		return Cell{}, false
	}
	prev, mid, last := history[n-3], history[n-2], history[n-1]
	if !IsBend(prev, last) {
		return Cell{}, false
	}
	if !g.addTrailWall(mid) {
		return Cell{}, false
	}
	t.Deposited++
	return mid, true
}

// Commit makes the walls laid so far permanent: UndoAll no longer removes
// them. It returns how many walls were committed.
func (t *Trail) Commit(g *Grid) int {
	return g.commitTrailWalls()
}

// UndoAll removes the trail walls laid since the last Commit and returns them
// in the order they were laid.
func (t *Trail) UndoAll(g *Grid) []Cell {
	return g.clearTrailWalls()
}
