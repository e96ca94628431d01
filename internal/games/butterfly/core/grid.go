package core

import "sort"

// Grid holds the obstacle and goal layout of a level.
//
// Static walls (the border included) never change while a level is loaded.
// Trail walls are appended only by Trail. Walls laid before the last
// Trail.Commit are permanent; the rest are removed only by Trail.UndoAll or by
// building a new Grid.
type Grid struct {
	width, height int

	static   map[Cell]struct{}
	goals    map[Cell]struct{}
	trail    []Cell
	trailSet map[Cell]struct{}
	kept     int // trail[:kept] is permanent
}

// NewGrid creates an empty grid with no walls.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		static:   make(map[Cell]struct{}),
		goals:    make(map[Cell]struct{}),
		trailSet: make(map[Cell]struct{}),
	}
}

// NewBorderedGrid creates a grid whose outermost ring is static wall.
func NewBorderedGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	g.AddBorder()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Interior reports whether c lies strictly inside the border ring.
func (g *Grid) Interior(c Cell) bool {
	return c.X >= 1 && c.X < g.width-1 && c.Y >= 1 && c.Y < g.height-1
}

// AddBorder walls every cell of the outermost ring.
func (g *Grid) AddBorder() {
	for x := 0; x < g.width; x++ {
		g.AddWall(C(x, 0))
		g.AddWall(C(x, g.height-1))
	}
	for y := 1; y < g.height-1; y++ {
		g.AddWall(C(0, y))
		g.AddWall(C(g.width-1, y))
	}
}

// AddWall places a static wall. It refuses cells outside the grid and cells
// holding a goal.
func (g *Grid) AddWall(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	if _, ok := g.goals[c]; ok {
		return false
	}
	g.static[c] = struct{}{}
	return true
}

// AddGoal places a goal. It refuses cells outside the grid and walled cells.
func (g *Grid) AddGoal(c Cell) bool {
	if !g.InBounds(c) || g.IsWall(c) {
		return false
	}
	g.goals[c] = struct{}{}
	return true
}

// IsStaticWall reports whether c is a level or border wall.
func (g *Grid) IsStaticWall(c Cell) bool {
	_, ok := g.static[c]
	return ok
}

// IsTrailWall reports whether c was walled by the token's trail.
func (g *Grid) IsTrailWall(c Cell) bool {
	_, ok := g.trailSet[c]
	return ok
}

// IsWall reports whether c is any kind of wall.
func (g *Grid) IsWall(c Cell) bool {
	return g.IsStaticWall(c) || g.IsTrailWall(c)
}

// IsFree reports whether c is on the grid and not walled.
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && !g.IsWall(c)
}

// IsGoal reports whether c holds a goal.
func (g *Grid) IsGoal(c Cell) bool {
	_, ok := g.goals[c]
	return ok
}

// GoalCount returns the number of goals.
func (g *Grid) GoalCount() int {
	return len(g.goals)
}

// Goals returns all goals ordered by row then column.
func (g *Grid) Goals() []Cell {
	return sortedCells(g.goals)
}

// StaticWalls returns all static walls ordered by row then column.
func (g *Grid) StaticWalls() []Cell {
	return sortedCells(g.static)
}

// TrailWalls returns the trail walls in the order they were deposited.
func (g *Grid) TrailWalls() []Cell {
	out := make([]Cell, len(g.trail))
	copy(out, g.trail)
	return out
}

// TrailLen returns the number of trail walls.
func (g *Grid) TrailLen() int {
	return len(g.trail)
}

func (g *Grid) addTrailWall(c Cell) bool {
	if !g.IsFree(c) {
		return false
	}
	g.trail = append(g.trail, c)
	g.trailSet[c] = struct{}{}
	return true
}

// PermanentTrailLen returns how many trail walls can no longer be undone.
func (g *Grid) PermanentTrailLen() int {
	return g.kept
}

func (g *Grid) commitTrailWalls() int {
	n := len(g.trail) - g.kept
	g.kept = len(g.trail)
	return n
}

func (g *Grid) clearTrailWalls() []Cell {
	removed := append([]Cell(nil), g.trail[g.kept:]...)
	for _, c := range removed {
		delete(g.trailSet, c)
	}
	g.trail = g.trail[:g.kept]
	return removed
}

func sortedCells(set map[Cell]struct{}) []Cell {
	out := make([]Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
