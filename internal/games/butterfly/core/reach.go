package core

// Reachable reports whether goal can be reached from start by 4-connected
// moves over free cells.
func Reachable(g *Grid, start, goal Cell) bool {
	_, ok := Distance(g, start, goal)
	return ok
}

// CheckSolvable reports whether any goal of g is reachable from start.
// A grid without goals is never solvable.
func CheckSolvable(g *Grid, start Cell) bool {
	_, _, ok := NearestGoal(g, start)
	return ok
}

// NearestGoal returns the goal closest to start and its distance in moves.
func NearestGoal(g *Grid, start Cell) (Cell, int, bool) {
	if g.GoalCount() == 0 {
		return Cell{}, 0, false
	}
	var found Cell
	d, ok := bfs(g, start, func(c Cell) bool {
		if g.IsGoal(c) {
			found = c
			return true
		}
		return false
	})
	return found, d, ok
}

// Distance returns the length of the shortest free path from from to to.
func Distance(g *Grid, from, to Cell) (int, bool) {
	return bfs(g, from, func(c Cell) bool { return c == to })
}

// ReachableCount returns how many free cells can be reached from start,
// start included.
func ReachableCount(g *Grid, start Cell) int {
	n := 0
	bfs(g, start, func(Cell) bool {
		n++
		return false
	})
	return n
}

var neighbours = [4]Dir{DirLeft, DirUp, DirRight, DirDown}

// bfs walks free cells outward from start and stops at the first cell for
// which stop returns true, reporting its distance. Each cell is visited once.
func bfs(g *Grid, start Cell, stop func(Cell) bool) (int, bool) {
	if !g.IsFree(start) {
		return 0, false
	}
	w := g.Width()
	dist := make([]int, w*g.Height())
	for i := range dist {
		dist[i] = -1
	}
	dist[start.Y*w+start.X] = 0
	queue := []Cell{start}
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		d := dist[c.Y*w+c.X]
		if stop(c) {
			return d, true
		}
		for _, dir := range neighbours {
			n := c.Step(dir)
			if !g.IsFree(n) || dist[n.Y*w+n.X] >= 0 {
				continue
			}
			dist[n.Y*w+n.X] = d + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}
