package levels

import (
	"fmt"

	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Report summarises a level as the board will see it.
type Report struct {
	Goals     int
	Walls     int
	Reachable int
	// Cut counts goals that no path from start can reach.
	Cut int
	// Distance is the shortest start to goal path, -1 when unreachable.
	Distance int
	Nearest  core.Cell
}

// Analyze builds the level's grid and measures it from start.
func Analyze(l Level, width, height int, start core.Cell) Report {
	g := l.ToGrid(width, height)
	r := Report{
		Goals:     g.GoalCount(),
		Walls:     len(g.StaticWalls()),
		Reachable: core.ReachableCount(g, start),
		Distance:  -1,
	}
	for _, goal := range g.Goals() {
		if !core.Reachable(g, start, goal) {
			r.Cut++
		}
	}
	if c, d, ok := core.NearestGoal(g, start); ok {
		r.Distance = d
		r.Nearest = c
	}
	return r
}

// Validate checks that a level fits the arena and can be solved from start.
// Oversized rows are not an error when playing, they are clipped, but Validate
// reports them so pack authors notice.
func Validate(l Level, width, height int, start core.Cell) error {
	if len(l.Rows) > height-2 {
		return ValidationError{
			Code:    "TOO_TALL",
			Message: fmt.Sprintf("%d rows, arena holds %d", len(l.Rows), height-2),
		}
	}
	for i, row := range l.Rows {
		if n := len([]rune(row)); n > width-2 {
			return ValidationError{
				Code:    "TOO_WIDE",
				Message: fmt.Sprintf("row %d has %d cells, arena holds %d", i+1, n, width-2),
			}
		}
	}

	g := l.ToGrid(width, height)
	if g.GoalCount() == 0 {
		return ValidationError{Code: "NO_GOALS", Message: "level has no goal"}
	}
	if !g.IsFree(start) {
		return ValidationError{
			Code:    "START_BLOCKED",
			Message: fmt.Sprintf("start %v is walled", start),
		}
	}
	if !core.CheckSolvable(g, start) {
		return ValidationError{
			Code:    "UNREACHABLE",
			Message: fmt.Sprintf("no goal is reachable from %v", start),
		}
	}
	return nil
}

// ValidatePack validates every level and returns the failures keyed by level ID.
func ValidatePack(p Pack, width, height int, start core.Cell) map[string]error {
	failed := make(map[string]error)
	for _, l := range p.Levels {
		if err := Validate(l, width, height, start); err != nil {
			failed[l.ID] = err
		}
	}
	return failed
}
