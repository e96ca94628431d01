package butterfly

import (
	platformcore "github.com/vovakirdan/butterfly-effect/internal/core"
	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

// runStages executes one tick. Every stage sees the results of the stages
// before it; events raised in the tick are consumed in the same tick.
func (g *Game) runStages(in platformcore.InputFrame) {
	g.stageInput(in)
	if g.stageMove() {
		g.stageTrail()
		g.stageGoal()
	}
	g.stageTarget()
	g.stageReset(in)
	g.stageLevelAdvance()
	g.stagePathCheck()
	g.stageGameOver()
}

func (g *Game) stageInput(in platformcore.InputFrame) {
	if !g.token.CanTurn() {
		return
	}
	want := core.DirectionFromHeld(heldKeys(in), g.priority, g.token.Dir)
	if g.token.ApplyIntent(want) {
		g.events.Push(core.Event{Kind: core.EventTurned, Dir: want, Cell: g.token.Pos, Level: g.levelIndex})
	}
}

func (g *Game) stageMove() bool {
	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return false
	}
	g.moveTicker = 0
	return g.token.Advance(g.grid)
}

func (g *Game) stageTrail() {
	if c, ok := g.trail.MaybeDeposit(g.grid, g.token.History); ok {
		g.events.Push(core.Event{Kind: core.EventTrailDeposited, Cell: c, Level: g.levelIndex})
	}
}

func (g *Game) stageGoal() {
	if g.grid.IsGoal(g.token.Pos) {
		g.events.Push(core.Event{Kind: core.EventTargetReached, Cell: g.token.Pos, Level: g.levelIndex})
	}
}

// stageTarget counts a reached goal and sends the rocket back to the start.
// The attempt's trail walls become part of the level.
func (g *Game) stageTarget() {
	if _, ok := g.events.Take(core.EventTargetReached); !ok {
		return
	}
	g.trail.Commit(g.grid)
	g.goalsReached++
	g.totalGoals++
	g.token.Reset(g.start, g.maxTurns)

	if g.goalsReached > g.cfg.Rules.GoalThreshold {
		g.events.Push(core.Event{Kind: core.EventNextLevelRequested, Level: g.levelIndex})
	} else {
		g.events.Push(core.Event{Kind: core.EventPathCheckRequested, Level: g.levelIndex})
	}
}

// stageReset undoes the current attempt's trail. Walls from attempts that
// reached a goal stay. The goal counter and level are unchanged.
func (g *Game) stageReset(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionReset) {
		g.events.Push(core.Event{Kind: core.EventResetRequested, Level: g.levelIndex})
	}
	if _, ok := g.events.Take(core.EventResetRequested); !ok {
		return
	}
	g.trail.UndoAll(g.grid)
	g.token.Reset(g.start, g.maxTurns)
	g.events.Push(core.Event{Kind: core.EventPathCheckRequested, Level: g.levelIndex})
}

func (g *Game) stageLevelAdvance() {
	if !g.events.TakeAll(core.EventNextLevelRequested) {
		return
	}
	if !g.won {
		g.levelsCleared++
	}
	g.loadLevel(g.levelIndex + 1)
}

func (g *Game) stagePathCheck() {
	if !g.events.TakeAll(core.EventPathCheckRequested) {
		return
	}
	if !core.CheckSolvable(g.grid, g.start) {
		g.events.Push(core.Event{Kind: core.EventGameOver, Level: g.levelIndex})
	}
}

func (g *Game) stageGameOver() {
	if _, ok := g.events.Take(core.EventGameOver); !ok {
		return
	}
	g.loadGameOver()
}

// toPlatformEvents converts tick events for the platform's logger.
func toPlatformEvents(events []core.Event) []platformcore.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]platformcore.Event, 0, len(events))
	for _, e := range events {
		attrs := []any{"level", e.Level + 1}
		switch e.Kind {
		case core.EventTurned:
			attrs = append(attrs, "dir", e.Dir.String(), "at", e.Cell.String())
		case core.EventTrailDeposited, core.EventTargetReached:
			attrs = append(attrs, "cell", e.Cell.String())
		}
		out = append(out, platformcore.Event{Name: e.Kind.String(), Attrs: attrs})
	}
	return out
}
