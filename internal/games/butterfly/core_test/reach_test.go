package core_test

import (
	"testing"

	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

func TestOpenGridSolvable(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.AddGoal(core.C(2, 2))

	if !core.CheckSolvable(g, core.C(1, 1)) {
		t.Error("open grid should be solvable")
	}
	if d, ok := core.Distance(g, core.C(1, 1), core.C(2, 2)); !ok || d != 2 {
		t.Errorf("Distance = %d, %v; want 2, true", d, ok)
	}
}

func TestWallRingUnsolvable(t *testing.T) {
	g := core.ParseLayout(9, 9, []string{
		"       ",
		" WWWWW ",
		" W   W ",
		" W T W ",
		" W   W ",
		" WWWWW ",
		"       ",
	})
	if g.GoalCount() != 1 {
		t.Fatalf("expected one goal, got %v", g.Goals())
	}
	if core.CheckSolvable(g, core.C(1, 1)) {
		t.Error("goal inside a closed ring should be unreachable")
	}
}

func TestNoGoalsUnsolvable(t *testing.T) {
	g := core.NewBorderedGrid(5, 5)
	if core.CheckSolvable(g, core.C(1, 1)) {
		t.Error("grid without goals should be unsolvable")
	}
}

func TestWalledStartReachesNothing(t *testing.T) {
	g := core.NewBorderedGrid(6, 6)
	g.AddGoal(core.C(4, 4))
	var trail core.Trail
	// Bend at the start cell after returning to it.
	trail.MaybeDeposit(g, []core.Cell{core.C(1, 2), core.C(1, 1), core.C(2, 1)})

	if !g.IsTrailWall(core.C(1, 1)) {
		t.Fatal("start should be walled")
	}
	if core.CheckSolvable(g, core.C(1, 1)) {
		t.Error("walled start should reach nothing")
	}
	if n := core.ReachableCount(g, core.C(1, 1)); n != 0 {
		t.Errorf("ReachableCount = %d, want 0", n)
	}
}

func TestTrailWallCutsPath(t *testing.T) {
	g := core.ParseLayout(7, 5, []string{
		"W T ",
		"W W ",
		"    ",
	})
	if !core.CheckSolvable(g, core.C(1, 1)) {
		t.Fatal("level should start solvable")
	}
	var trail core.Trail
	// A bend at (2,1) closes the only corridor.
	trail.MaybeDeposit(g, []core.Cell{core.C(1, 1), core.C(2, 1), core.C(2, 2)})

	if core.CheckSolvable(g, core.C(1, 1)) {
		t.Error("corridor is blocked; level should be unsolvable")
	}
	trail.UndoAll(g)
	if !core.CheckSolvable(g, core.C(1, 1)) {
		t.Error("undo should restore solvability")
	}
}

func TestReachabilityIdempotent(t *testing.T) {
	g := core.ParseLayout(10, 8, []string{
		"   W  T ",
		" W W WW ",
		" W   W  ",
		" WWW W W",
		"     W  ",
	})
	first := core.CheckSolvable(g, core.C(1, 1))
	firstCount := core.ReachableCount(g, core.C(1, 1))
	for i := 0; i < 5; i++ {
		if core.CheckSolvable(g, core.C(1, 1)) != first {
			t.Fatal("CheckSolvable changed on an unchanged grid")
		}
		if core.ReachableCount(g, core.C(1, 1)) != firstCount {
			t.Fatal("ReachableCount changed on an unchanged grid")
		}
	}
}

func TestNearestGoal(t *testing.T) {
	g := core.NewBorderedGrid(8, 4)
	g.AddGoal(core.C(6, 2))
	g.AddGoal(core.C(3, 1))

	c, d, ok := core.NearestGoal(g, core.C(1, 1))
	if !ok || c != core.C(3, 1) || d != 2 {
		t.Errorf("NearestGoal = %v, %d, %v; want (3,1), 2, true", c, d, ok)
	}
}

func TestReachableCountOpenInterior(t *testing.T) {
	g := core.NewBorderedGrid(6, 5)
	if n := core.ReachableCount(g, core.C(1, 1)); n != 4*3 {
		t.Errorf("ReachableCount = %d, want 12", n)
	}
}
