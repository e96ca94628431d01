package core_test

import (
	"testing"

	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

func TestBorderedGridWallsRing(t *testing.T) {
	g := core.NewBorderedGrid(5, 4)

	for x := 0; x < 5; x++ {
		if !g.IsStaticWall(core.C(x, 0)) || !g.IsStaticWall(core.C(x, 3)) {
			t.Errorf("column %d: expected top and bottom border walls", x)
		}
	}
	for y := 0; y < 4; y++ {
		if !g.IsStaticWall(core.C(0, y)) || !g.IsStaticWall(core.C(4, y)) {
			t.Errorf("row %d: expected left and right border walls", y)
		}
	}
	if got := len(g.StaticWalls()); got != 14 {
		t.Errorf("expected 14 border cells, got %d", got)
	}
	if !g.IsFree(core.C(1, 1)) || !g.IsFree(core.C(3, 2)) {
		t.Error("interior cells should be free")
	}
}

func TestGridGoalsAndWallsAreDisjoint(t *testing.T) {
	g := core.NewGrid(4, 4)

	if !g.AddGoal(core.C(2, 2)) {
		t.Fatal("AddGoal on a free cell should succeed")
	}
	if g.AddWall(core.C(2, 2)) {
		t.Error("AddWall over a goal should be refused")
	}
	if !g.AddWall(core.C(1, 2)) {
		t.Fatal("AddWall on a free cell should succeed")
	}
	if g.AddGoal(core.C(1, 2)) {
		t.Error("AddGoal over a wall should be refused")
	}
	if g.AddWall(core.C(9, 9)) || g.AddGoal(core.C(-1, 0)) {
		t.Error("writes outside the grid should be refused")
	}
}

func TestGridIsFree(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.AddWall(core.C(1, 1))
	g.AddGoal(core.C(2, 2))

	tests := []struct {
		cell core.Cell
		want bool
	}{
		{core.C(0, 0), true},
		{core.C(1, 1), false},
		{core.C(2, 2), true}, // goals are walkable
		{core.C(3, 0), false},
		{core.C(0, -1), false},
	}
	for _, tt := range tests {
		if got := g.IsFree(tt.cell); got != tt.want {
			t.Errorf("IsFree(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestGridGoalsSorted(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.AddGoal(core.C(3, 2))
	g.AddGoal(core.C(1, 2))
	g.AddGoal(core.C(4, 0))

	want := []core.Cell{core.C(4, 0), core.C(1, 2), core.C(3, 2)}
	got := g.Goals()
	if len(got) != len(want) {
		t.Fatalf("expected %d goals, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Goals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseLayoutOrientation(t *testing.T) {
	rows := []string{
		"T  ",
		" W ",
		"   ",
	}
	g := core.ParseLayout(5, 5, rows)

	// Top row of text is the highest interior row.
	if !g.IsGoal(core.C(1, 3)) {
		t.Errorf("expected goal at (1,3), goals: %v", g.Goals())
	}
	if !g.IsStaticWall(core.C(2, 2)) {
		t.Error("expected wall at (2,2)")
	}
	if !g.IsFree(core.C(1, 1)) {
		t.Error("bottom-left interior cell should be free")
	}
}

func TestParseLayoutPermissiveRows(t *testing.T) {
	rows := []string{
		"WWWWWWWWWW", // longer than the interior
		"",           // short row
		"xS?T",       // unknown glyphs are free
	}
	g := core.ParseLayout(5, 5, rows)

	for x := 1; x <= 3; x++ {
		if !g.IsStaticWall(core.C(x, 3)) {
			t.Errorf("expected wall at (%d,3)", x)
		}
	}
	if got := len(g.StaticWalls()); got != 16+3 {
		t.Errorf("overflowing glyphs must be ignored, got %d walls", got)
	}
	for x := 1; x <= 3; x++ {
		if !g.IsFree(core.C(x, 2)) {
			t.Errorf("short row should leave (%d,2) free", x)
		}
	}
	if g.GoalCount() != 0 {
		t.Errorf("goal past the interior should be ignored, got %v", g.Goals())
	}
}
