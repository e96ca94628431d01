package core_test

import (
	"testing"

	"github.com/vovakirdan/butterfly-effect/internal/games/butterfly/core"
)

func TestTokenReset(t *testing.T) {
	tok := core.NewToken(core.C(1, 1), 10)
	tok.ApplyIntent(core.DirRight)
	tok.Advance(core.NewBorderedGrid(5, 5))

	tok.Reset(core.C(1, 1), 10)

	if tok.Pos != core.C(1, 1) || tok.Dir != core.DirNeutral || tok.TurnsLeft != 10 {
		t.Errorf("unexpected token after reset: %+v", tok)
	}
	if len(tok.History) != 1 || tok.History[0] != core.C(1, 1) {
		t.Errorf("history should hold only the start, got %v", tok.History)
	}
}

func TestApplyIntent(t *testing.T) {
	tests := []struct {
		name      string
		current   core.Dir
		requested core.Dir
		turns     int
		wantDir   core.Dir
		wantTurns int
		changed   bool
	}{
		{"launch from rest", core.DirNeutral, core.DirUp, 10, core.DirUp, 9, true},
		{"neutral keeps direction", core.DirLeft, core.DirNeutral, 5, core.DirLeft, 5, false},
		{"same direction is free", core.DirLeft, core.DirLeft, 5, core.DirLeft, 5, false},
		{"reversal refused", core.DirLeft, core.DirRight, 5, core.DirLeft, 5, false},
		{"perpendicular turn", core.DirLeft, core.DirDown, 5, core.DirDown, 4, true},
		{"no budget", core.DirUp, core.DirLeft, 0, core.DirUp, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &core.Token{Dir: tt.current, TurnsLeft: tt.turns}
			if got := tok.ApplyIntent(tt.requested); got != tt.changed {
				t.Errorf("ApplyIntent returned %v, want %v", got, tt.changed)
			}
			if tok.Dir != tt.wantDir {
				t.Errorf("Dir = %v, want %v", tok.Dir, tt.wantDir)
			}
			if tok.TurnsLeft != tt.wantTurns {
				t.Errorf("TurnsLeft = %d, want %d", tok.TurnsLeft, tt.wantTurns)
			}
		})
	}
}

// One turn left, two requests: only the first lands.
func TestBudgetExhaustion(t *testing.T) {
	tok := core.NewToken(core.C(1, 1), 1)

	if !tok.ApplyIntent(core.DirRight) {
		t.Fatal("first change should apply")
	}
	if tok.TurnsLeft != 0 || tok.CanTurn() {
		t.Fatalf("budget should be spent, got %d", tok.TurnsLeft)
	}
	if tok.ApplyIntent(core.DirUp) {
		t.Error("second change should be rejected")
	}
	if tok.Dir != core.DirRight || tok.TurnsLeft != 0 {
		t.Errorf("token changed after rejection: %+v", tok)
	}
}

func TestBudgetNeverIncreases(t *testing.T) {
	tok := core.NewToken(core.C(1, 1), 3)
	g := core.NewBorderedGrid(8, 8)
	prev := tok.TurnsLeft
	seq := []core.Dir{
		core.DirRight, core.DirRight, core.DirLeft, core.DirUp, core.DirNeutral,
		core.DirLeft, core.DirDown, core.DirRight, core.DirUp, core.DirLeft,
	}
	for _, d := range seq {
		tok.ApplyIntent(d)
		tok.Advance(g)
		if tok.TurnsLeft > prev || tok.TurnsLeft < 0 {
			t.Fatalf("budget went from %d to %d", prev, tok.TurnsLeft)
		}
		prev = tok.TurnsLeft
	}
}

func TestAdvance(t *testing.T) {
	g := core.NewBorderedGrid(5, 5)
	g.AddWall(core.C(3, 1))
	tok := core.NewToken(core.C(1, 1), 10)

	if tok.Advance(g) {
		t.Error("a stationary token must not move")
	}

	tok.ApplyIntent(core.DirRight)
	if !tok.Advance(g) || tok.Pos != core.C(2, 1) {
		t.Fatalf("expected move to (2,1), at %v", tok.Pos)
	}
	if tok.Advance(g) {
		t.Error("moving into a wall should be a no-op")
	}
	if tok.Pos != core.C(2, 1) {
		t.Errorf("token moved into a wall: %v", tok.Pos)
	}
	want := []core.Cell{core.C(1, 1), core.C(2, 1)}
	if len(tok.History) != len(want) {
		t.Fatalf("history = %v, want %v", tok.History, want)
	}
}

func TestAdvanceClampsAtEdge(t *testing.T) {
	g := core.NewGrid(3, 3)
	tok := core.NewToken(core.C(0, 1), 10)
	tok.ApplyIntent(core.DirLeft)

	if tok.Advance(g) {
		t.Error("clamped move should be a no-op")
	}
	if tok.Pos != core.C(0, 1) || len(tok.History) != 1 {
		t.Errorf("token should stay put, got %v history %v", tok.Pos, tok.History)
	}
}

func TestTokenNeverOnWall(t *testing.T) {
	g := core.ParseLayout(8, 8, []string{
		"      ",
		" WW W ",
		"   W  ",
		" W    ",
		"   W  ",
		"      ",
	})
	tok := core.NewToken(core.C(1, 1), 10)
	var trail core.Trail
	seq := []core.Dir{core.DirRight, core.DirUp, core.DirLeft, core.DirUp, core.DirRight, core.DirDown}
	for _, d := range seq {
		tok.ApplyIntent(d)
		for i := 0; i < 8; i++ {
			tok.Advance(g)
			trail.MaybeDeposit(g, tok.History)
			if g.IsWall(tok.Pos) {
				t.Fatalf("token sits on a wall at %v", tok.Pos)
			}
		}
	}
}

func TestDirectionFromHeld(t *testing.T) {
	tests := []struct {
		name    string
		held    core.HeldKeys
		current core.Dir
		want    core.Dir
	}{
		{"nothing held", core.HeldKeys{}, core.DirUp, core.DirUp},
		{"single key", core.HeldKeys{Right: true}, core.DirUp, core.DirRight},
		{"left beats down", core.HeldKeys{Left: true, Down: true}, core.DirUp, core.DirLeft},
		{"down beats up", core.HeldKeys{Up: true, Down: true}, core.DirLeft, core.DirDown},
		{"up beats right", core.HeldKeys{Up: true, Right: true}, core.DirNeutral, core.DirUp},
		{"all held", core.HeldKeys{Left: true, Up: true, Right: true, Down: true}, core.DirNeutral, core.DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.DirectionFromHeld(tt.held, core.DefaultPriority, tt.current); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionFromHeldCustomPriority(t *testing.T) {
	held := core.HeldKeys{Left: true, Right: true}
	prio := []core.Dir{core.DirRight, core.DirLeft}
	if got := core.DirectionFromHeld(held, prio, core.DirNeutral); got != core.DirRight {
		t.Errorf("got %v, want right", got)
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []core.Dir{core.DirNeutral, core.DirLeft, core.DirUp, core.DirRight, core.DirDown} {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) != %v", d, d)
		}
	}
	if core.DirNeutral.Opposite() != core.DirNeutral {
		t.Error("neutral should be its own opposite")
	}
}

func TestParseDir(t *testing.T) {
	for _, d := range []core.Dir{core.DirLeft, core.DirUp, core.DirRight, core.DirDown} {
		got, err := core.ParseDir(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDir(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := core.ParseDir("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
