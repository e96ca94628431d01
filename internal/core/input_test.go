package core

import (
	"slices"
	"testing"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionRight)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Error("set actions should be held")
	}
	if f.Has(ActionUp) || f.Has(ActionNone) {
		t.Error("unset actions should not be held")
	}
	if got := f.Held(); !slices.Equal(got, []Action{ActionLeft, ActionRight}) {
		t.Errorf("Held() = %v", got)
	}

	clone := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should release everything")
	}
	if !clone.Has(ActionLeft) {
		t.Error("a copied frame should not follow Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionReset, "Reset"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(200), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
