package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/butterfly-effect/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	playing := core.GameState{}
	over := core.GameState{GameOver: true}
	won := core.GameState{Won: true}

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		state    core.GameState
		want     core.Action
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, playing, core.ActionLeft, false},
		{"a", runeKey("a"), playing, core.ActionLeft, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, playing, core.ActionUp, false},
		{"w", runeKey("w"), playing, core.ActionUp, false},
		{"d", runeKey("d"), playing, core.ActionRight, false},
		{"s", runeKey("s"), playing, core.ActionDown, false},
		{"reset while playing", runeKey("r"), playing, core.ActionReset, false},
		{"restart after game over", runeKey("r"), over, core.ActionRestart, false},
		{"restart after win", runeKey("r"), won, core.ActionRestart, false},
		{"pause", runeKey("p"), playing, core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, playing, core.ActionBack, false},
		{"q", runeKey("q"), playing, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, playing, core.ActionQuit, true},
		{"unbound", runeKey("z"), playing, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg, tt.state)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey() = (%v, %v), want (%v, %v)", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("a"), core.GameState{}, &frame) {
		t.Fatal("a should not quit")
	}
	if km.MapKeyToFrame(runeKey("w"), core.GameState{}, &frame) {
		t.Fatal("w should not quit")
	}
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionUp) {
		t.Errorf("frame = %v, want left and up held", frame.Actions)
	}
	if !km.MapKeyToFrame(runeKey("q"), core.GameState{}, &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
