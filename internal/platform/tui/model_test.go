package tui

import (
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/butterfly-effect/internal/core"
	"github.com/vovakirdan/butterfly-effect/internal/platform/spectate"
	"github.com/vovakirdan/butterfly-effect/internal/storage"
)

// fakeGame finishes after finishAt steps when finishAt > 0.
type fakeGame struct {
	resets   int
	steps    int
	finishAt int
	won      bool
	state    core.GameState
	walls    int
	frozen   bool // render the same picture every step
	lastIn   core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in
	var events []core.Event
	if g.finishAt > 0 && g.steps == g.finishAt {
		if g.won {
			g.state.Won = true
		} else {
			g.state.GameOver = true
		}
		events = append(events, core.Event{Name: "game_over", Attrs: []any{"level", 0}})
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	if !g.frozen {
		dst.DrawText(0, 0, fmt.Sprintf("step %d", g.steps))
	}
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) TrailWalls() int { return g.walls }

type framesCollector struct {
	frames []spectate.Frame
}

func (c *framesCollector) Publish(f spectate.Frame) {
	c.frames = append(c.frames, f)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{Gen: m.tickGen})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelResetsGameOnCreate(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, testConfig(), ModelOptions{})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelPassesHeldKeysForOneTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), ModelOptions{})

	m, _ = press(t, m, runeKey("a"))
	m = tick(t, m)
	if !g.lastIn.Has(core.ActionLeft) {
		t.Fatal("left should be held on the tick after the key press")
	}
	tick(t, m)
	if g.lastIn.Has(core.ActionLeft) {
		t.Error("left should be released on the following tick")
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	tests := []struct {
		name string
		won  bool
		want string
	}{
		{"game over", false, storage.OutcomeGameOver},
		{"won", true, storage.OutcomeWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			g := &fakeGame{finishAt: 2, won: tt.won, walls: 5}
			m := NewModel(g, testConfig(), ModelOptions{Store: store})

			for range 5 {
				m = tick(t, m)
			}

			runs, err := store.RecentRuns(10)
			if err != nil {
				t.Fatalf("RecentRuns() error = %v", err)
			}
			if len(runs) != 1 {
				t.Fatalf("runs = %d, want 1", len(runs))
			}
			if runs[0].Outcome != tt.want || runs[0].PackID != "fake" || runs[0].TrailWalls != 5 {
				t.Errorf("run = %+v", runs[0])
			}
		})
	}
}

func TestModelQuitRecordsProgress(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewModel(g, testConfig(), ModelOptions{Store: store})
	g.state.Score = 2
	m = tick(t, m)

	m, cmd := press(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeQuit || runs[0].Goals != 2 {
		t.Errorf("runs = %+v", runs)
	}
}

func TestModelQuitWithoutProgressSavesNothing(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(&fakeGame{}, testConfig(), ModelOptions{Store: store})
	m = tick(t, m)
	press(t, m, runeKey("q"))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %d, want 0", len(runs))
	}
}

func TestModelRestartAfterFinish(t *testing.T) {
	g := &fakeGame{finishAt: 1}
	m := NewModel(g, testConfig(), ModelOptions{})
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	m, _ = press(t, m, runeKey("r"))
	m = tick(t, m)
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.State().Finished() {
		t.Error("restarted run should not be finished")
	}
}

func TestModelBack(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m := NewModel(&fakeGame{}, testConfig(), ModelOptions{Embedded: true})
	m, cmd := press(t, m, esc)
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Error("embedded model should return to the menu")
	}

	m = NewModel(&fakeGame{}, testConfig(), ModelOptions{})
	m, cmd = press(t, m, esc)
	if !m.IsQuitting() || cmd == nil {
		t.Error("standalone model should quit on back")
	}
}

func TestModelPublishesChangedFrames(t *testing.T) {
	pub := &framesCollector{}
	g := &fakeGame{}
	m := NewModel(g, testConfig(), ModelOptions{Publisher: pub, Player: "ana"})

	for range 3 {
		m = tick(t, m)
	}
	if len(pub.frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(pub.frames))
	}
	last := pub.frames[2]
	if last.Seq != 3 || last.Game != "fake" || last.Player != "ana" {
		t.Errorf("last frame = %+v", last)
	}
	if len(last.Rows) != m.screen.Height() || last.Rows[0][:6] != "step 3" {
		t.Errorf("rows = %q", last.Rows)
	}
}

func TestModelSkipsUnchangedFrames(t *testing.T) {
	pub := &framesCollector{}
	g := &fakeGame{frozen: true, finishAt: 3}
	m := NewModel(g, testConfig(), ModelOptions{Publisher: pub})

	for range 5 {
		m = tick(t, m)
	}
	// First picture, then the tick that raised game_over.
	if len(pub.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(pub.frames))
	}
	if got := pub.frames[1].Events; len(got) != 1 || got[0] != "game_over" {
		t.Errorf("events = %v", got)
	}
	if !pub.frames[1].GameOver {
		t.Error("frame should report game over")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), ModelOptions{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize reset the game: resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelClipboardDisabled(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), ModelOptions{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "clipboard not available" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelIgnoresTicksFromOtherGames(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), ModelOptions{})
	stale := NewModel(&fakeGame{}, testConfig(), ModelOptions{})

	next, cmd := m.Update(TickMsg{Gen: stale.tickGen})
	if g.steps != 0 {
		t.Errorf("steps = %d, want 0 for a foreign tick", g.steps)
	}
	if cmd != nil {
		t.Error("a foreign tick must not start a second tick chain")
	}

	tick(t, next.(Model))
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
}
