package registry

import (
	"testing"

	"github.com/vovakirdan/butterfly-effect/internal/core"
)

type stubGame struct {
	id   string
	opts Options
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }
func (s *stubGame) LevelCount() int { return 3 }

func stubFactory(id string) Factory {
	return func(opts Options) Game { return &stubGame{id: id, opts: opts} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", stubFactory("zz_stub"))

	if !Exists("zz_stub") {
		t.Fatal("registered pack should exist")
	}
	g, err := Create("zz_stub", Options{StartLevel: 2})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.(*stubGame).opts.StartLevel != 2 {
		t.Error("options not passed to factory")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" || info.Levels != 3 {
				t.Errorf("unexpected info: %+v", info)
			}
		}
	}
	if !found {
		t.Error("List should include the registered pack")
	}
}

func TestTryRegisterDuplicate(t *testing.T) {
	if err := TryRegister("zz_dup", stubFactory("zz_dup")); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := TryRegister("zz_dup", stubFactory("zz_dup")); err == nil {
		t.Error("duplicate registration should fail")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_pack", Options{}); err == nil {
		t.Error("expected error for unknown pack")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_b", stubFactory("zz_b"))
	Register("zz_a", stubFactory("zz_a"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}
