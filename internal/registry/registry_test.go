package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/site-arcade/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                     { return g.id }
func (g *stubGame) Title() string                  { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)       { g.state = core.GameState{} }
func (g *stubGame) Resize(float64, float64)        {}
func (g *stubGame) Input(core.InputEvent)          {}
func (g *stubGame) Tick(time.Time) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(core.Surface)            {}
func (g *stubGame) State() core.GameState          { return g.state }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })
	t.Cleanup(func() {
		Unregister("zz-stub")
		Unregister("aa-stub")
	})

	if !Exists("zz-stub") {
		t.Fatal("Exists(zz-stub) = false after Register")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Create() returned game %q, expected aa-stub", g.ID())
	}

	list := List()
	idxA, idxZ := -1, -1
	for i, info := range list {
		switch info.ID {
		case "aa-stub":
			idxA = i
			if info.Title != "Stub aa-stub" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub aa-stub")
			}
		case "zz-stub":
			idxZ = i
		}
	}
	if idxA < 0 || idxZ < 0 || idxA > idxZ {
		t.Errorf("List() should contain both stubs sorted by ID, got %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() of unknown game = %v, expected ErrUnknownGame", err)
	}
	if Exists("no-such-game") {
		t.Error("Exists() of unknown game should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
	t.Cleanup(func() { Unregister("dup-stub") })

	defer func() {
		if recover() == nil {
			t.Error("Register() of duplicate ID should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
