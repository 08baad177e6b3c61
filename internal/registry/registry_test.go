package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}
	if Exists("missing") {
		t.Error("missing should not be registered")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown game should fail")
	}

	// List is sorted by ID and carries titles
	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("Title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List() ids = %v, expected [stub-a stub-b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
