package render

import (
	"testing"

	"glyphsim/internal/component"
	"glyphsim/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized 100×30 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(100, 30)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	return ss
}

// cellRune returns the primary rune drawn at (x, y).
func cellRune(ss tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := ss.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func TestDrawFramePlacesEntities(t *testing.T) {
	ss := newSimScreen(t)
	r := New(ss, 80, 20)

	var src ecs.BaseSystem
	e := src.AddEntity()
	e.Add(&component.Position{X: 12, Y: 7})
	e.Add(&component.Renderable{Glyph: "@", FGColor: tcell.ColorBlue, Visible: true})

	r.DrawFrame(1, 0.016, &src)

	if got := cellRune(ss, 12, 7); got != '@' {
		t.Fatalf("cell (12,7) = %q, want '@'", got)
	}
	// Unoccupied cells show the floor.
	if got := cellRune(ss, 0, 0); got != '.' {
		t.Fatalf("cell (0,0) = %q, want '.'", got)
	}
}

func TestDrawFrameSkipsInvisibleAndOffGrid(t *testing.T) {
	ss := newSimScreen(t)
	r := New(ss, 80, 20)

	var src ecs.BaseSystem
	hidden := src.AddEntity()
	hidden.Add(&component.Position{X: 5, Y: 5})
	hidden.Add(&component.Renderable{Glyph: "h", Visible: false})

	outside := src.AddEntity()
	outside.Add(&component.Position{X: 500, Y: 5})
	outside.Add(&component.Renderable{Glyph: "o", Visible: true})

	r.DrawFrame(1, 0.016, &src)

	if got := cellRune(ss, 5, 5); got != '.' {
		t.Fatalf("invisible entity drawn: cell (5,5) = %q", got)
	}
}

func TestDrawFrameRenderOrder(t *testing.T) {
	ss := newSimScreen(t)
	r := New(ss, 80, 20)

	var src ecs.BaseSystem
	under := src.AddEntity()
	under.Add(&component.Position{X: 3, Y: 3})
	under.Add(&component.Renderable{Glyph: "u", RenderOrder: 0, Visible: true})

	over := src.AddEntity()
	over.Add(&component.Position{X: 3, Y: 3})
	over.Add(&component.Renderable{Glyph: "o", RenderOrder: 1, Visible: true})

	r.DrawFrame(1, 0.016, &src)

	if got := cellRune(ss, 3, 3); got != 'o' {
		t.Fatalf("cell (3,3) = %q, want the higher render order on top", got)
	}
}
