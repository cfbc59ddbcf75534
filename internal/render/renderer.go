package render

import (
	"fmt"
	"math"
	"sort"

	"glyphsim/internal/component"
	"glyphsim/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// EntitySource is the narrow view of a system the renderer needs. Every
// system satisfies it through its embedded registry; the renderer never
// touches lifecycle or system state.
type EntitySource interface {
	Entities() map[ecs.EntityID]*ecs.Entity
	Len() int
}

// Renderer draws the simulation grid onto a tcell screen: a field of floor
// dots, entities by glyph, and a HUD line underneath.
type Renderer struct {
	screen tcell.Screen
	width  int // grid width in cells
	height int // grid height in cells
}

// New creates a Renderer for a width×height world grid.
func New(screen tcell.Screen, width, height int) *Renderer {
	return &Renderer{
		screen: screen,
		width:  width,
		height: height,
	}
}

// DrawFrame renders one frame: floor, entities from every source, HUD.
func (r *Renderer) DrawFrame(tick uint64, delta float64, sources ...EntitySource) {
	r.screen.Clear()
	r.drawFloor()
	r.drawEntities(sources)
	r.drawHUD(tick, delta, sources)
	r.screen.Show()
}

func (r *Renderer) drawFloor() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, '.', nil, style)
		}
	}
}

// drawCandidate holds sorting info for one visible entity.
type drawCandidate struct {
	x, y  int
	order int
	glyph string
	color tcell.Color
}

// drawEntities renders every visible entity holding Position + Renderable,
// lowest RenderOrder first (drawn behind).
func (r *Renderer) drawEntities(sources []EntitySource) {
	var candidates []drawCandidate
	for _, src := range sources {
		for _, e := range src.Entities() {
			pos, okPos := ecs.Get[*component.Position](e)
			rend, okRend := ecs.Get[*component.Renderable](e)
			if !okPos || !okRend || !rend.Visible {
				continue
			}
			x := int(math.Round(pos.X))
			y := int(math.Round(pos.Y))
			if x < 0 || x >= r.width || y < 0 || y >= r.height {
				continue
			}
			candidates = append(candidates, drawCandidate{
				x: x, y: y,
				order: rend.RenderOrder,
				glyph: rend.Glyph,
				color: rend.FGColor,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].order < candidates[j].order
	})

	for _, c := range candidates {
		style := tcell.StyleDefault.Foreground(c.color)
		r.putGlyph(c.x, c.y, c.glyph, style)
	}
}

// drawHUD writes tick/delta/population stats on the line below the grid.
func (r *Renderer) drawHUD(tick uint64, delta float64, sources []EntitySource) {
	total := 0
	for _, src := range sources {
		total += src.Len()
	}
	text := fmt.Sprintf("tick %d  delta %5.1fms  entities %d  [q to quit]",
		tick, delta*1000, total)
	r.putText(0, r.height, text, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

// putText writes a plain string starting at (x, y).
func (r *Renderer) putText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
