package component

import (
	"glyphsim/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 4

type Renderable struct {
	ecs.Base
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int
	Visible     bool
}

func (*Renderable) Type() ecs.ComponentType { return CRenderable }
