package component

import "glyphsim/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's location in world units. Fractional values are
// kept so sub-cell movement accumulates across ticks; the renderer rounds.
type Position struct {
	ecs.Base
	X, Y float64
}

func (*Position) Type() ecs.ComponentType { return CPosition }
