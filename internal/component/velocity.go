package component

import "glyphsim/internal/ecs"

const CVelocity ecs.ComponentType = 2

// Velocity is movement in world units per second.
type Velocity struct {
	ecs.Base
	DX, DY float64
}

func (*Velocity) Type() ecs.ComponentType { return CVelocity }
