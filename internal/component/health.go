package component

import "glyphsim/internal/ecs"

const CHealth ecs.ComponentType = 3

type Health struct {
	ecs.Base
	Current, Max int
	// Decay drains Current at this rate per second; zero means stable.
	Decay float64
}

func (*Health) Type() ecs.ComponentType { return CHealth }

func (h *Health) Alive() bool { return h.Current > 0 }
