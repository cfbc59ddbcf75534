package system

import (
	"glyphsim/internal/component"
	"glyphsim/internal/ecs"
)

const SMovement ecs.SystemType = 1

// Movement integrates position by velocity for every owned entity holding
// both components. Entities missing either are skipped.
type Movement struct {
	ecs.BaseSystem
}

func (*Movement) Type() ecs.SystemType { return SMovement }

func (s *Movement) Tick(delta float64) {
	for _, e := range s.Entities() {
		pos, okPos := ecs.Get[*component.Position](e)
		vel, okVel := ecs.Get[*component.Velocity](e)
		if !okPos || !okVel {
			continue
		}
		pos.X += vel.DX * delta
		pos.Y += vel.DY * delta
	}
}
