package system

import (
	"glyphsim/internal/component"
	"glyphsim/internal/ecs"
)

const SEffects ecs.SystemType = 4

// Effects advances Lifetime components and removes expired auto-remove
// entities (transient sparks and similar decorations).
type Effects struct {
	ecs.BaseSystem
}

func (*Effects) Type() ecs.SystemType { return SEffects }

func (s *Effects) Tick(delta float64) {
	for id, e := range s.Entities() {
		life, ok := ecs.Get[*component.Lifetime](e)
		if !ok {
			continue
		}
		life.Elapsed += delta
		if life.Expired() && life.AutoRemove {
			s.RemoveEntity(id)
		}
	}
}
