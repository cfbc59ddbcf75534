package system

import (
	"glyphsim/internal/component"
	"glyphsim/internal/ecs"

	"go.uber.org/zap"
)

const SVitality ecs.SystemType = 3

// Vitality applies per-second health decay and removes entities whose
// health reaches zero. Decay is fractional, so whole hit points are drained
// through a per-entity accumulator kept in system state.
type Vitality struct {
	ecs.BaseSystem
	log    *zap.Logger
	charge map[ecs.EntityID]float64
}

func NewVitality(log *zap.Logger) *Vitality {
	return &Vitality{log: log}
}

func (*Vitality) Type() ecs.SystemType { return SVitality }

func (s *Vitality) Init() error {
	s.charge = make(map[ecs.EntityID]float64)
	return nil
}

func (s *Vitality) Shutdown() {
	s.charge = nil
}

func (s *Vitality) Tick(delta float64) {
	if s.charge == nil {
		s.charge = make(map[ecs.EntityID]float64)
	}
	for id, e := range s.Entities() {
		hp, ok := ecs.Get[*component.Health](e)
		if !ok {
			continue
		}
		if hp.Decay > 0 {
			s.charge[id] += hp.Decay * delta
			whole := int(s.charge[id])
			if whole > 0 {
				s.charge[id] -= float64(whole)
				hp.Current -= whole
			}
		}
		if hp.Current <= 0 {
			if s.log != nil {
				s.log.Info("entity expired",
					zap.Uint64("id", uint64(id)),
					zap.String("name", labelOf(e)))
			}
			delete(s.charge, id)
			s.RemoveEntity(id)
		}
	}
}

// labelOf returns the entity's label name, or "" when unlabeled.
func labelOf(e *ecs.Entity) string {
	if l, ok := ecs.Get[*component.Label](e); ok {
		return l.Name
	}
	return ""
}
