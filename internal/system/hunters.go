package system

import (
	"math"

	"glyphsim/internal/component"
	"glyphsim/internal/ecs"

	"go.uber.org/zap"
)

const SHunters ecs.SystemType = 2

// Tuning for the hunter state machine.
const (
	patrolSpeed   = 5.0
	chaseSpeed    = 15.0
	strikeRange   = 2.0
	strikeDPS     = 50.0
	waypointReach = 0.5
)

// Hunters drives entities with a Hunter component through the
// patrol/chase/strike state machine. Prey entities live in this system
// too — systems never share entities, so a hunter's target id is only
// resolvable through its own registry. The system integrates velocity for
// all of its entities itself; it does not rely on a movement system
// elsewhere.
type Hunters struct {
	ecs.BaseSystem
	log *zap.Logger
	// strike damage accrues fractionally between ticks
	charge map[ecs.EntityID]float64
}

func NewHunters(log *zap.Logger) *Hunters {
	return &Hunters{log: log}
}

func (*Hunters) Type() ecs.SystemType { return SHunters }

func (s *Hunters) Init() error {
	s.charge = make(map[ecs.EntityID]float64)
	return nil
}

func (s *Hunters) Shutdown() {
	s.charge = nil
}

func (s *Hunters) Tick(delta float64) {
	if s.charge == nil {
		s.charge = make(map[ecs.EntityID]float64)
	}

	for id, e := range s.Entities() {
		h, ok := ecs.Get[*component.Hunter](e)
		if !ok {
			continue
		}
		pos, okPos := ecs.Get[*component.Position](e)
		vel, okVel := ecs.Get[*component.Velocity](e)
		if !okPos || !okVel {
			continue
		}

		switch h.State {
		case component.HunterIdle:
			s.tickIdle(h, pos, vel)
		case component.HunterPatrol:
			s.tickPatrol(h, pos, vel)
		case component.HunterChase:
			s.tickChase(h, pos, vel)
		case component.HunterStrike:
			s.tickStrike(id, h, pos, vel, delta)
		}
	}

	// Integrate after the state pass so every hunter moves on the same
	// snapshot of decisions.
	for _, e := range s.Entities() {
		pos, okPos := ecs.Get[*component.Position](e)
		vel, okVel := ecs.Get[*component.Velocity](e)
		if okPos && okVel {
			pos.X += vel.DX * delta
			pos.Y += vel.DY * delta
		}
	}
}

func (s *Hunters) tickIdle(h *component.Hunter, pos *component.Position, vel *component.Velocity) {
	vel.DX, vel.DY = 0, 0
	if s.targetInRange(h, pos) {
		h.State = component.HunterChase
		return
	}
	if len(h.Patrol) > 0 {
		h.State = component.HunterPatrol
	}
}

func (s *Hunters) tickPatrol(h *component.Hunter, pos *component.Position, vel *component.Velocity) {
	if s.targetInRange(h, pos) {
		h.State = component.HunterChase
		return
	}
	if len(h.Patrol) == 0 {
		h.State = component.HunterIdle
		return
	}
	wp := h.Patrol[h.PatrolIndex]
	dx, dy := wp.X-pos.X, wp.Y-pos.Y
	dist := math.Hypot(dx, dy)
	if dist < waypointReach {
		h.PatrolIndex = (h.PatrolIndex + 1) % len(h.Patrol)
		return
	}
	vel.DX = dx / dist * patrolSpeed
	vel.DY = dy / dist * patrolSpeed
}

func (s *Hunters) tickChase(h *component.Hunter, pos *component.Position, vel *component.Velocity) {
	tpos, ok := s.targetPosition(h)
	if !ok {
		h.State = component.HunterIdle
		vel.DX, vel.DY = 0, 0
		return
	}
	dx, dy := tpos.X-pos.X, tpos.Y-pos.Y
	dist := math.Hypot(dx, dy)
	switch {
	case dist > h.DetectionRange:
		// Lost the target.
		h.State = component.HunterPatrol
		vel.DX, vel.DY = 0, 0
	case dist < strikeRange:
		h.State = component.HunterStrike
	default:
		vel.DX = dx / dist * chaseSpeed
		vel.DY = dy / dist * chaseSpeed
	}
}

func (s *Hunters) tickStrike(id ecs.EntityID, h *component.Hunter, pos *component.Position, vel *component.Velocity, delta float64) {
	vel.DX, vel.DY = 0, 0
	target := s.GetEntity(h.Target)
	if target == nil {
		h.State = component.HunterIdle
		return
	}
	tpos, okPos := ecs.Get[*component.Position](target)
	thp, okHP := ecs.Get[*component.Health](target)
	if !okPos || !okHP {
		h.State = component.HunterIdle
		return
	}
	if math.Hypot(tpos.X-pos.X, tpos.Y-pos.Y) > strikeRange {
		h.State = component.HunterChase
		return
	}

	s.charge[id] += strikeDPS * delta
	whole := int(s.charge[id])
	if whole > 0 {
		s.charge[id] -= float64(whole)
		thp.Current -= whole
	}
	if thp.Current <= 0 {
		if s.log != nil {
			s.log.Info("prey struck down",
				zap.Uint64("hunter", uint64(id)),
				zap.Uint64("prey", uint64(h.Target)))
		}
		s.RemoveEntity(h.Target)
		h.State = component.HunterIdle
	}
}

// targetInRange reports whether the hunter's target exists in this system
// and sits within detection range.
func (s *Hunters) targetInRange(h *component.Hunter, pos *component.Position) bool {
	tpos, ok := s.targetPosition(h)
	if !ok {
		return false
	}
	return math.Hypot(tpos.X-pos.X, tpos.Y-pos.Y) <= h.DetectionRange
}

func (s *Hunters) targetPosition(h *component.Hunter) (*component.Position, bool) {
	target := s.GetEntity(h.Target)
	if target == nil {
		return nil, false
	}
	return ecs.Get[*component.Position](target)
}
