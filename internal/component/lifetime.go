package component

import "glyphsim/internal/ecs"

const CLifetime ecs.ComponentType = 7

// Lifetime tracks elapsed time against a duration, for transient effects.
type Lifetime struct {
	ecs.Base
	Elapsed    float64
	Duration   float64
	AutoRemove bool
}

func (*Lifetime) Type() ecs.ComponentType { return CLifetime }

func (l *Lifetime) Expired() bool { return l.Elapsed >= l.Duration }
