package component

import "glyphsim/internal/ecs"

const CLabel ecs.ComponentType = 5

// Label names an entity for the HUD and the event log.
type Label struct {
	ecs.Base
	Name string
}

func (*Label) Type() ecs.ComponentType { return CLabel }
