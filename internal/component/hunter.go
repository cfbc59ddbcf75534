package component

import "glyphsim/internal/ecs"

const CHunter ecs.ComponentType = 6

// HunterState describes what a hunter is doing this tick.
type HunterState uint8

const (
	HunterIdle   HunterState = iota
	HunterPatrol             // walk the patrol circuit
	HunterChase              // close on the target
	HunterStrike             // adjacent: drain the target's health
)

// Waypoint is one stop on a hunter's patrol circuit.
type Waypoint struct {
	X, Y float64
}

// Hunter drives the patrol/chase/strike state machine. Target refers to an
// entity in the same system; hunters never reach across systems.
type Hunter struct {
	ecs.Base
	State          HunterState
	Target         ecs.EntityID
	Patrol         []Waypoint
	PatrolIndex    int
	DetectionRange float64
}

func (*Hunter) Type() ecs.ComponentType { return CHunter }
