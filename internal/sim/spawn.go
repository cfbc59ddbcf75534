package sim

import (
	"fmt"

	"glyphsim/internal/component"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// spawnPopulation fills the world with the demo cast. Entities are
// distributed across the systems that process them; systems never share.
func (s *Sim) spawnPopulation() {
	s.spawnMarcher()
	for i := 0; i < s.cfg.Drones; i++ {
		s.spawnDrone(i)
	}
	s.spawnHunt()
	for i := 0; i < s.cfg.Wisps; i++ {
		s.spawnWisp(i)
	}
	for i := 0; i < s.cfg.Sparks; i++ {
		s.spawnSpark()
	}

	s.log.Info("population spawned",
		zap.Int("movement", s.movement.Len()),
		zap.Int("hunters", s.hunters.Len()),
		zap.Int("vitality", s.vitality.Len()),
		zap.Int("effects", s.effects.Len()))
}

// spawnMarcher creates the input-steered '@' at the grid center.
func (s *Sim) spawnMarcher() {
	e := s.movement.AddEntity()
	e.Add(&component.Label{Name: "marcher"})
	e.Add(&component.Position{X: float64(s.cfg.Width) / 2, Y: float64(s.cfg.Height) / 2})
	e.Add(&component.Velocity{DX: 8, DY: 0})
	e.Add(&component.Health{Current: 150, Max: 150})
	e.Add(&component.Renderable{Glyph: "@", FGColor: tcell.ColorBlue, RenderOrder: 10, Visible: true})
	s.marcher = e.ID()
}

// spawnDrone creates a slow wanderer in the movement system.
func (s *Sim) spawnDrone(i int) {
	e := s.movement.AddEntity()
	e.Add(&component.Label{Name: fmt.Sprintf("drone-%d", i+1)})
	e.Add(&component.Position{X: s.randX(), Y: s.randY()})
	e.Add(&component.Velocity{DX: 2, DY: 1})
	e.Add(&component.Health{Current: 50, Max: 50})
	e.Add(&component.Renderable{Glyph: "n", FGColor: tcell.ColorGreen, RenderOrder: 5, Visible: true})
}

// spawnHunt populates the hunter system: one prey plus the configured
// number of hunters patrolling near their spawn point.
func (s *Sim) spawnHunt() {
	prey := s.hunters.AddEntity()
	prey.Add(&component.Label{Name: "prey"})
	prey.Add(&component.Position{X: s.randX(), Y: s.randY()})
	prey.Add(&component.Velocity{DX: 1.5, DY: 0.8})
	prey.Add(&component.Health{Current: 80, Max: 80})
	prey.Add(&component.Renderable{Glyph: "p", FGColor: tcell.ColorYellow, RenderOrder: 5, Visible: true})

	for i := 0; i < s.cfg.Hunters; i++ {
		x, y := s.randX(), s.randY()
		e := s.hunters.AddEntity()
		e.Add(&component.Label{Name: fmt.Sprintf("hunter-%d", i+1)})
		e.Add(&component.Position{X: x, Y: y})
		e.Add(&component.Velocity{})
		e.Add(&component.Health{Current: 80, Max: 80})
		e.Add(&component.Renderable{Glyph: "H", FGColor: tcell.ColorRed, RenderOrder: 6, Visible: true})
		e.Add(&component.Hunter{
			State:          component.HunterPatrol,
			Target:         prey.ID(),
			DetectionRange: 10,
			Patrol: []component.Waypoint{
				{X: x - 5, Y: y},
				{X: x + 5, Y: y},
				{X: x, Y: y - 3},
				{X: x, Y: y + 3},
			},
		})
	}
}

// spawnWisp creates a static fading creature owned by the vitality system.
func (s *Sim) spawnWisp(i int) {
	e := s.vitality.AddEntity()
	e.Add(&component.Label{Name: fmt.Sprintf("wisp-%d", i+1)})
	e.Add(&component.Position{X: s.randX(), Y: s.randY()})
	e.Add(&component.Health{Current: 20, Max: 20, Decay: 2})
	e.Add(&component.Renderable{Glyph: "w", FGColor: tcell.ColorPurple, RenderOrder: 4, Visible: true})
}

// spawnSpark creates a transient '*' that the effects system removes
// after three seconds.
func (s *Sim) spawnSpark() {
	e := s.effects.AddEntity()
	e.Add(&component.Label{Name: "spark"})
	e.Add(&component.Position{X: s.randX(), Y: s.randY()})
	e.Add(&component.Lifetime{Duration: 3, AutoRemove: true})
	e.Add(&component.Renderable{Glyph: "*", FGColor: tcell.ColorYellow, RenderOrder: 1, Visible: true})
}

func (s *Sim) randX() float64 { return s.rng.Float64() * float64(s.cfg.Width) }
func (s *Sim) randY() float64 { return s.rng.Float64() * float64(s.cfg.Height) }
