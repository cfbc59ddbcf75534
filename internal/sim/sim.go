package sim

import (
	"fmt"
	"math/rand"
	"time"

	"glyphsim/internal/component"
	"glyphsim/internal/config"
	"glyphsim/internal/ecs"
	"glyphsim/internal/render"
	"glyphsim/internal/system"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Sim is the top-level orchestrator: it owns the World, registers the demo
// systems, spawns the population, and drives the frame loop.
type Sim struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	log      *zap.Logger
	cfg      config.SimConfig
	rng      *rand.Rand

	movement *system.Movement
	hunters  *system.Hunters
	vitality *system.Vitality
	effects  *system.Effects

	marcher    ecs.EntityID
	marchTimer float64
	marchStep  int
	tick       uint64
}

// New builds a simulation on the given screen: world assembled, systems
// initialized, population spawned. The screen must already be initialized.
func New(screen tcell.Screen, cfg config.SimConfig, log *zap.Logger) (*Sim, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Sim{
		screen:   screen,
		world:    ecs.NewWorld(),
		log:      log,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		movement: &system.Movement{},
		hunters:  system.NewHunters(log),
		vitality: system.NewVitality(log),
		effects:  &system.Effects{},
	}

	for _, sys := range []ecs.System{s.movement, s.hunters, s.vitality, s.effects} {
		if !s.world.AddSystem(sys) {
			return nil, fmt.Errorf("register system %T: duplicate type", sys)
		}
	}
	if err := s.world.Init(); err != nil {
		return nil, fmt.Errorf("init world: %w", err)
	}

	s.renderer = render.New(screen, cfg.Width, cfg.Height)
	s.spawnPopulation()

	log.Info("simulation ready",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int64("seed", seed))
	return s, nil
}

// Run drives the frame loop until the user quits or the screen closes.
// Wall-clock deltas are measured here and passed verbatim to World.Tick.
func (s *Sim) Run() error {
	defer s.world.Shutdown()

	// Async input reader, the screen's PollEvent returns nil once closed.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(s.cfg.TickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					s.log.Info("quit requested", zap.Uint64("tick", s.tick))
					return nil
				}
			}
		case <-ticker.C:
			now := time.Now()
			delta := now.Sub(last).Seconds()
			last = now
			s.step(delta)
		}
	}
}

// step advances the simulation one frame and redraws.
func (s *Sim) step(delta float64) {
	s.tick++
	s.steerMarcher(delta)
	s.replenishSparks()
	s.world.Tick(delta)
	s.renderer.DrawFrame(s.tick, delta, s.movement, s.hunters, s.vitality, s.effects)
}

// steerMarcher rotates the marcher through right/down/left/up every two
// seconds, standing in for player input.
func (s *Sim) steerMarcher(delta float64) {
	e := s.movement.GetEntity(s.marcher)
	if e == nil {
		return
	}
	vel, ok := ecs.Get[*component.Velocity](e)
	if !ok {
		return
	}

	s.marchTimer += delta
	if s.marchTimer < 2.0 {
		return
	}
	s.marchTimer = 0
	s.marchStep = (s.marchStep + 1) % 4

	const speed = 8.0
	switch s.marchStep {
	case 0:
		vel.DX, vel.DY = speed, 0
	case 1:
		vel.DX, vel.DY = 0, speed
	case 2:
		vel.DX, vel.DY = -speed, 0
	case 3:
		vel.DX, vel.DY = 0, -speed
	}
}

// replenishSparks keeps the spark population topped up so the effects
// system always has something to expire.
func (s *Sim) replenishSparks() {
	if s.effects.Len() >= s.cfg.Sparks {
		return
	}
	// Roughly one respawn per second at 60 fps.
	if s.rng.Intn(60) == 0 {
		s.spawnSpark()
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	}
	return false
}
