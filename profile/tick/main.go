// Profiling:
// go build ./profile/tick
// go tool pprof -http=":8000" ./tick cpu.pprof

package main

import (
	"glyphsim/internal/component"
	"glyphsim/internal/ecs"
	"glyphsim/internal/system"

	"github.com/pkg/profile"
)

func main() {
	entities := 10000
	ticks := 5000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(entities, ticks)
	p.Stop()
}

func run(numEntities, ticks int) {
	w := ecs.NewWorld()
	mv := &system.Movement{}
	fx := &system.Effects{}
	w.AddSystem(mv)
	w.AddSystem(fx)
	if err := w.Init(); err != nil {
		panic(err)
	}
	defer w.Shutdown()

	for i := 0; i < numEntities; i++ {
		e := mv.AddEntity()
		e.Add(&component.Position{X: float64(i % 80), Y: float64(i % 20)})
		e.Add(&component.Velocity{DX: 1, DY: 0.5})

		s := fx.AddEntity()
		s.Add(&component.Lifetime{Duration: float64(i%10) + 1, AutoRemove: true})
	}

	const delta = 1.0 / 60
	for i := 0; i < ticks; i++ {
		w.Tick(delta)
	}
}
