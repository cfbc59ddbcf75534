package system

import (
	"testing"

	"glyphsim/internal/component"
	"glyphsim/internal/ecs"

	"go.uber.org/zap"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	mv := &Movement{}
	if !w.AddSystem(mv) {
		t.Fatal("AddSystem failed")
	}
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	e := mv.AddEntity()
	e.Add(&component.Position{X: 10, Y: 20})
	e.Add(&component.Velocity{DX: 1, DY: 2})

	w.Tick(1.0)

	pos, _ := ecs.Get[*component.Position](e)
	if pos.X != 11 || pos.Y != 22 {
		t.Fatalf("position = (%v, %v), want (11, 22)", pos.X, pos.Y)
	}
}

func TestMovementSkipsEntitiesMissingVelocity(t *testing.T) {
	mv := &Movement{}
	e := mv.AddEntity()
	e.Add(&component.Position{X: 5, Y: 7})

	mv.Tick(1.0)

	pos, _ := ecs.Get[*component.Position](e)
	if pos.X != 5 || pos.Y != 7 {
		t.Fatalf("entity without velocity must not move, got (%v, %v)", pos.X, pos.Y)
	}
}

func TestWorldFansOutToBothSystems(t *testing.T) {
	w := ecs.NewWorld()
	mv := &Movement{}
	fx := &Effects{}
	w.AddSystem(mv)
	w.AddSystem(fx)
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	walker := mv.AddEntity()
	walker.Add(&component.Position{})
	walker.Add(&component.Velocity{DX: 1})

	spark := fx.AddEntity()
	spark.Add(&component.Lifetime{Duration: 10})

	w.Tick(0.5)

	pos, _ := ecs.Get[*component.Position](walker)
	life, _ := ecs.Get[*component.Lifetime](spark)
	if pos.X != 0.5 {
		t.Fatalf("movement tick missing: x = %v", pos.X)
	}
	if life.Elapsed != 0.5 {
		t.Fatalf("effects tick missing: elapsed = %v", life.Elapsed)
	}
}

// Shared helper: a world with every demo system registered, as the
// orchestrator builds it.
func newDemoWorld(t *testing.T) (*ecs.World, *Movement, *Hunters, *Vitality, *Effects) {
	t.Helper()
	w := ecs.NewWorld()
	mv := &Movement{}
	hs := NewHunters(zap.NewNop())
	vt := NewVitality(zap.NewNop())
	fx := &Effects{}
	for _, s := range []ecs.System{mv, hs, vt, fx} {
		if !w.AddSystem(s) {
			t.Fatalf("AddSystem(%T) failed", s)
		}
	}
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return w, mv, hs, vt, fx
}

func TestDemoWorldLifecycle(t *testing.T) {
	w, mv, _, _, _ := newDemoWorld(t)
	e := mv.AddEntity()
	e.Add(&component.Position{})
	e.Add(&component.Velocity{DX: 2})

	for i := 0; i < 4; i++ {
		w.Tick(0.25)
	}
	pos, _ := ecs.Get[*component.Position](e)
	if pos.X != 2 {
		t.Fatalf("x = %v after 1s at 2/s", pos.X)
	}

	w.Shutdown()
	if mv.Len() != 0 {
		t.Fatal("shutdown must drop all entities")
	}
}
