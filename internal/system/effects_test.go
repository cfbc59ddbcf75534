package system

import (
	"testing"

	"glyphsim/internal/component"
	"glyphsim/internal/ecs"
)

func TestEffectsRemovesExpiredEntities(t *testing.T) {
	fx := &Effects{}
	e := fx.AddEntity()
	id := e.ID()
	e.Add(&component.Lifetime{Duration: 0.5, AutoRemove: true})

	fx.Tick(0.3)
	if !fx.HasEntity(id) {
		t.Fatal("effect removed before its duration elapsed")
	}

	fx.Tick(0.3)
	if fx.HasEntity(id) {
		t.Fatal("expired auto-remove effect must be removed")
	}
}

func TestEffectsKeepsNonAutoRemoveEntities(t *testing.T) {
	fx := &Effects{}
	e := fx.AddEntity()
	e.Add(&component.Lifetime{Duration: 0.1})

	fx.Tick(1.0)

	if !fx.HasEntity(e.ID()) {
		t.Fatal("expired but non-auto-remove entity must stay registered")
	}
	life, _ := ecs.Get[*component.Lifetime](e)
	if !life.Expired() {
		t.Fatal("lifetime should report expired")
	}
}
