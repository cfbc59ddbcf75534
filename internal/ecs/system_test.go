package ecs

import "testing"

// noopSystem is the minimal concrete system used by registry tests.
type noopSystem struct {
	BaseSystem
}

func (*noopSystem) Type() SystemType   { return 1 }
func (*noopSystem) Tick(delta float64) {}

func TestAddEntityIDsAreMonotonic(t *testing.T) {
	var s noopSystem
	var prev EntityID
	for i := 0; i < 5; i++ {
		e := s.AddEntity()
		if e.ID() <= prev {
			t.Fatalf("ids must be strictly increasing: got %d after %d", e.ID(), prev)
		}
		prev = e.ID()
	}
	if prev != 5 || !s.HasEntity(1) {
		t.Fatalf("expected ids 1..5, last = %d", prev)
	}
}

func TestEntityIDsNeverReused(t *testing.T) {
	var s noopSystem
	a := s.AddEntity()
	b := s.AddEntity()
	s.RemoveEntity(a.ID())
	s.RemoveEntity(b.ID())

	c := s.AddEntity()
	if c.ID() <= b.ID() {
		t.Fatalf("id %d was reused after removal", c.ID())
	}
}

func TestGetAndHasEntity(t *testing.T) {
	var s noopSystem
	e := s.AddEntity()

	if got := s.GetEntity(e.ID()); got != e {
		t.Fatal("GetEntity returned a different instance")
	}
	if !s.HasEntity(e.ID()) {
		t.Fatal("HasEntity should report true for a registered entity")
	}
	if s.GetEntity(999) != nil || s.HasEntity(999) {
		t.Fatal("lookup of an unknown id must report absence")
	}
}

func TestRemoveEntity(t *testing.T) {
	var s noopSystem
	e := s.AddEntity()
	c := &posComp{}
	e.Add(c)

	if !s.RemoveEntity(e.ID()) {
		t.Fatal("RemoveEntity of a present id should report true")
	}
	if s.HasEntity(e.ID()) {
		t.Fatal("entity still registered after RemoveEntity")
	}
	if c.Owner() != NilEntity {
		t.Fatal("destroying an entity must release its components")
	}
	if s.RemoveEntity(e.ID()) {
		t.Fatal("second RemoveEntity should report false")
	}
}

func TestRemoveDuringEntityScan(t *testing.T) {
	var s noopSystem
	for i := 0; i < 10; i++ {
		s.AddEntity()
	}
	// Tick logic commonly removes entities while ranging the live view.
	for id := range s.Entities() {
		if id%2 == 0 {
			s.RemoveEntity(id)
		}
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 entities after scan, got %d", s.Len())
	}
}

func TestIDCountersArePerInstance(t *testing.T) {
	var a, b noopSystem
	a.AddEntity()
	a.AddEntity()
	e := b.AddEntity()
	if e.ID() != 1 {
		t.Fatalf("each system instance has its own id sequence; got %d", e.ID())
	}
}
