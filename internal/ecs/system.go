package ecs

// SystemType is a small integer key identifying a concrete system type.
// Each concrete system declares its own constant; a world holds at most
// one system per key.
type SystemType uint8

// System is the capability every processing unit implements. Concrete
// systems embed BaseSystem, which supplies the entity registry, default
// Init/Shutdown hooks, and the unexported registry accessor; Tick is the
// one mandatory override. As with components, Type is implemented with a
// pointer receiver that ignores the receiver, so the generic world
// accessors can resolve the key from a nil value.
type System interface {
	Type() SystemType
	// Init is called exactly once, before any Tick. A non-nil error fails
	// world initialization.
	Init() error
	// Tick runs one simulation step. delta is the caller-supplied elapsed
	// time in seconds, passed through verbatim.
	Tick(delta float64)
	// Shutdown is called exactly once, on removal from the world or on
	// world teardown.
	Shutdown()

	registry() *BaseSystem
}

// BaseSystem owns a system's entity registry: a per-instance monotonic id
// counter and the id→entity map. The zero value is ready to use, so
// concrete systems embed it without a constructor. Entity ids within one
// system are unique and never reused, even after removal.
type BaseSystem struct {
	nextID   EntityID
	entities map[EntityID]*Entity
}

// Init is the default lifecycle hook: trivial success.
func (s *BaseSystem) Init() error { return nil }

// Shutdown is the default lifecycle hook: no-op. Entity cleanup is not
// required here — the world drops the registry on teardown.
func (s *BaseSystem) Shutdown() {}

// AddEntity allocates a fresh id, stores a new empty entity under it, and
// returns the entity. It never fails.
func (s *BaseSystem) AddEntity() *Entity {
	if s.nextID == 0 {
		s.nextID = 1
	}
	if s.entities == nil {
		s.entities = make(map[EntityID]*Entity)
	}
	id := s.nextID
	s.nextID++
	e := newEntity(id)
	s.entities[id] = e
	return e
}

// GetEntity returns the entity with the given id, or nil.
func (s *BaseSystem) GetEntity(id EntityID) *Entity {
	return s.entities[id]
}

// HasEntity reports whether an entity with the given id is registered.
func (s *BaseSystem) HasEntity(id EntityID) bool {
	_, ok := s.entities[id]
	return ok
}

// RemoveEntity destroys the entity with the given id along with all its
// components, reporting false if no such entity exists.
func (s *BaseSystem) RemoveEntity(id EntityID) bool {
	e, ok := s.entities[id]
	if !ok {
		return false
	}
	for t := range e.components {
		e.Remove(t)
	}
	delete(s.entities, id)
	return true
}

// Entities exposes the live registry for per-tick scans. Callers may
// mutate component state and call RemoveEntity while ranging over it.
func (s *BaseSystem) Entities() map[EntityID]*Entity {
	return s.entities
}

// Len returns the number of entities the system currently owns.
func (s *BaseSystem) Len() int { return len(s.entities) }

func (s *BaseSystem) registry() *BaseSystem { return s }

func (s *BaseSystem) dropEntities() {
	for id := range s.entities {
		s.RemoveEntity(id)
	}
	s.entities = nil
}
