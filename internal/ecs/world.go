package ecs

import "fmt"

// LifecyclePhase is the world's (and each system's) position in the
// Uninitialized → Initialized → ShutDown state machine. ShutDown is
// terminal: a shut-down world cannot be reinitialized.
type LifecyclePhase uint8

const (
	Uninitialized LifecyclePhase = iota
	Initialized
	ShutDown
)

// World owns the registered systems — at most one instance per concrete
// system type — and coordinates their lifecycle. Systems run in
// registration order for Init, Tick, and Shutdown; type-keyed map
// iteration would be nondeterministic, so the order is kept explicitly.
type World struct {
	systems map[SystemType]System
	order   []System
	phase   LifecyclePhase
}

// NewWorld creates an empty World in the Uninitialized phase.
func NewWorld() *World {
	return &World{
		systems: make(map[SystemType]System),
	}
}

// Phase returns the world's current lifecycle phase.
func (w *World) Phase() LifecyclePhase { return w.phase }

// AddSystem registers s. It reports false — with no mutation — if a system
// of the same concrete type is already registered, or if the world has
// been shut down. The caller keeps its own reference to s for creating
// entities through it.
func (w *World) AddSystem(s System) bool {
	if w.phase == ShutDown {
		return false
	}
	t := s.Type()
	if _, exists := w.systems[t]; exists {
		return false
	}
	w.systems[t] = s
	w.order = append(w.order, s)
	return true
}

// GetSystem returns the registered system with the given type key, or nil.
func (w *World) GetSystem(t SystemType) System {
	return w.systems[t]
}

// HasSystem reports whether a system with the given type key is registered.
func (w *World) HasSystem(t SystemType) bool {
	_, ok := w.systems[t]
	return ok
}

// RemoveSystem shuts down and erases the system with the given type key,
// dropping all entities it owns. Reports false if no such system is
// registered.
func (w *World) RemoveSystem(t SystemType) bool {
	s, ok := w.systems[t]
	if !ok {
		return false
	}
	s.Shutdown()
	s.registry().dropEntities()
	delete(w.systems, t)
	for i, o := range w.order {
		if o == s {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Init calls Init on every registered system in registration order and
// stops at the first failure, returning an error naming the failing
// system. There is no rollback: systems initialized before the failure
// stay initialized and the world stays Uninitialized — the only supported
// recovery is Shutdown and rebuild. A second Init on an already
// initialized world is a no-op.
func (w *World) Init() error {
	if w.phase != Uninitialized {
		return nil
	}
	for _, s := range w.order {
		if err := s.Init(); err != nil {
			return fmt.Errorf("init system %T: %w", s, err)
		}
	}
	w.phase = Initialized
	return nil
}

// Tick runs one simulation step: every registered system's Tick is called
// exactly once, in registration order, with delta passed through verbatim.
// A tick cannot fail. Ticking before Init or after Shutdown just iterates
// whatever is registered (nothing, once shut down).
func (w *World) Tick(delta float64) {
	for _, s := range w.order {
		s.Tick(delta)
	}
}

// Shutdown calls Shutdown on every registered system in registration
// order, drops their entities, and clears the registry. Idempotent: a
// second call is a no-op over an empty registry. The world is terminal
// afterwards.
func (w *World) Shutdown() {
	for _, s := range w.order {
		s.Shutdown()
		s.registry().dropEntities()
	}
	w.systems = make(map[SystemType]System)
	w.order = nil
	w.phase = ShutDown
}

// GetSystem returns the world's system of concrete type T. The key is
// resolved from T's Type method on a nil value, mirroring the generic
// component accessors.
func GetSystem[T System](w *World) (T, bool) {
	var zero T
	s, ok := w.systems[zero.Type()]
	if !ok {
		return zero, false
	}
	v, ok := s.(T)
	return v, ok
}

// HasSystem reports whether the world holds a system of concrete type T.
func HasSystem[T System](w *World) bool {
	var zero T
	return w.HasSystem(zero.Type())
}

// RemoveSystem shuts down and erases the world's system of concrete type
// T, reporting whether one was registered.
func RemoveSystem[T System](w *World) bool {
	var zero T
	return w.RemoveSystem(zero.Type())
}
