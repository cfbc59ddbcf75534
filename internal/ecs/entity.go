package ecs

// EntityID uniquely identifies an entity within its owning system.
// IDs are assigned sequentially starting at 1 and are never reused.
// They are not unique across systems.
type EntityID uint64

// NilEntity is the zero value — no valid entity has this ID.
const NilEntity EntityID = 0

// Entity is an identifier plus a type-keyed set of components, at most one
// per concrete component type. Entities are created only through a system's
// AddEntity and are owned by exactly one system.
type Entity struct {
	id         EntityID
	components map[ComponentType]Component
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		id:         id,
		components: make(map[ComponentType]Component),
	}
}

// ID returns the entity's identifier. Immutable after creation.
func (e *Entity) ID() EntityID { return e.id }

// Add attaches c to the entity and sets its owner back-reference.
// If a component of the same type is already present, or c is still held
// by another entity, Add reports false and performs no mutation —
// components are never shared.
func (e *Entity) Add(c Component) bool {
	if c.Owner() != NilEntity {
		return false
	}
	t := c.Type()
	if _, exists := e.components[t]; exists {
		return false
	}
	c.bind(e.id)
	e.components[t] = c
	return true
}

// Get returns the entity's component of the given type, or nil.
func (e *Entity) Get(t ComponentType) Component {
	return e.components[t]
}

// Has reports whether the entity holds a component of the given type.
func (e *Entity) Has(t ComponentType) bool {
	_, ok := e.components[t]
	return ok
}

// Remove detaches and releases the entity's component of the given type,
// clearing its owner back-reference. Reports false if no such component
// is present.
func (e *Entity) Remove(t ComponentType) bool {
	c, ok := e.components[t]
	if !ok {
		return false
	}
	c.bind(NilEntity)
	delete(e.components, t)
	return true
}

// Get returns e's component of concrete type T. The key is resolved from
// T's Type method on a nil value, so lookup is by concrete type identity —
// structurally identical component types are never conflated.
func Get[T Component](e *Entity) (T, bool) {
	var zero T
	c, ok := e.components[zero.Type()]
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}

// Has reports whether e holds a component of concrete type T.
func Has[T Component](e *Entity) bool {
	var zero T
	return e.Has(zero.Type())
}

// Remove detaches e's component of concrete type T, reporting whether one
// was present.
func Remove[T Component](e *Entity) bool {
	var zero T
	return e.Remove(zero.Type())
}
