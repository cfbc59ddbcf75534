package ecs

// ComponentType is a small integer key identifying a concrete component type.
// Each concrete component declares its own constant; keys must be unique
// within an application, and the one-per-type invariant on entities is
// enforced purely by map key uniqueness.
type ComponentType uint8

// Component is implemented by every data fragment attached to an entity.
// Concrete components embed Base (which supplies the owner back-reference)
// and implement Type with a pointer receiver that does not touch the
// receiver, so the key can be resolved from a nil value.
type Component interface {
	Type() ComponentType
	// Owner is the id of the entity currently holding this component,
	// or NilEntity before attachment and after removal.
	Owner() EntityID

	bind(EntityID)
}

// Base carries the owner back-reference for a component. It is a weak link:
// an entity id resolved through the owning system's registry on demand,
// never a pointer, so a stale component can never dangle.
type Base struct {
	owner EntityID
}

// Owner returns the id of the holding entity, or NilEntity when detached.
func (b *Base) Owner() EntityID { return b.owner }

func (b *Base) bind(id EntityID) { b.owner = id }
