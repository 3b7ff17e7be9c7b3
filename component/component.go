package component

import (
	"github.com/google/uuid"

	"github.com/veldware/scenekit/core"
	"github.com/veldware/scenekit/event"
)

// Component is a behavior unit attached to exactly one entity
// Concrete components come in two variants: passive data holders that
// embed Passive and ignore events, and propagating components that embed
// Propagating and may re-emit events through their owning entity
type Component interface {
	// Kind returns the component's slot in the closed kind enumeration
	Kind() Kind

	// HandleEvent receives one event delivered by the owning entity
	// Dispatch is synchronous; the handler runs to completion before the
	// next component in the snapshot is visited
	HandleEvent(ev event.Event)
}

// Owner is the surface a propagating component sees of its owning entity
// It is a non-owning back-reference: the entity owns the component and the
// component never outlives it
type Owner interface {
	// ID returns the entity's stable identity
	ID() uuid.UUID

	// Position returns the entity's current transform position
	Position() core.Point

	// Send synchronously broadcasts ev to the entity's components
	Send(ev event.Event)

	// SpawnAt creates a new entity from comps at pos in the owner's scene
	// No-op when the owner is not scene-resident
	SpawnAt(pos core.Point, comps []Component)

	// EachWithin visits every scene entity within Euclidean distance
	// radius of the owner's position, excluding the owner itself
	EachWithin(radius int, fn func(Owner))
}

// Binder is implemented by components that need their owner wired at
// attach time. Entities bind automatically during AddComponent
type Binder interface {
	Bind(o Owner)
}

// Passive is embedded by pure data components
// Events are ignored; the component exists to be read by others
type Passive struct{}

// HandleEvent is a no-op
func (Passive) HandleEvent(event.Event) {}

// Propagating is embedded by components that hold a back-reference to
// their owner and may forward new events through it
type Propagating struct {
	owner Owner
}

// Bind wires the owning entity. Called once at attach time; the reference
// stays valid for the component's entire lifetime because components die
// with their owner
func (p *Propagating) Bind(o Owner) {
	p.owner = o
}

// Owner returns the owning entity, or nil before the component is attached
func (p *Propagating) Owner() Owner {
	return p.owner
}

// Propagate forwards ev through the owning entity, enabling cascades
func (p *Propagating) Propagate(ev event.Event) {
	if p.owner != nil {
		p.owner.Send(ev)
	}
}
