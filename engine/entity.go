package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/components"
	"github.com/veldware/scenekit/core"
	"github.com/veldware/scenekit/event"
)

// Entity is an identity-bearing container of components
// It exclusively owns its components, holds at most one per kind in a
// fixed slot table, and synchronously broadcasts events to them
type Entity struct {
	id    uuid.UUID
	slots [component.KindCount]component.Component

	// scene is set while resident; handle is the spatial index entry
	scene  *Scene
	handle Handle

	// retired marks a destroyed entity. Set at most once; a retired
	// entity receives no further events
	retired bool
}

// Interface check: entities are the owner surface propagating
// components see
var _ component.Owner = (*Entity)(nil)

// NewEntity creates an entity with a default transform at the origin
func NewEntity() *Entity {
	return NewEntityAt(core.Point{})
}

// NewEntityAt creates an entity with a transform at the given position
func NewEntityAt(pos core.Point) *Entity {
	e := &Entity{id: uuid.New()}
	// A fresh entity cannot already hold a transform
	_ = e.AddComponent(components.NewTransform(pos))
	return e
}

// ID returns the entity's stable identity
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Retired reports whether the entity has been destroyed
func (e *Entity) Retired() bool {
	return e.retired
}

// Position returns the current transform position
func (e *Entity) Position() core.Point {
	if t, ok := e.slots[component.KindTransform].(*components.TransformComponent); ok {
		return t.Pos
	}
	return core.Point{}
}

// MoveTo relocates the entity, keeping the scene's spatial index equal to
// the transform while resident
func (e *Entity) MoveTo(pos core.Point) {
	t, ok := e.slots[component.KindTransform].(*components.TransformComponent)
	if !ok {
		return
	}
	t.Pos = pos
	if e.scene != nil && !e.retired {
		e.scene.index.Move(e.handle, pos)
	}
}

// AddComponent attaches c to its kind slot
// Fails with ErrDuplicateComponent when the slot is taken. Propagating
// components get their owner bound here; while scene-resident the
// component is also registered scene-wide
func (e *Entity) AddComponent(c component.Component) error {
	k := c.Kind()
	if k >= component.KindCount {
		return fmt.Errorf("add component: unknown kind %d", uint8(k))
	}
	if e.slots[k] != nil {
		return fmt.Errorf("add %s: %w", k, ErrDuplicateComponent)
	}
	e.slots[k] = c
	if b, ok := c.(component.Binder); ok {
		b.Bind(e)
	}
	if e.scene != nil && !e.retired {
		e.scene.registry.Put(k, c)
	}
	return nil
}

// RemoveComponent detaches and returns the component of the given kind
// Fails with ErrComponentNotFound when the slot is empty. The transform
// cannot be removed: every entity carries exactly one, and the scene's
// spatial index mirrors it for as long as the entity is resident
func (e *Entity) RemoveComponent(k component.Kind) (component.Component, error) {
	if k == component.KindTransform {
		return nil, fmt.Errorf("remove %s: %w", k, ErrTransformPermanent)
	}
	if k >= component.KindCount || e.slots[k] == nil {
		return nil, fmt.Errorf("remove %s: %w", k, ErrComponentNotFound)
	}
	c := e.slots[k]
	e.slots[k] = nil
	if e.scene != nil && !e.retired {
		e.scene.registry.Remove(k, c)
	}
	return c, nil
}

// Component returns the component of the given kind, or nil
func (e *Entity) Component(k component.Kind) component.Component {
	if k >= component.KindCount {
		return nil
	}
	return e.slots[k]
}

// Components returns a snapshot of the attached components
// Order is slot order and must not be relied upon
func (e *Entity) Components() []component.Component {
	out := make([]component.Component, 0, component.KindCount)
	for _, c := range e.slots {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// SendEvent synchronously delivers ev to every component attached at the
// moment dispatch begins. Components attached or detached by a handler
// mid-dispatch do not change this dispatch's snapshot
//
// A destruction event retires the entity from its scene before any
// component sees the event, so cascade-triggered range and radius queries
// never match an already-destroyed entity
func (e *Entity) SendEvent(ev event.Event) {
	if e.retired {
		return
	}
	if ev.Type == event.EventDestroyed {
		if e.scene != nil {
			e.scene.retire(e)
		} else {
			e.retired = true
		}
	}
	for _, c := range e.Components() {
		c.HandleEvent(ev)
	}
}

// Send implements component.Owner
func (e *Entity) Send(ev event.Event) {
	e.SendEvent(ev)
}

// SpawnAt implements component.Owner: builds a new entity from comps at
// pos and adds it to the owner's scene
func (e *Entity) SpawnAt(pos core.Point, comps []component.Component) {
	if e.scene == nil {
		return
	}
	n := NewEntityAt(pos)
	for _, c := range comps {
		if c == nil {
			continue
		}
		if err := n.AddComponent(c); err != nil {
			e.scene.log.Warn("spawn blueprint component skipped",
				zapKind(c.Kind()), zapEntity(n.id))
		}
	}
	// A fresh uuid cannot collide with a resident entity
	_ = e.scene.Add(n)
}

// EachWithin implements component.Owner: visits every scene entity within
// Euclidean distance radius of this entity, excluding itself
func (e *Entity) EachWithin(radius int, fn func(component.Owner)) {
	if e.scene == nil {
		return
	}
	for _, n := range e.scene.entitiesAround(e.Position(), radius, e.id) {
		fn(n)
	}
}
