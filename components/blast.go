package components

import (
	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/event"
	"github.com/veldware/scenekit/parameter"
)

// BlastComponent applies area damage when its entity is destroyed
// On the destruction event it queries the scene for every entity within
// Radius of the owner's last position and sends each a damage event. The
// owner has already left the spatial index by then, so the query never
// returns it and cascaded blasts never re-process a destroyed entity
type BlastComponent struct {
	component.Propagating

	Radius int
	Amount int
}

// NewBlast creates an area-damage-on-death component
// Non-positive radius or amount fall back to the combat defaults
func NewBlast(radius, amount int) *BlastComponent {
	if radius <= 0 {
		radius = parameter.CombatDefaultBlastRadius
	}
	if amount <= 0 {
		amount = parameter.CombatDefaultBlastDamage
	}
	return &BlastComponent{Radius: radius, Amount: amount}
}

// Kind returns KindBlast
func (b *BlastComponent) Kind() component.Kind {
	return component.KindBlast
}

// HandleEvent damages every neighbor in range when the owner is destroyed
func (b *BlastComponent) HandleEvent(ev event.Event) {
	if ev.Type != event.EventDestroyed {
		return
	}
	o := b.Owner()
	if o == nil {
		return
	}

	o.EachWithin(b.Radius, func(n component.Owner) {
		n.Send(event.Damage(o.ID(), b.Amount))
	})
}
