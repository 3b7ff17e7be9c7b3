package components

import (
	"github.com/veldware/scenekit/component"
)

// PowerComponent is a passive damage-magnitude holder
// Read by whatever game logic turns this entity's actions into damage
// events; it reacts to nothing itself
type PowerComponent struct {
	component.Passive

	Amount int
}

// NewPower creates a power holder with the given damage magnitude
func NewPower(amount int) *PowerComponent {
	return &PowerComponent{Amount: amount}
}

// Kind returns KindPower
func (p *PowerComponent) Kind() component.Kind {
	return component.KindPower
}
