package components

import (
	"github.com/veldware/scenekit/component"
)

// MenderComponent is a passive repair-magnitude holder, the counterpart
// of PowerComponent for repair events
type MenderComponent struct {
	component.Passive

	Amount int
}

// NewMender creates a mender holder with the given repair magnitude
func NewMender(amount int) *MenderComponent {
	return &MenderComponent{Amount: amount}
}

// Kind returns KindMender
func (m *MenderComponent) Kind() component.Kind {
	return component.KindMender
}
