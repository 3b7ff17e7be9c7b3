package components

import (
	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/event"
	"github.com/veldware/scenekit/parameter"
)

// healthState is the two-state machine of a health component
type healthState uint8

const (
	stateAlive healthState = iota
	stateDestroyed // terminal
)

// HealthComponent tracks hit points and drives entity destruction
// Damage events reduce hp clamped at zero, repair events raise it clamped
// at the maximum. The transition to zero emits exactly one destruction
// event through the owner; once destroyed, all further damage and repair
// events are ignored
type HealthComponent struct {
	component.Propagating

	max   int
	hp    int
	state healthState
}

// NewHealth creates a health component at full hit points
// A non-positive max falls back to parameter.CombatDefaultMaxHP
func NewHealth(max int) *HealthComponent {
	if max <= 0 {
		max = parameter.CombatDefaultMaxHP
	}
	return &HealthComponent{max: max, hp: max}
}

// Kind returns KindHealth
func (h *HealthComponent) Kind() component.Kind {
	return component.KindHealth
}

// HP returns the current hit points
func (h *HealthComponent) HP() int {
	return h.hp
}

// Max returns the hit point ceiling
func (h *HealthComponent) Max() int {
	return h.max
}

// Destroyed reports whether the terminal state has been reached
func (h *HealthComponent) Destroyed() bool {
	return h.state == stateDestroyed
}

// HandleEvent applies damage and repair while alive
func (h *HealthComponent) HandleEvent(ev event.Event) {
	if h.state == stateDestroyed {
		return
	}

	switch ev.Type {
	case event.EventDamage:
		p, ok := ev.Payload.(*event.DamagePayload)
		if !ok || p.Amount <= 0 {
			return
		}
		h.hp -= p.Amount
		if h.hp <= 0 {
			h.hp = 0
			h.state = stateDestroyed
			h.emitDestroyed()
		}

	case event.EventRepair:
		p, ok := ev.Payload.(*event.RepairPayload)
		if !ok || p.Amount <= 0 {
			return
		}
		h.hp += p.Amount
		if h.hp > h.max {
			h.hp = h.max
		}
	}
}

// emitDestroyed propagates the single destruction notification
// The state flip above guarantees it cannot fire twice even if a cascade
// routes another damage event back here before this call returns
func (h *HealthComponent) emitDestroyed() {
	o := h.Owner()
	if o == nil {
		return
	}
	h.Propagate(event.Destroyed(o.ID(), o.Position()))
}
