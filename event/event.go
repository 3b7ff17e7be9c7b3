package event

import (
	"github.com/google/uuid"

	"github.com/veldware/scenekit/core"
)

// Event is an immutable notification broadcast to an entity's components
// Origin identifies the emitting entity by ID rather than by reference, so
// an event never extends the lifetime of the entity it came from
type Event struct {
	Type    EventType
	Origin  uuid.UUID // uuid.Nil when the event has no originating entity
	Payload any
}

// Damage constructs a damage event carrying the given magnitude
func Damage(origin uuid.UUID, amount int) Event {
	return Event{
		Type:    EventDamage,
		Origin:  origin,
		Payload: &DamagePayload{Amount: amount},
	}
}

// Repair constructs a repair event carrying the given magnitude
func Repair(origin uuid.UUID, amount int) Event {
	return Event{
		Type:    EventRepair,
		Origin:  origin,
		Payload: &RepairPayload{Amount: amount},
	}
}

// Destroyed constructs the terminal destruction notification
// Pos records the destroyed entity's last known position so reaction
// components can act after the entity has left the spatial index
func Destroyed(origin uuid.UUID, pos core.Point) Event {
	return Event{
		Type:    EventDestroyed,
		Origin:  origin,
		Payload: &DestroyedPayload{Pos: pos},
	}
}
