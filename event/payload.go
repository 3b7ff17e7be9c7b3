package event

import (
	"github.com/veldware/scenekit/core"
)

// DamagePayload carries the magnitude of a damage event
type DamagePayload struct {
	Amount int
}

// RepairPayload carries the magnitude of a repair event
type RepairPayload struct {
	Amount int
}

// DestroyedPayload carries the last known position of a destroyed entity
// Reaction components read it after the entity has left the spatial index
type DestroyedPayload struct {
	Pos core.Point
}
