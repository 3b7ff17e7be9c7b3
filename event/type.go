package event

// EventType represents the type of world event
type EventType int

const (
	// EventDamage reduces the hit points of the receiving entity
	// Trigger: external callers, BlastComponent cascade
	// Consumer: HealthComponent | Payload: *DamagePayload
	EventDamage EventType = iota

	// EventRepair restores hit points of the receiving entity
	// Trigger: external callers
	// Consumer: HealthComponent | Payload: *RepairPayload
	EventRepair

	// EventDestroyed signals that the receiving entity has been retired
	// Emitted exactly once per entity, by its health component reaching zero
	// Trigger: HealthComponent | Consumer: SpawnerComponent, BlastComponent
	// Payload: *DestroyedPayload
	EventDestroyed
)

var eventNames = map[EventType]string{
	EventDamage:    "DAMAGE",
	EventRepair:    "REPAIR",
	EventDestroyed: "DESTROYED",
}

// String implements fmt.Stringer for logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
