package parameter

// Engine sizing hints
const (
	// EngineRegistryCapacity is the initial capacity of each registry
	// kind list
	EngineRegistryCapacity = 64

	// EngineQueryCapacity is the initial capacity of range query results
	EngineQueryCapacity = 16
)
