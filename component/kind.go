package component

// Kind identifies a concrete component type
// Kinds form a closed enumeration mapped to fixed entity slots; there is
// at most one component of each kind per entity
type Kind uint8

const (
	KindTransform Kind = iota
	KindPower
	KindMender
	KindHealth
	KindSpawner
	KindBlast

	// KindCount is the slot table size, not a real kind
	KindCount
)

var kindNames = [KindCount]string{
	KindTransform: "TRANSFORM",
	KindPower:     "POWER",
	KindMender:    "MENDER",
	KindHealth:    "HEALTH",
	KindSpawner:   "SPAWNER",
	KindBlast:     "BLAST",
}

// String implements fmt.Stringer for errors and logs
func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}
