package parameter

// Hit Points
const (
	// CombatDefaultMaxHP is the fallback ceiling when a health component
	// is constructed with a non-positive maximum
	CombatDefaultMaxHP = 10
)

// Blast
const (
	// CombatDefaultBlastRadius is the fallback area-damage radius
	CombatDefaultBlastRadius = 3

	// CombatDefaultBlastDamage is the fallback damage applied to each
	// entity caught in a blast
	CombatDefaultBlastDamage = 1
)
