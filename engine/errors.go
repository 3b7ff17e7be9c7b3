package engine

import "errors"

// All engine failures are precondition violations surfaced immediately;
// none are retried. Callers match them with errors.Is
var (
	// ErrDuplicateComponent is returned when adding a component kind
	// already attached to the entity
	ErrDuplicateComponent = errors.New("component kind already attached")

	// ErrComponentNotFound is returned when removing a component kind
	// not attached to the entity
	ErrComponentNotFound = errors.New("component kind not attached")

	// ErrTransformPermanent is returned when removing the transform; the
	// spatial index mirrors it, so it stays for the entity's lifetime
	ErrTransformPermanent = errors.New("transform cannot be removed")

	// ErrEntityElsewhere is returned when adding an entity that is still
	// resident in another scene
	ErrEntityElsewhere = errors.New("entity resident in another scene")

	// ErrDuplicateEntity is returned when adding an entity already
	// present in the scene
	ErrDuplicateEntity = errors.New("entity already in scene")

	// ErrEntityNotFound is returned when removing an entity not present
	// in the scene
	ErrEntityNotFound = errors.New("entity not in scene")
)
