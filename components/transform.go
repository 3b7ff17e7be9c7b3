package components

import (
	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/core"
)

// TransformComponent holds an entity's world position
// Every entity carries exactly one; while the entity is scene-resident the
// scene mirrors this position into its spatial index. Mutate it through
// Entity.MoveTo, never directly, or the index goes stale
type TransformComponent struct {
	component.Passive

	Pos core.Point
}

// NewTransform creates a transform at the given position
func NewTransform(pos core.Point) *TransformComponent {
	return &TransformComponent{Pos: pos}
}

// Kind returns KindTransform
func (t *TransformComponent) Kind() component.Kind {
	return component.KindTransform
}
