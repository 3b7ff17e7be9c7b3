package components

import (
	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/event"
)

// Blueprint builds the component set for a replacement entity
// Invoked once per spawn so every replacement gets fresh component state
type Blueprint func() []component.Component

// SpawnerComponent instantiates a configured replacement entity at the
// destroyed entity's last known position
// It reacts only to the destruction event
type SpawnerComponent struct {
	component.Propagating

	blueprint Blueprint
}

// NewSpawner creates a spawn-on-death component from a blueprint
func NewSpawner(b Blueprint) *SpawnerComponent {
	return &SpawnerComponent{blueprint: b}
}

// Kind returns KindSpawner
func (s *SpawnerComponent) Kind() component.Kind {
	return component.KindSpawner
}

// HandleEvent spawns the replacement when the owner is destroyed
func (s *SpawnerComponent) HandleEvent(ev event.Event) {
	if ev.Type != event.EventDestroyed || s.blueprint == nil {
		return
	}
	o := s.Owner()
	if o == nil {
		return
	}

	pos := o.Position()
	if p, ok := ev.Payload.(*event.DestroyedPayload); ok {
		pos = p.Pos
	}
	o.SpawnAt(pos, s.blueprint())
}
