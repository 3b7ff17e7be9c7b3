package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/core"
)

// Scene composes the entity set, the spatial index and the component
// registry, and keeps both indexes synchronized with every entity's
// position and component set
//
// Execution is single-threaded and synchronous: every operation runs to
// completion before returning, and event cascades are depth-first call
// chains with no suspension point
type Scene struct {
	entities map[uuid.UUID]*Entity
	byHandle map[Handle]*Entity
	index    *RangeTree
	registry *Registry
	log      *zap.Logger
}

// Option configures a scene at construction time
type Option func(*Scene)

// WithLogger routes scene lifecycle logs to the given logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScene creates an empty scene
func NewScene(opts ...Option) *Scene {
	s := &Scene{
		entities: make(map[uuid.UUID]*Entity),
		byHandle: make(map[Handle]*Entity),
		index:    NewRangeTree(),
		registry: NewRegistry(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of resident entities
func (s *Scene) Len() int {
	return len(s.entities)
}

// Add makes an entity scene-resident: its position enters the spatial
// index and all of its current components enter the registry, atomically
// from the caller's point of view
// Fails with ErrDuplicateEntity when already resident here and with
// ErrEntityElsewhere when resident in another scene; a destroyed entity
// can never be added
func (s *Scene) Add(e *Entity) error {
	if _, ok := s.entities[e.id]; ok {
		return fmt.Errorf("add entity %s: %w", e.id, ErrDuplicateEntity)
	}
	if e.retired {
		return fmt.Errorf("add entity %s: entity destroyed", e.id)
	}
	if e.scene != nil && e.scene != s {
		return fmt.Errorf("add entity %s: %w", e.id, ErrEntityElsewhere)
	}

	h := s.index.Insert(e.Position())
	e.scene = s
	e.handle = h
	s.entities[e.id] = e
	s.byHandle[h] = e
	for _, c := range e.Components() {
		s.registry.Put(c.Kind(), c)
	}

	s.log.Debug("entity added", zapEntity(e.id),
		zap.Int("x", e.Position().X), zap.Int("y", e.Position().Y))
	return nil
}

// Remove makes an entity non-resident again, tearing down its spatial
// index point and registry entries
// Fails with ErrEntityNotFound when not resident
func (s *Scene) Remove(e *Entity) error {
	if _, ok := s.entities[e.id]; !ok {
		return fmt.Errorf("remove entity %s: %w", e.id, ErrEntityNotFound)
	}
	s.teardown(e)
	e.scene = nil
	s.log.Debug("entity removed", zapEntity(e.id))
	return nil
}

// retire permanently removes a destroyed entity, at most once
// Unlike Remove it keeps the entity's scene pointer so reaction components
// can still spawn replacements and run radius queries during the cascade
// that destroyed it
func (s *Scene) retire(e *Entity) {
	if e.retired {
		return
	}
	e.retired = true
	if _, ok := s.entities[e.id]; !ok {
		return
	}
	s.teardown(e)
	s.log.Debug("entity destroyed", zapEntity(e.id))
}

// teardown drops an entity from the entity set, the spatial index and the
// registry in one step
func (s *Scene) teardown(e *Entity) {
	delete(s.entities, e.id)
	delete(s.byHandle, e.handle)
	s.index.Remove(e.handle)
	for _, c := range e.Components() {
		s.registry.Remove(c.Kind(), c)
	}
}

// Entities returns a snapshot of the resident entities, order irrelevant
func (s *Scene) Entities() []*Entity {
	out := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e)
	}
	return out
}

// ComponentsOf returns the live view of all resident components of a kind
func (s *Scene) ComponentsOf(k component.Kind) *View {
	return s.registry.Get(k)
}

// EntitiesIn returns the entities inside the inclusive rectangle
// [min, max]. An inverted rectangle yields an empty result
func (s *Scene) EntitiesIn(min, max core.Point) []*Entity {
	handles := s.index.Query(min, max)
	out := make([]*Entity, 0, len(handles))
	for _, h := range handles {
		if e, ok := s.byHandle[h]; ok {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesAround returns the entities within Euclidean distance radius of
// the target's position, excluding the target itself
// Bounding-box prefilter through the spatial index, exact distance filter
// on the candidates
func (s *Scene) EntitiesAround(target *Entity, radius int) []*Entity {
	return s.entitiesAround(target.Position(), radius, target.id)
}

func (s *Scene) entitiesAround(center core.Point, radius int, exclude uuid.UUID) []*Entity {
	if radius < 0 {
		return nil
	}
	box := core.RectAround(center, radius)
	handles := s.index.Query(box.Min, box.Max)
	out := make([]*Entity, 0, len(handles))
	for _, h := range handles {
		e, ok := s.byHandle[h]
		if !ok || e.id == exclude {
			continue
		}
		if e.Position().DistSq(center) <= radius*radius {
			out = append(out, e)
		}
	}
	return out
}

// zapEntity is the shared field for entity identities in scene logs
func zapEntity(id uuid.UUID) zap.Field {
	return zap.String("entity", id.String())
}

// zapKind is the shared field for component kinds in scene logs
func zapKind(k component.Kind) zap.Field {
	return zap.Stringer("kind", k)
}
