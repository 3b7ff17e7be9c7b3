package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/components"
	"github.com/veldware/scenekit/core"
	"github.com/veldware/scenekit/engine"
)

// World is a declarative scene description loaded from TOML
type World struct {
	Entities []EntitySpec `toml:"entity"`
}

// EntitySpec describes one entity and its component set
// Zero-valued optional fields mean "component absent"
type EntitySpec struct {
	Name string `toml:"name"`
	X    int    `toml:"x"`
	Y    int    `toml:"y"`

	Health int `toml:"health"` // max hit points; 0 = indestructible
	Power  int `toml:"power"`  // damage magnitude holder
	Mend   int `toml:"mend"`   // repair magnitude holder

	BlastRadius int `toml:"blast_radius"` // area damage on death
	BlastDamage int `toml:"blast_damage"`

	// RespawnHealth configures spawn-on-death: a replacement entity with
	// this much health appears at the death position. 0 = no respawn
	RespawnHealth int `toml:"respawn_health"`
}

// Load reads a world description from a TOML file
func Load(path string) (*World, error) {
	var w World
	if _, err := toml.DecodeFile(path, &w); err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	return &w, nil
}

// Parse reads a world description from TOML text
func Parse(data string) (*World, error) {
	var w World
	if _, err := toml.Decode(data, &w); err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}
	return &w, nil
}

// Build stands up a scene populated per the description
func (w *World) Build(opts ...engine.Option) (*engine.Scene, error) {
	s := engine.NewScene(opts...)
	for i := range w.Entities {
		e, err := w.Entities[i].build()
		if err != nil {
			return nil, err
		}
		if err := s.Add(e); err != nil {
			return nil, fmt.Errorf("entity %q: %w", w.Entities[i].Name, err)
		}
	}
	return s, nil
}

func (spec *EntitySpec) build() (*engine.Entity, error) {
	e := engine.NewEntityAt(core.Pt(spec.X, spec.Y))
	for _, c := range spec.componentSet() {
		if err := e.AddComponent(c); err != nil {
			return nil, fmt.Errorf("entity %q: %w", spec.Name, err)
		}
	}
	return e, nil
}

func (spec *EntitySpec) componentSet() []component.Component {
	var set []component.Component
	if spec.Health > 0 {
		set = append(set, components.NewHealth(spec.Health))
	}
	if spec.Power > 0 {
		set = append(set, components.NewPower(spec.Power))
	}
	if spec.Mend > 0 {
		set = append(set, components.NewMender(spec.Mend))
	}
	if spec.BlastRadius > 0 || spec.BlastDamage > 0 {
		set = append(set, components.NewBlast(spec.BlastRadius, spec.BlastDamage))
	}
	if spec.RespawnHealth > 0 {
		hp := spec.RespawnHealth
		set = append(set, components.NewSpawner(func() []component.Component {
			return []component.Component{components.NewHealth(hp)}
		}))
	}
	return set
}
