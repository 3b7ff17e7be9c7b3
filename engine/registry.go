package engine

import (
	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/parameter"
)

// Registry indexes every live component in a scene by kind
// Kinds form a closed enumeration, so the index is a fixed slot table
// rather than an associative lookup. Entity component maps and this index
// are two views over the same attachments; the scene keeps them in step on
// every attach, detach, add and retire
type Registry struct {
	views [component.KindCount]View
}

// View is a live window onto all components of one kind
// Mutations of the backing registry are visible through an already
// obtained view without re-querying
type View struct {
	comps []component.Component
	index map[component.Component]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	r := &Registry{}
	for k := range r.views {
		r.views[k].index = make(map[component.Component]int)
	}
	return r
}

// Put records a component under its kind. Duplicate puts are ignored
func (r *Registry) Put(k component.Kind, c component.Component) {
	if k >= component.KindCount || c == nil {
		return
	}
	v := &r.views[k]
	if _, ok := v.index[c]; ok {
		return
	}
	if v.comps == nil {
		v.comps = make([]component.Component, 0, parameter.EngineRegistryCapacity)
	}
	v.index[c] = len(v.comps)
	v.comps = append(v.comps, c)
}

// Remove drops one component from its kind list
// Swap-remove keeps the list dense; order within a kind is unspecified
func (r *Registry) Remove(k component.Kind, c component.Component) {
	if k >= component.KindCount {
		return
	}
	v := &r.views[k]
	i, ok := v.index[c]
	if !ok {
		return
	}
	last := len(v.comps) - 1
	if i < last {
		v.comps[i] = v.comps[last]
		v.index[v.comps[i]] = i
	}
	v.comps[last] = nil
	v.comps = v.comps[:last]
	delete(v.index, c)
}

// RemoveAll drops every component of one kind
func (r *Registry) RemoveAll(k component.Kind) {
	if k >= component.KindCount {
		return
	}
	v := &r.views[k]
	for i := range v.comps {
		v.comps[i] = nil
	}
	v.comps = v.comps[:0]
	v.index = make(map[component.Component]int)
}

// Get returns the live view for a kind
// The view reflects later Put and Remove calls without re-querying
func (r *Registry) Get(k component.Kind) *View {
	if k >= component.KindCount {
		return &View{}
	}
	return &r.views[k]
}

// Keys returns every kind that currently has at least one component
func (r *Registry) Keys() []component.Kind {
	keys := make([]component.Kind, 0, component.KindCount)
	for k := range r.views {
		if len(r.views[k].comps) > 0 {
			keys = append(keys, component.Kind(k))
		}
	}
	return keys
}

// Len returns the number of live components of one kind
func (r *Registry) Len(k component.Kind) int {
	if k >= component.KindCount {
		return 0
	}
	return len(r.views[k].comps)
}

// Len returns the current number of components in the view
func (v *View) Len() int {
	return len(v.comps)
}

// Components returns a snapshot slice of the view's current contents
func (v *View) Components() []component.Component {
	out := make([]component.Component, len(v.comps))
	copy(out, v.comps)
	return out
}

// Each visits the view's current contents
// Iterates over a snapshot, so handlers may mutate the registry
func (v *View) Each(fn func(component.Component)) {
	for _, c := range v.Components() {
		fn(c)
	}
}

// Contains reports whether c is currently in the view
func (v *View) Contains(c component.Component) bool {
	if v.index == nil {
		return false
	}
	_, ok := v.index[c]
	return ok
}
