package engine

import (
	"sort"

	"github.com/veldware/scenekit/core"
	"github.com/veldware/scenekit/parameter"
)

// Handle identifies one stored point for later move and removal
// Handles are never reused, so duplicate points stay distinguishable
type Handle uint64

// maxHandle is the upper sentinel for inclusive key comparisons
const maxHandle = ^Handle(0)

// key is a totally ordered search key: one coordinate plus the handle as
// tie-break, so equal coordinates still have a deterministic order
type key struct {
	c int
	h Handle
}

func (k key) lessEq(o key) bool {
	return k.c < o.c || (k.c == o.c && k.h <= o.h)
}

// entry is one stored point. The same entry pointer is shared between the
// x-tree leaf and every associated y-tree on its root path, so removal can
// match by identity
type entry struct {
	pt core.Point
	h  Handle
}

// node is one tree node, leaf-oriented: points live in leaves only, an
// internal node always has two children and caches the maximum key of its
// subtree for routing (descend left iff the search key is <= left.max)
type node struct {
	parent, left, right *node

	size int // leaves in this subtree
	max  key // maximum key in this subtree

	// assoc is the one-dimensional y-structure over every point in this
	// subtree. Present on internal x-nodes only
	assoc *tree

	// ent is the leaf payload; nil marks an internal node
	ent *entry
}

func (n *node) leaf() bool {
	return n.ent != nil
}

// tree is one balanced search level of the range tree
// dim 0 routes on x and carries associated y-trees; dim 1 routes on y
type tree struct {
	dim  int
	root *node

	// leaves maps handle to x-leaf; present on the outer tree only
	leaves map[Handle]*node
}

// RangeTree is a two-level range tree over 2D integer points
// The outer tree is a balanced BST on x whose internal nodes each carry a
// balanced BST over the y-coordinates of their subtree; rectangle queries
// decompose into O(log n) canonical x-subtrees and finish with one y-range
// search in each, for O(log^2 n + k) reporting. Rebalancing is localized:
// an update rebuilds only the smallest unbalanced subtree on its path
type RangeTree struct {
	t    tree
	next Handle
}

// NewRangeTree creates an empty spatial index
func NewRangeTree() *RangeTree {
	rt := &RangeTree{next: 1}
	rt.t.leaves = make(map[Handle]*node)
	return rt
}

// Len returns the number of stored points
func (rt *RangeTree) Len() int {
	if rt.t.root == nil {
		return 0
	}
	return rt.t.root.size
}

// Insert stores p and returns its handle
// Duplicate points are permitted and receive distinct handles
func (rt *RangeTree) Insert(p core.Point) Handle {
	h := rt.next
	rt.next++
	rt.t.insert(&entry{pt: p, h: h})
	return h
}

// At returns the current point behind a handle
func (rt *RangeTree) At(h Handle) (core.Point, bool) {
	leaf, ok := rt.t.leaves[h]
	if !ok {
		return core.Point{}, false
	}
	return leaf.ent.pt, true
}

// Remove deletes the point behind h
// Returns false when the handle is unknown
func (rt *RangeTree) Remove(h Handle) bool {
	leaf, ok := rt.t.leaves[h]
	if !ok {
		return false
	}
	delete(rt.t.leaves, h)
	rt.t.remove(leaf)
	return true
}

// Move relocates the point behind h, specified as remove followed by
// insert under the same handle
// Returns false when the handle is unknown
func (rt *RangeTree) Move(h Handle, p core.Point) bool {
	leaf, ok := rt.t.leaves[h]
	if !ok {
		return false
	}
	e := leaf.ent
	delete(rt.t.leaves, h)
	rt.t.remove(leaf)
	e.pt = p
	rt.t.insert(e)
	return true
}

// Query reports the handles of every point inside the inclusive rectangle
// [min, max]. An inverted rectangle yields an empty result, not an error
func (rt *RangeTree) Query(min, max core.Point) []Handle {
	r := core.Rect{Min: min, Max: max}
	if !r.Valid() || rt.t.root == nil {
		return nil
	}

	out := make([]Handle, 0, parameter.EngineQueryCapacity)
	lo := key{c: r.Min.X, h: 0}
	hi := key{c: r.Max.X, h: maxHandle}

	// Descend to the split node where the x-range forks
	v := rt.t.root
	for !v.leaf() {
		m := v.left.max
		if hi.lessEq(m) {
			v = v.left
			continue
		}
		if !lo.lessEq(m) {
			v = v.right
			continue
		}
		break
	}
	if v.leaf() {
		if r.Contains(v.ent.pt) {
			out = append(out, v.ent.h)
		}
		return out
	}

	// Left boundary path: every right sibling subtree lies fully inside
	// the x-range, so only its y-structure needs searching
	n := v.left
	for !n.leaf() {
		if lo.lessEq(n.left.max) {
			reportY(n.right, r, &out)
			n = n.left
		} else {
			n = n.right
		}
	}
	if r.Contains(n.ent.pt) {
		out = append(out, n.ent.h)
	}

	// Right boundary path, mirrored
	n = v.right
	for !n.leaf() {
		if n.left.max.lessEq(hi) {
			reportY(n.left, r, &out)
			n = n.right
		} else {
			n = n.left
		}
	}
	if r.Contains(n.ent.pt) {
		out = append(out, n.ent.h)
	}
	return out
}

// reportY resolves one canonical x-subtree: leaves are tested directly,
// internal nodes delegate to their associated y-tree
func reportY(n *node, r core.Rect, out *[]Handle) {
	if n.leaf() {
		if r.Contains(n.ent.pt) {
			*out = append(*out, n.ent.h)
		}
		return
	}
	n.assoc.collectRange(r.Min.Y, r.Max.Y, out)
}

// --- tree internals ---

func (t *tree) coord(p core.Point) int {
	if t.dim == 0 {
		return p.X
	}
	return p.Y
}

func (t *tree) keyOf(e *entry) key {
	return key{c: t.coord(e.pt), h: e.h}
}

func (t *tree) newLeaf(e *entry) *node {
	n := &node{ent: e, size: 1, max: t.keyOf(e)}
	if t.leaves != nil {
		t.leaves[e.h] = n
	}
	return n
}

// insert adds e, keeping every associated structure on the root path in
// sync before the structural change
func (t *tree) insert(e *entry) {
	if t.root == nil {
		t.root = t.newLeaf(e)
		return
	}

	k := t.keyOf(e)
	n := t.root
	for !n.leaf() {
		if n.assoc != nil {
			n.assoc.insert(e)
		}
		if k.lessEq(n.left.max) {
			n = n.left
		} else {
			n = n.right
		}
	}

	// Split the reached leaf into an internal node over both points
	parent := n.parent
	nl := t.newLeaf(e)
	in := &node{parent: parent, size: 2}
	if k.lessEq(n.max) {
		in.left, in.right = nl, n
	} else {
		in.left, in.right = n, nl
	}
	nl.parent, n.parent = in, in
	in.max = in.right.max
	if t.dim == 0 {
		in.assoc = &tree{dim: 1}
		in.assoc.insert(n.ent)
		in.assoc.insert(e)
	}

	if parent == nil {
		t.root = in
	} else {
		if parent.left == n {
			parent.left = in
		} else {
			parent.right = in
		}
		t.refresh(parent)
	}
	t.rebalance(in)
}

// remove detaches a leaf, collapsing its parent into the sibling
func (t *tree) remove(leaf *node) {
	// Pull the entry out of every ancestor's y-structure first
	for a := leaf.parent; a != nil; a = a.parent {
		if a.assoc != nil {
			a.assoc.removeEntry(leaf.ent)
		}
	}

	p := leaf.parent
	if p == nil {
		t.root = nil
		return
	}
	sib := p.left
	if sib == leaf {
		sib = p.right
	}
	g := p.parent
	sib.parent = g
	if g == nil {
		t.root = sib
		return
	}
	if g.left == p {
		g.left = sib
	} else {
		g.right = sib
	}
	t.refresh(g)
	t.rebalance(g)
}

// removeEntry locates e by key and detaches its leaf
// Used by associated y-trees, which have no handle map
func (t *tree) removeEntry(e *entry) {
	k := t.keyOf(e)
	n := t.root
	for n != nil && !n.leaf() {
		if k.lessEq(n.left.max) {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil || n.ent != e {
		return
	}
	t.remove(n)
}

// refresh recomputes size and max from n up to the root
// The tree is sorted, so the subtree maximum is always the right child's
func (t *tree) refresh(n *node) {
	for ; n != nil; n = n.parent {
		n.size = n.left.size + n.right.size
		n.max = n.right.max
	}
}

// rebalance rebuilds the highest weight-unbalanced ancestor, if any
// Rebuilding the topmost violator restores balance for the whole path
func (t *tree) rebalance(from *node) {
	var scape *node
	for n := from; n != nil; n = n.parent {
		if !weightBalanced(n) {
			scape = n
		}
	}
	if scape != nil {
		t.rebuildSubtree(scape)
	}
}

// weightBalanced reports whether neither side holds more than three
// quarters of the subtree's leaves
func weightBalanced(n *node) bool {
	if n.leaf() {
		return true
	}
	limit := n.size * 3 / 4
	if limit < 1 {
		limit = 1
	}
	return n.left.size <= limit && n.right.size <= limit
}

// rebuildSubtree flattens n and rebuilds it perfectly balanced, including
// the associated y-trees of every rebuilt internal node
// Ancestors keep their size and max because the entry set is unchanged
func (t *tree) rebuildSubtree(n *node) {
	ents := make([]*entry, 0, n.size)
	collectEntries(n, &ents)
	nn := t.build(ents)
	nn.parent = n.parent
	if n.parent == nil {
		t.root = nn
	} else if n.parent.left == n {
		n.parent.left = nn
	} else {
		n.parent.right = nn
	}
}

// collectEntries appends the subtree's entries in key order
func collectEntries(n *node, out *[]*entry) {
	if n.leaf() {
		*out = append(*out, n.ent)
		return
	}
	collectEntries(n.left, out)
	collectEntries(n.right, out)
}

// build constructs a perfectly balanced subtree over key-sorted entries
func (t *tree) build(ents []*entry) *node {
	if len(ents) == 1 {
		return t.newLeaf(ents[0])
	}
	mid := len(ents) / 2
	n := &node{size: len(ents)}
	n.left = t.build(ents[:mid])
	n.right = t.build(ents[mid:])
	n.left.parent, n.right.parent = n, n
	n.max = n.right.max
	if t.dim == 0 {
		n.assoc = buildAssoc(ents)
	}
	return n
}

// buildAssoc constructs the y-structure over a canonical x-subtree
func buildAssoc(ents []*entry) *tree {
	sorted := make([]*entry, len(ents))
	copy(sorted, ents)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		return a.pt.Y < b.pt.Y || (a.pt.Y == b.pt.Y && a.h < b.h)
	})
	a := &tree{dim: 1}
	a.root = a.build(sorted)
	return a
}

// collectRange appends every handle with lo <= y <= hi
// Same split-node walk as Query, one dimension down
func (t *tree) collectRange(lo, hi int, out *[]Handle) {
	if t.root == nil {
		return
	}
	lok := key{c: lo, h: 0}
	hik := key{c: hi, h: maxHandle}

	v := t.root
	for !v.leaf() {
		m := v.left.max
		if hik.lessEq(m) {
			v = v.left
			continue
		}
		if !lok.lessEq(m) {
			v = v.right
			continue
		}
		break
	}
	inRange := func(n *node) {
		if n.ent.pt.Y >= lo && n.ent.pt.Y <= hi {
			*out = append(*out, n.ent.h)
		}
	}
	if v.leaf() {
		inRange(v)
		return
	}

	n := v.left
	for !n.leaf() {
		if lok.lessEq(n.left.max) {
			collectAll(n.right, out)
			n = n.left
		} else {
			n = n.right
		}
	}
	inRange(n)

	n = v.right
	for !n.leaf() {
		if n.left.max.lessEq(hik) {
			collectAll(n.left, out)
			n = n.right
		} else {
			n = n.left
		}
	}
	inRange(n)
}

// collectAll appends every handle in the subtree
func collectAll(n *node, out *[]Handle) {
	if n.leaf() {
		*out = append(*out, n.ent.h)
		return
	}
	collectAll(n.left, out)
	collectAll(n.right, out)
}
