package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/veldware/scenekit/core"
)

func sortHandles(hs []Handle) []Handle {
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

func TestRangeTreeInsertAndQuery(t *testing.T) {
	rt := NewRangeTree()

	h1 := rt.Insert(core.Pt(1, 1))
	h2 := rt.Insert(core.Pt(5, 5))
	h3 := rt.Insert(core.Pt(3, 7))

	if rt.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", rt.Len())
	}

	got := sortHandles(rt.Query(core.Pt(0, 0), core.Pt(10, 10)))
	want := []Handle{h1, h2, h3}
	if len(got) != len(want) {
		t.Fatalf("full query: expected %d handles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("full query: expected %v, got %v", want, got)
			break
		}
	}

	got = rt.Query(core.Pt(0, 0), core.Pt(4, 4))
	if len(got) != 1 || got[0] != h1 {
		t.Errorf("corner query: expected [%d], got %v", h1, got)
	}
}

func TestRangeTreeQueryInclusiveBounds(t *testing.T) {
	rt := NewRangeTree()
	h := rt.Insert(core.Pt(4, 9))

	// The point sits exactly on every queried boundary
	cases := []struct {
		name     string
		min, max core.Point
		hit      bool
	}{
		{"exact", core.Pt(4, 9), core.Pt(4, 9), true},
		{"min corner", core.Pt(4, 9), core.Pt(10, 20), true},
		{"max corner", core.Pt(0, 0), core.Pt(4, 9), true},
		{"x below", core.Pt(5, 0), core.Pt(10, 20), false},
		{"y above", core.Pt(0, 0), core.Pt(10, 8), false},
	}
	for _, tc := range cases {
		got := rt.Query(tc.min, tc.max)
		if tc.hit && (len(got) != 1 || got[0] != h) {
			t.Errorf("%s: expected hit, got %v", tc.name, got)
		}
		if !tc.hit && len(got) != 0 {
			t.Errorf("%s: expected miss, got %v", tc.name, got)
		}
	}
}

func TestRangeTreeInvertedRange(t *testing.T) {
	rt := NewRangeTree()
	rt.Insert(core.Pt(2, 2))

	if got := rt.Query(core.Pt(5, 0), core.Pt(0, 5)); len(got) != 0 {
		t.Errorf("inverted x range: expected empty, got %v", got)
	}
	if got := rt.Query(core.Pt(0, 5), core.Pt(5, 0)); len(got) != 0 {
		t.Errorf("inverted y range: expected empty, got %v", got)
	}
}

func TestRangeTreeEmpty(t *testing.T) {
	rt := NewRangeTree()
	if got := rt.Query(core.Pt(-100, -100), core.Pt(100, 100)); len(got) != 0 {
		t.Errorf("empty tree: expected no handles, got %v", got)
	}
	if rt.Remove(42) {
		t.Error("remove on empty tree should report false")
	}
	if rt.Move(42, core.Pt(1, 1)) {
		t.Error("move on empty tree should report false")
	}
}

func TestRangeTreeMove(t *testing.T) {
	rt := NewRangeTree()
	h := rt.Insert(core.Pt(2, 2))
	rt.Insert(core.Pt(50, 50))

	if !rt.Move(h, core.Pt(20, 20)) {
		t.Fatal("move reported failure for a live handle")
	}

	if got := rt.Query(core.Pt(0, 0), core.Pt(5, 5)); len(got) != 0 {
		t.Errorf("query over old position should be empty, got %v", got)
	}
	got := rt.Query(core.Pt(19, 19), core.Pt(21, 21))
	if len(got) != 1 || got[0] != h {
		t.Errorf("query over new position: expected [%d], got %v", h, got)
	}
	if p, ok := rt.At(h); !ok || p != core.Pt(20, 20) {
		t.Errorf("At after move: got %v, %v", p, ok)
	}
}

func TestRangeTreeRemove(t *testing.T) {
	rt := NewRangeTree()
	h1 := rt.Insert(core.Pt(1, 1))
	h2 := rt.Insert(core.Pt(2, 2))

	if !rt.Remove(h1) {
		t.Fatal("remove reported failure for a live handle")
	}
	if rt.Remove(h1) {
		t.Error("second remove of the same handle should report false")
	}
	if rt.Len() != 1 {
		t.Fatalf("expected 1 point after remove, got %d", rt.Len())
	}
	got := rt.Query(core.Pt(0, 0), core.Pt(5, 5))
	if len(got) != 1 || got[0] != h2 {
		t.Errorf("expected only %d to survive, got %v", h2, got)
	}

	if !rt.Remove(h2) {
		t.Fatal("removing the last point failed")
	}
	if rt.Len() != 0 {
		t.Fatalf("expected empty tree, got %d", rt.Len())
	}
}

func TestRangeTreeDuplicatePoints(t *testing.T) {
	rt := NewRangeTree()
	h1 := rt.Insert(core.Pt(3, 3))
	h2 := rt.Insert(core.Pt(3, 3))
	h3 := rt.Insert(core.Pt(3, 3))

	if h1 == h2 || h2 == h3 {
		t.Fatal("duplicate points must receive distinct handles")
	}
	got := rt.Query(core.Pt(3, 3), core.Pt(3, 3))
	if len(got) != 3 {
		t.Fatalf("expected all 3 duplicates, got %v", got)
	}

	rt.Remove(h2)
	got = rt.Query(core.Pt(3, 3), core.Pt(3, 3))
	if len(got) != 2 {
		t.Fatalf("expected 2 duplicates after remove, got %v", got)
	}
	for _, h := range got {
		if h == h2 {
			t.Error("removed handle still reported")
		}
	}
}

// TestRangeTreeRandomized cross-checks the tree against a brute-force
// point list over a long mixed workload
func TestRangeTreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	rt := NewRangeTree()
	live := make(map[Handle]core.Point)

	randPoint := func() core.Point {
		return core.Pt(rng.Intn(101)-50, rng.Intn(101)-50)
	}
	randLive := func() (Handle, bool) {
		for h := range live {
			return h, true
		}
		return 0, false
	}

	for i := 0; i < 3000; i++ {
		switch op := rng.Intn(10); {
		case op < 4: // insert
			p := randPoint()
			live[rt.Insert(p)] = p

		case op < 6: // move
			if h, ok := randLive(); ok {
				p := randPoint()
				if !rt.Move(h, p) {
					t.Fatalf("op %d: move of live handle %d failed", i, h)
				}
				live[h] = p
			}

		case op < 8: // remove
			if h, ok := randLive(); ok {
				if !rt.Remove(h) {
					t.Fatalf("op %d: remove of live handle %d failed", i, h)
				}
				delete(live, h)
			}

		default: // query
			a, b := randPoint(), randPoint()
			lo := core.Pt(min(a.X, b.X), min(a.Y, b.Y))
			hi := core.Pt(max(a.X, b.X), max(a.Y, b.Y))

			var want []Handle
			for h, p := range live {
				if (core.Rect{Min: lo, Max: hi}).Contains(p) {
					want = append(want, h)
				}
			}
			got := rt.Query(lo, hi)
			if len(got) != len(want) {
				t.Fatalf("op %d: query %v..%v expected %d hits, got %d",
					i, lo, hi, len(want), len(got))
			}
			sortHandles(got)
			sortHandles(want)
			for j := range want {
				if got[j] != want[j] {
					t.Fatalf("op %d: query mismatch at %d: %v vs %v", i, j, got, want)
				}
			}
		}

		if rt.Len() != len(live) {
			t.Fatalf("op %d: length drift, tree %d vs reference %d", i, rt.Len(), len(live))
		}
	}
}
