package core

import "testing"

func TestPointOps(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, -5)); got != Pt(4, -3) {
		t.Errorf("Add = %v, want (4,-3)", got)
	}
	if got := Pt(0, 0).DistSq(Pt(3, 4)); got != 25 {
		t.Errorf("DistSq = %d, want 25", got)
	}
	if got := Pt(-2, 1).DistSq(Pt(-2, 1)); got != 0 {
		t.Errorf("DistSq of equal points = %d, want 0", got)
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Pt(5, 5), 3)
	if r.Min != Pt(2, 2) || r.Max != Pt(8, 8) {
		t.Fatalf("RectAround = %v", r)
	}
	if !r.Valid() {
		t.Fatal("bounding rect reported invalid")
	}
	for _, p := range []Point{Pt(2, 2), Pt(8, 8), Pt(5, 5)} {
		if !r.Contains(p) {
			t.Errorf("rect should contain %v", p)
		}
	}
	for _, p := range []Point{Pt(1, 5), Pt(5, 9)} {
		if r.Contains(p) {
			t.Errorf("rect should not contain %v", p)
		}
	}
	if RectAround(Pt(0, 0), -1).Valid() {
		t.Fatal("negative radius rect reported valid")
	}
}
