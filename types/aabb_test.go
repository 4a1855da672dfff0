package types

import "testing"

func TestAABBMergeIdempotence(t *testing.T) {
	a := NewAABB(XYZ(-1, -1, -1), XYZ(1, 1, 1))
	if got := a.Merge(a); got != a {
		t.Fatalf("A.Merge(A) != A: got %+v want %+v", got, a)
	}
	if got := a.Merge(EmptyAABB); got != a {
		t.Fatalf("A.Merge(empty) != A: got %+v want %+v", got, a)
	}
}

func TestAABBMergeContainsSubranges(t *testing.T) {
	a := NewAABB(XYZ(-1, -1, -1), XYZ(0, 0, 0))
	b := NewAABB(XYZ(0, 0, 0), XYZ(2, 3, 4))
	c := a.Merge(b)

	for _, box := range []AABB{a, b} {
		for axis := 0; axis < 3; axis++ {
			if box.Axis(axis).Min < c.Axis(axis).Min || box.Axis(axis).Max > c.Axis(axis).Max {
				t.Fatalf("merged box does not contain subrange on axis %d", axis)
			}
		}
	}
}

func TestSlabTestConsistency(t *testing.T) {
	box := NewAABB(XYZ(-1, -1, -1), XYZ(1, 1, 1))
	rays := []Ray{
		{Origin: XYZ(-5, 0, 0), Dir: XYZ(1, 0, 0)},
		{Origin: XYZ(-5, 5, 0), Dir: XYZ(1, 0, 0)},
		{Origin: XYZ(0, 0, -5), Dir: XYZ(0, 0, 1)},
		{Origin: XYZ(-5, -5, -5), Dir: XYZ(1, 1, 1)},
		{Origin: XYZ(2, 2, 2), Dir: XYZ(-1, -1, -1)},
	}
	for _, r := range rays {
		invDir := XYZ(1/r.Dir.X, 1/r.Dir.Y, 1/r.Dir.Z)
		dirNeg := [3]bool{r.Dir.X < 0, r.Dir.Y < 0, r.Dir.Z < 0}

		got := box.Intersects(r, UniverseInterval)
		want := box.IntersectsOptimized(r, UniverseInterval, invDir, dirNeg)
		if got != want {
			t.Fatalf("slab test mismatch for ray %+v: Intersects=%v IntersectsOptimized=%v", r, got, want)
		}
	}
}

func TestIntervalPadAndMerge(t *testing.T) {
	iv := NewInterval(1, 2)
	padded := iv.PadWith(0.5)
	if padded.Min != 0.5 || padded.Max != 2.5 {
		t.Fatalf("unexpected padded interval: %+v", padded)
	}
	merged := iv.Merge(NewInterval(5, 6))
	if merged.Min != 1 || merged.Max != 6 {
		t.Fatalf("unexpected merged interval: %+v", merged)
	}
}
