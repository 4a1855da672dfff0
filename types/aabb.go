package types

// AABB is an axis-aligned bounding box: the set of points whose x,y,z
// coordinates lie within three per-axis intervals.
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB is the identity element for Merge.
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB builds an AABB from two opposite corners, ordering each axis's
// interval regardless of which corner was passed first.
func NewAABB(a, b Point3) AABB {
	return AABB{
		X: Interval{Min: min(a.X, b.X), Max: max(a.X, b.X)},
		Y: Interval{Min: min(a.Y, b.Y), Max: max(a.Y, b.Y)},
		Z: Interval{Min: min(a.Z, b.Z), Max: max(a.Z, b.Z)},
	}
}

// Axis returns the interval for axis 0 (x), 1 (y) or 2 (z).
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Centroid returns the componentwise midpoint of the box.
func (b AABB) Centroid() Point3 {
	return Point3{b.X.Midpoint(), b.Y.Midpoint(), b.Z.Midpoint()}
}

// SurfaceArea returns the box's total surface area, 2*(xy+xz+yz).
func (b AABB) SurfaceArea() float64 {
	dx, dy, dz := b.X.Size(), b.Y.Size(), b.Z.Size()
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// Merge returns the smallest AABB containing both b and other.
func (b AABB) Merge(other AABB) AABB {
	return AABB{
		X: b.X.Merge(other.X),
		Y: b.Y.Merge(other.Y),
		Z: b.Z.Merge(other.Z),
	}
}

// PadWith widens every axis by p, used to keep zero-thickness boxes (such
// as a parallelogram's bounds) from degenerating in the BVH.
func (b AABB) PadWith(p float64) AABB {
	return AABB{X: b.X.PadWith(p), Y: b.Y.PadWith(p), Z: b.Z.PadWith(p)}
}

// Intersects runs the slab-method test against tRange one axis at a time,
// swapping t0/t1 per axis whenever 1/dir is negative.
func (b AABB) Intersects(r Ray, tRange Interval) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.Dir.Axis(axis)
		iv := b.Axis(axis)
		t0 := (iv.Min - r.Origin.Axis(axis)) * invD
		t1 := (iv.Max - r.Origin.Axis(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}

// IntersectsOptimized is equivalent to Intersects but reuses a
// precomputed invDir and dirNeg (computed once per ray by the caller) to
// pick the near/far plane directly instead of swapping.
func (b AABB) IntersectsOptimized(r Ray, tRange Interval, invDir Vec3, dirNeg [3]bool) bool {
	for axis := 0; axis < 3; axis++ {
		iv := b.Axis(axis)
		near := iv.At(boolToIndex(dirNeg[axis]))
		far := iv.At(1 - boolToIndex(dirNeg[axis]))
		invD := invDir.Axis(axis)
		t0 := (near - r.Origin.Axis(axis)) * invD
		t1 := (far - r.Origin.Axis(axis)) * invD
		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}

func boolToIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
