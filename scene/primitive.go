package scene

import (
	"math"

	"github.com/mtandon-io/lumentrace/types"
)

// PrimitiveKind closes the set of geometric shapes the renderer knows
// about, dispatched by a type switch in Intersect/Bounds rather than an
// interface vtable.
type PrimitiveKind uint8

const (
	SphereKind PrimitiveKind = iota
	ParallelogramKind
	BoxKind
)

// minParallelogramThickness pads a parallelogram's AABB to avoid a
// zero-thickness box degenerating the BVH.
const minParallelogramThickness = 1e-4

// parallelRayEpsilon is the dot(unitNormal,dir) magnitude below which a
// ray is treated as parallel to a parallelogram's plane.
const parallelRayEpsilon = 1e-9

// Primitive is a tagged union of Sphere, Parallelogram and Box. Only the
// fields relevant to Kind are meaningful; Bounds is always precomputed at
// construction.
type Primitive struct {
	Kind     PrimitiveKind
	Material *Material
	bounds   types.AABB

	// Sphere
	Center types.Point3
	Radius float64

	// Parallelogram: corner Q plus edges U,V. unitNormal and w are
	// derived at construction.
	Q, U, V    types.Vec3
	unitNormal types.Vec3
	w          types.Vec3

	// Box: six parallelogram faces, built at construction so the BVH can
	// see through the box via DecomposePrimitives.
	faces [6]*Primitive
}

// NewSphere builds a sphere primitive centered at center with the given
// radius.
func NewSphere(center types.Point3, radius float64, material *Material) *Primitive {
	rVec := types.Vec3{X: radius, Y: radius, Z: radius}
	return &Primitive{
		Kind:     SphereKind,
		Material: material,
		Center:   center,
		Radius:   radius,
		bounds:   types.NewAABB(center.Sub(rVec), center.Add(rVec)),
	}
}

// NewParallelogram builds a parallelogram spanning corner q and edges
// u, v.
func NewParallelogram(q, u, v types.Vec3, material *Material) *Primitive {
	n := u.Cross(v)
	unitNormal := n.Unit()
	w := n.Mul(1.0 / n.LengthSquared())

	bounds := types.NewAABB(q, q.Add(u).Add(v))
	bounds = bounds.Merge(types.NewAABB(q.Add(u), q.Add(v)))
	bounds = bounds.PadWith(minParallelogramThickness)

	return &Primitive{
		Kind:       ParallelogramKind,
		Material:   material,
		Q:          q,
		U:          u,
		V:          v,
		unitNormal: unitNormal,
		w:          w,
		bounds:     bounds,
	}
}

// NewBox builds an axis-aligned box from two opposite corners, decomposed
// eagerly into six parallelogram faces.
func NewBox(a, b types.Point3, material *Material) *Primitive {
	min := types.MinVec3(a, b)
	max := types.MaxVec3(a, b)

	dx := types.Vec3{X: max.X - min.X}
	dy := types.Vec3{Y: max.Y - min.Y}
	dz := types.Vec3{Z: max.Z - min.Z}

	box := &Primitive{Kind: BoxKind, Material: material}
	box.faces = [6]*Primitive{
		NewParallelogram(types.Vec3{X: min.X, Y: min.Y, Z: max.Z}, dx, dy, material),           // front
		NewParallelogram(types.Vec3{X: max.X, Y: min.Y, Z: max.Z}, dz.Negate(), dy, material),  // right
		NewParallelogram(types.Vec3{X: max.X, Y: min.Y, Z: min.Z}, dx.Negate(), dy, material),  // back
		NewParallelogram(types.Vec3{X: min.X, Y: min.Y, Z: min.Z}, dz, dy, material),           // left
		NewParallelogram(types.Vec3{X: min.X, Y: max.Y, Z: max.Z}, dx, dz.Negate(), material),  // top
		NewParallelogram(types.Vec3{X: min.X, Y: min.Y, Z: min.Z}, dx, dz, material),            // bottom
	}
	bounds := types.NewAABB(min, max)
	for _, f := range box.faces {
		bounds = bounds.Merge(f.bounds)
	}
	box.bounds = bounds
	return box
}

// Bounds returns the primitive's world-space AABB.
func (p *Primitive) Bounds() types.AABB {
	return p.bounds
}

// DecomposePrimitives returns a compound primitive's leaves, or nil for
// an indivisible primitive. Box is the only compound kind.
func (p *Primitive) DecomposePrimitives() []*Primitive {
	if p.Kind != BoxKind {
		return nil
	}
	out := make([]*Primitive, len(p.faces))
	copy(out, p.faces[:])
	return out
}

// Intersect tests the ray against the primitive, returning the closest
// hit within tRange.
func (p *Primitive) Intersect(r types.Ray, tRange types.Interval) (HitRecord, bool) {
	switch p.Kind {
	case SphereKind:
		return p.intersectSphere(r, tRange)
	case ParallelogramKind:
		return p.intersectParallelogram(r, tRange)
	default:
		return intersectLeaves(p.faces[:], r, tRange)
	}
}

func (p *Primitive) intersectSphere(r types.Ray, tRange types.Interval) (HitRecord, bool) {
	oc := r.Origin.Sub(p.Center)
	a := r.Dir.LengthSquared()
	h := r.Dir.Dot(oc)
	c := oc.LengthSquared() - p.Radius*p.Radius

	quarterDisc := h*h - a*c
	if quarterDisc < 0 {
		return HitRecord{}, false
	}
	sqrtDisc := math.Sqrt(quarterDisc)

	root := (-h - sqrtDisc) / a
	if !tRange.Surrounds(root) {
		root = (-h + sqrtDisc) / a
		if !tRange.Surrounds(root) {
			return HitRecord{}, false
		}
	}

	hit := HitRecord{T: root, Point: r.At(root), Material: p.Material}
	outwardNormal := hit.Point.Sub(p.Center).Mul(1 / p.Radius)
	hit.SetFaceNormal(r, outwardNormal)
	return hit, true
}

func (p *Primitive) intersectParallelogram(r types.Ray, tRange types.Interval) (HitRecord, bool) {
	denom := p.unitNormal.Dot(r.Dir)
	if math.Abs(denom) < parallelRayEpsilon {
		return HitRecord{}, false
	}

	t := p.unitNormal.Dot(p.Q.Sub(r.Origin)) / denom
	if !tRange.Surrounds(t) {
		return HitRecord{}, false
	}

	planar := r.At(t).Sub(p.Q)
	alpha := p.w.Dot(planar.Cross(p.V))
	beta := p.w.Dot(p.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return HitRecord{}, false
	}

	hit := HitRecord{T: t, Point: r.At(t), Material: p.Material}
	hit.SetFaceNormal(r, p.unitNormal)
	return hit, true
}

// intersectLeaves brute-forces a ray against a fixed slice of primitives,
// shrinking tRange.Max as closer hits are found. Used by Box (over its
// six faces) and by Scene (over its whole primitive list).
func intersectLeaves(leaves []*Primitive, r types.Ray, tRange types.Interval) (HitRecord, bool) {
	var closest HitRecord
	hitAny := false
	for _, leaf := range leaves {
		if hit, ok := leaf.Intersect(r, tRange); ok {
			hitAny = true
			closest = hit
			tRange.Max = hit.T
		}
	}
	return closest, hitAny
}
