package scene

import "github.com/mtandon-io/lumentrace/types"

// Scene is an unordered, owning collection of primitives. Materials are
// value types owned by whichever primitive references them; a Material
// may be shared by many primitives.
type Scene struct {
	Primitives []*Primitive
	bounds     types.AABB
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{bounds: types.EmptyAABB}
}

// Add appends a primitive to the scene and folds its bounds into the
// scene's running AABB.
func (s *Scene) Add(p *Primitive) {
	s.Primitives = append(s.Primitives, p)
	s.bounds = s.bounds.Merge(p.Bounds())
}

// Bounds returns the union of every primitive's AABB.
func (s *Scene) Bounds() types.AABB {
	return s.bounds
}

// Intersect brute-force iterates every primitive, shrinking tRange.Max
// each time a closer hit is found, and returns the closest.
func (s *Scene) Intersect(r types.Ray, tRange types.Interval) (HitRecord, bool) {
	return intersectLeaves(s.Primitives, r, tRange)
}

// DecomposePrimitives recursively flattens the scene's primitives: any
// primitive whose own DecomposePrimitives is non-empty is replaced by its
// children; indivisible primitives are retained as leaves. The result is
// the input to BVH construction.
func (s *Scene) DecomposePrimitives() []*Primitive {
	var out []*Primitive
	for _, p := range s.Primitives {
		out = append(out, decompose(p)...)
	}
	return out
}

func decompose(p *Primitive) []*Primitive {
	children := p.DecomposePrimitives()
	if len(children) == 0 {
		return []*Primitive{p}
	}
	var out []*Primitive
	for _, c := range children {
		out = append(out, decompose(c)...)
	}
	return out
}
