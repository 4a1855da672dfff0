package scene

import "github.com/mtandon-io/lumentrace/types"

// HitRecord is the canonical geometric result of a ray-primitive
// intersection. UnitNormal always points against the incoming ray; the
// invariant dot(ray.Dir, UnitNormal) <= 0 holds for every HitRecord this
// package produces.
type HitRecord struct {
	T          float64
	Point      types.Point3
	UnitNormal types.Vec3
	FrontFace  bool
	Material   *Material
}

// SetFaceNormal resolves FrontFace and UnitNormal from the primitive's unit
// outwardNormal: FrontFace is true iff the ray arrives from the side
// outwardNormal points towards (dot(r.Dir, outwardNormal) < 0), and
// UnitNormal is outwardNormal, negated when needed to face against the ray.
func (hr *HitRecord) SetFaceNormal(r types.Ray, outwardNormal types.Vec3) {
	hr.FrontFace = r.Dir.Dot(outwardNormal) < 0
	if hr.FrontFace {
		hr.UnitNormal = outwardNormal
	} else {
		hr.UnitNormal = outwardNormal.Negate()
	}
}
