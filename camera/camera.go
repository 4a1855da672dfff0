// Package camera derives a viewport and per-pixel ray generator from a
// fluent Builder: eye position, look-at/direction, field of view,
// thin-lens defocus and the stratified-sampling jitter consumed by the
// renderer's per-pixel sample loop.
package camera

import (
	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/types"
)

// Camera is the derived, immutable state a Builder resolves to. Render
// workers share one Camera read-only and call Ray concurrently from
// their own *rng.Generator.
type Camera struct {
	ImageWidth  int
	ImageHeight int

	center types.Point3

	pixel00     types.Point3
	pixelDeltaU types.Vec3
	pixelDeltaV types.Vec3

	defocusAngle float64
	defocusDiskU types.Vec3
	defocusDiskV types.Vec3

	SamplesPerPixel int
	MaxDepth        int

	Background    types.Color
	HasBackground bool
}

// Ray generates one stratified camera ray for pixel (x,y): the ray
// origin is sampled from the defocus disk (or exactly Center when
// DefocusAngle is zero) and the target is jittered uniformly within the
// pixel's footprint.
func (c *Camera) Ray(x, y int, gen *rng.Generator) types.Ray {
	dx, dy := gen.InUnitSquare()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Mul(float64(x) + dx)).
		Add(c.pixelDeltaV.Mul(float64(y) + dy))

	origin := c.center
	if c.defocusAngle > 0 {
		p := gen.InUnitDisk()
		origin = c.center.
			Add(c.defocusDiskU.Mul(p.X)).
			Add(c.defocusDiskV.Mul(p.Y))
	}

	return types.Ray{Origin: origin, Dir: pixelSample.Sub(origin)}
}
