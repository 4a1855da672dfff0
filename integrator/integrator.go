// Package integrator implements the recursive path-tracing color
// evaluation for a single ray: depth-capped recursion through material
// scatter and emission, falling back to a background color on a miss.
package integrator

import (
	"math"

	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

// shadowAcneEpsilon lower-bounds the query interval so a scattered ray
// does not re-intersect the surface it just left.
const shadowAcneEpsilon = 1e-5

// World is the intersectable consumed by RayColor. Both bvh.Tree and
// scene.Scene satisfy it; the renderer passes whichever it was given.
type World interface {
	Intersect(r types.Ray, tRange types.Interval) (scene.HitRecord, bool)
}

// Options carries the camera-level background configuration: a zero
// Options value falls back to the default sky gradient.
type Options struct {
	Background    types.Color
	HasBackground bool
}

var (
	skyWhite = types.XYZ(1.0, 1.0, 1.0)
	skyBlue  = types.XYZ(0.5, 0.7, 1.0)
)

// RayColor evaluates the radiance arriving along r, recursing through at
// most depthLeft bounces: L = emitted + attenuation ⊙ L_scattered. Emitted
// radiance is always added, even when the surface also scatters, so a
// dim light source embedded in a reflective material still contributes.
func RayColor(r types.Ray, depthLeft int, world World, gen *rng.Generator, opts Options) types.Color {
	if depthLeft <= 0 {
		return types.Color{}
	}

	hit, ok := world.Intersect(r, types.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !ok {
		return background(r, opts)
	}

	emitted := hit.Material.Emit()
	result, scattered := hit.Material.Scatter(r, hit, gen)
	if !scattered {
		return emitted
	}

	incoming := RayColor(result.Scattered, depthLeft-1, world, gen, opts)
	return emitted.Add(result.Attenuation.Hadamard(incoming))
}

// background returns the miss color: the caller's flat Background when
// set, otherwise the vertical sky gradient lerp(white, skyBlue, 0.5*y+0.5).
func background(r types.Ray, opts Options) types.Color {
	if opts.HasBackground {
		return opts.Background
	}
	unitDir := r.Dir.Unit()
	t := 0.5*unitDir.Y + 0.5
	return types.Lerp(skyWhite, skyBlue, t)
}
