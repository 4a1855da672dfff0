package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "bvh-stress",
		Description: "hundreds of randomly placed spheres, for BVH-vs-brute-force regression and benchmarking",
		Build:       buildBVHStress,
	})
}

// buildBVHStress places 500 randomly positioned spheres of random radii
// in [0.05,0.5]. The layout is reproducible (fixed seed) so repeated
// benchmark runs are comparable.
func buildBVHStress() World {
	const sphereCount = 500
	const layoutSeed = 20240607

	scn := scene.NewScene()
	gen := rng.NewGenerator(layoutSeed)
	for i := 0; i < sphereCount; i++ {
		center := gen.Vec3(-5, 5)
		radius := gen.Range(0.05, 0.5)
		albedo := gen.Vec3(0.05, 0.95)
		mat := scene.NewLambertian(albedo)
		scn.Add(scene.NewSphere(center, radius, mat))
	}

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(400, 1.0).
		Center(types.XYZ(0, 0, 10)).
		LookAt(types.XYZ(0, 0, 0)).
		VerticalFOVDeg(60).
		SamplesPerPixel(32).
		MaxDepth(20)

	return World{Scene: scn, Camera: cam}
}
