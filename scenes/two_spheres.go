package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "two-spheres",
		Description: "ground plane sphere plus a small hero sphere, both Lambertian",
		Build:       buildTwoSpheres,
	})
}

// buildTwoSpheres pairs a large ground sphere with a small hero sphere.
func buildTwoSpheres() World {
	scn := scene.NewScene()
	ground := scene.NewLambertian(types.XYZ(0.8, 0.8, 0.0))
	hero := scene.NewLambertian(types.XYZ(0.1, 0.2, 0.5))
	scn.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, ground))
	scn.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, hero))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(400, 400.0/225.0).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		VerticalFOVDeg(90).
		SamplesPerPixel(100).
		MaxDepth(50)

	return World{Scene: scn, Camera: cam}
}
