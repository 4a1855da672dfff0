package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "sky-sphere",
		Description: "single Lambertian sphere under the default sky gradient",
		Build:       buildSkySphere,
	})
}

// buildSkySphere is a single radius-0.5 Lambertian sphere under a
// pinhole camera with the default sky background.
func buildSkySphere() World {
	scn := scene.NewScene()
	ground := scene.NewLambertian(types.XYZ(0.5, 0.5, 0.5))
	scn.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, ground))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(200, 200.0/112.0).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		VerticalFOVDeg(90).
		SamplesPerPixel(100).
		MaxDepth(50)

	return World{Scene: scn, Camera: cam}
}
