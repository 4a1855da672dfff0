package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "dielectric",
		Description: "a single refractive sphere over the sky gradient",
		Build:       buildDielectric,
	})
}

// buildDielectric refracts a ground-sitting sphere through glass.
func buildDielectric() World {
	scn := scene.NewScene()
	ground := scene.NewLambertian(types.XYZ(0.5, 0.5, 0.5))
	glass := scene.NewDielectric(1.5)
	scn.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, ground))
	scn.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, glass))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(400, 400.0/225.0).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		VerticalFOVDeg(90).
		SamplesPerPixel(100).
		MaxDepth(50)

	return World{Scene: scn, Camera: cam}
}
