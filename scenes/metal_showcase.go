package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "metal-showcase",
		Description: "a row of metal spheres with increasing fuzz, plus a dielectric and a Lambertian for contrast",
		Build:       buildMetalShowcase,
	})
}

func buildMetalShowcase() World {
	scn := scene.NewScene()
	ground := scene.NewLambertian(types.XYZ(0.5, 0.5, 0.5))
	scn.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, ground))

	fuzzSteps := []float64{0.0, 0.1, 0.3, 0.6, 1.0}
	for i, fuzz := range fuzzSteps {
		x := -4.0 + 2.0*float64(i)
		metal := scene.NewMetal(types.XYZ(0.8, 0.6, 0.2), fuzz)
		scn.Add(scene.NewSphere(types.XYZ(x, 0, -1), 0.5, metal))
	}

	glass := scene.NewDielectric(1.5)
	scn.Add(scene.NewSphere(types.XYZ(-6, 0, -1), 0.5, glass))

	diffuse := scene.NewLambertian(types.XYZ(0.2, 0.4, 0.8))
	scn.Add(scene.NewSphere(types.XYZ(6, 0, -1), 0.5, diffuse))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(500, 16.0/9.0).
		Center(types.XYZ(0, 2, 6)).
		LookAt(types.XYZ(0, 0, -1)).
		VerticalFOVDeg(40).
		SamplesPerPixel(64).
		MaxDepth(30)

	return World{Scene: scn, Camera: cam}
}
