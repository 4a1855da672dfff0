package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "defocus",
		Description: "near and far spheres with a wide defocus angle for depth-of-field blur",
		Build:       buildDefocus,
	})
}

// buildDefocus puts the look-at sphere in perfect focus at distance 5;
// the second sphere sits at distance 20 and should show visibly more
// defocus blur.
func buildDefocus() World {
	scn := scene.NewScene()
	near := scene.NewLambertian(types.XYZ(0.7, 0.3, 0.3))
	far := scene.NewLambertian(types.XYZ(0.3, 0.3, 0.7))
	ground := scene.NewLambertian(types.XYZ(0.4, 0.6, 0.4))
	scn.Add(scene.NewSphere(types.XYZ(0, -1000.5, -5), 1000, ground))
	scn.Add(scene.NewSphere(types.XYZ(0, 0, -5), 1, near))
	scn.Add(scene.NewSphere(types.XYZ(3, 1, -20), 2, far))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(400, 16.0/9.0).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -5)).
		VerticalFOVDeg(30).
		FocusDistance(5).
		DefocusAngleDeg(10).
		SamplesPerPixel(100).
		MaxDepth(50)

	return World{Scene: scn, Camera: cam}
}
