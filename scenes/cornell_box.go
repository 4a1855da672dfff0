package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "cornell-box",
		Description: "empty Cornell box, five parallelogram walls plus a parallelogram ceiling light",
		Build:       buildCornellBox,
	})
}

// buildCornellBox is an empty box lit solely by a ceiling DiffuseLight
// against a black background, so every visible photon traces back to
// the light.
func buildCornellBox() World {
	scn := scene.NewScene()

	red := scene.NewLambertian(types.XYZ(0.65, 0.05, 0.05))
	white := scene.NewLambertian(types.XYZ(0.73, 0.73, 0.73))
	green := scene.NewLambertian(types.XYZ(0.12, 0.45, 0.15))
	light := scene.NewDiffuseLight(types.XYZ(1, 1, 1), 15)

	// Right wall (green), left wall (red).
	scn.Add(scene.NewParallelogram(types.XYZ(555, 0, 0), types.XYZ(0, 555, 0), types.XYZ(0, 0, 555), green))
	scn.Add(scene.NewParallelogram(types.XYZ(0, 0, 0), types.XYZ(0, 555, 0), types.XYZ(0, 0, 555), red))

	// Ceiling light, set into the ceiling plane.
	scn.Add(scene.NewParallelogram(types.XYZ(213, 554, 227), types.XYZ(130, 0, 0), types.XYZ(0, 0, 105), light))

	// Floor, ceiling, back wall (white).
	scn.Add(scene.NewParallelogram(types.XYZ(0, 0, 0), types.XYZ(555, 0, 0), types.XYZ(0, 0, 555), white))
	scn.Add(scene.NewParallelogram(types.XYZ(555, 555, 555), types.XYZ(-555, 0, 0), types.XYZ(0, 0, -555), white))
	scn.Add(scene.NewParallelogram(types.XYZ(0, 0, 555), types.XYZ(555, 0, 0), types.XYZ(0, 555, 0), white))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(200, 1.0).
		Center(types.XYZ(278, 278, -800)).
		LookAt(types.XYZ(278, 278, 0)).
		VerticalFOVDeg(40).
		SamplesPerPixel(50).
		MaxDepth(50).
		Background(types.Color{})

	return World{Scene: scn, Camera: cam}
}
