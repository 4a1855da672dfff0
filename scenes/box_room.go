package scenes

import (
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func init() {
	register(Entry{
		Name:        "box-room",
		Description: "a room-sized Box plus a few spheres, exercising Box's six-face decomposition",
		Build:       buildBoxRoom,
	})
}

func buildBoxRoom() World {
	scn := scene.NewScene()

	wall := scene.NewLambertian(types.XYZ(0.7, 0.7, 0.75))
	scn.Add(scene.NewBox(types.XYZ(-5, -5, -15), types.XYZ(5, 5, 5), wall))

	metal := scene.NewMetal(types.XYZ(0.9, 0.9, 0.9), 0.05)
	scn.Add(scene.NewSphere(types.XYZ(-1.5, -3.5, 0), 1.5, metal))

	glass := scene.NewDielectric(1.5)
	scn.Add(scene.NewSphere(types.XYZ(1.5, -3.5, 2), 1.5, glass))

	light := scene.NewDiffuseLight(types.XYZ(1, 0.95, 0.8), 8)
	scn.Add(scene.NewSphere(types.XYZ(0, 4.2, 0), 0.6, light))

	cam := camera.NewBuilder().
		ImageByWidthAndAspectRatio(400, 4.0/3.0).
		Center(types.XYZ(0, 0, -8)).
		LookAt(types.XYZ(0, -1, 0)).
		VerticalFOVDeg(70).
		SamplesPerPixel(80).
		MaxDepth(30).
		Background(types.Color{})

	return World{Scene: scn, Camera: cam}
}
