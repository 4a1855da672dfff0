package render

import (
	"testing"

	"github.com/mtandon-io/lumentrace/bvh"
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func buildTwoSphereScene() *scene.Scene {
	scn := scene.NewScene()
	ground := scene.NewLambertian(types.XYZ(0.8, 0.8, 0.0))
	hero := scene.NewLambertian(types.XYZ(0.1, 0.2, 0.5))
	scn.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, ground))
	scn.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, hero))
	return scn
}

func buildTwoSphereWorld() *bvh.Tree {
	return bvh.BuildTree(buildTwoSphereScene(), bvh.DefaultMaxPrimsPerLeaf)
}

func buildTestCamera(t *testing.T) *camera.Camera {
	cam, err := camera.NewBuilder().
		ImageWidth(32).
		ImageHeight(18).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		SamplesPerPixel(4).
		MaxDepth(10).
		Build()
	if err != nil {
		t.Fatalf("camera build failed: %v", err)
	}
	return cam
}

func TestRenderProducesNonBlackImage(t *testing.T) {
	tree := buildTwoSphereWorld()
	cam := buildTestCamera(t)

	img, stats, err := Render(tree, cam, Options{Workers: 2}, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if img.Width != cam.ImageWidth || img.Height != cam.ImageHeight {
		t.Fatalf("unexpected image dims: %dx%d", img.Width, img.Height)
	}
	if stats.Workers != 2 {
		t.Fatalf("expected 2 workers, got %d", stats.Workers)
	}

	var anyLit bool
	for _, c := range img.Pixels {
		if c.X > 0 || c.Y > 0 || c.Z > 0 {
			anyLit = true
			break
		}
	}
	if !anyLit {
		t.Fatalf("expected at least one lit pixel under the default sky gradient")
	}
}

func TestRenderAcceptsRawSceneAndBuildsBVH(t *testing.T) {
	scn := buildTwoSphereScene()
	cam := buildTestCamera(t)

	img, stats, err := Render(scn, cam, Options{Workers: 2}, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if img.Width != cam.ImageWidth || img.Height != cam.ImageHeight {
		t.Fatalf("unexpected image dims: %dx%d", img.Width, img.Height)
	}
	if stats.Workers != 2 {
		t.Fatalf("expected 2 workers, got %d", stats.Workers)
	}

	var anyLit bool
	for _, c := range img.Pixels {
		if c.X > 0 || c.Y > 0 || c.Z > 0 {
			anyLit = true
			break
		}
	}
	if !anyLit {
		t.Fatalf("expected at least one lit pixel under the default sky gradient")
	}
}

func TestRenderRejectsNilInputs(t *testing.T) {
	cam := buildTestCamera(t)
	if _, _, err := Render(nil, cam, Options{}, nil); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined, got %v", err)
	}

	tree := buildTwoSphereWorld()
	if _, _, err := Render(tree, nil, Options{}, nil); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined, got %v", err)
	}
}

func TestRenderGroundBrighterThanSky(t *testing.T) {
	tree := buildTwoSphereWorld()
	cam, err := camera.NewBuilder().
		ImageWidth(40).
		ImageHeight(22).
		Center(types.XYZ(0, 0, 0)).
		LookAt(types.XYZ(0, 0, -1)).
		SamplesPerPixel(16).
		MaxDepth(20).
		Build()
	if err != nil {
		t.Fatalf("camera build failed: %v", err)
	}

	img, _, err := Render(tree, cam, Options{Workers: 4}, nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var groundSum, skySum float64
	var groundCount, skyCount int
	halfH := img.Height / 2
	skyRegionW := img.Width / 5
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			lum := 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
			if y > halfH {
				groundSum += lum
				groundCount++
			} else if x < skyRegionW {
				skySum += lum
				skyCount++
			}
		}
	}
	groundMean := groundSum / float64(groundCount)
	skyMean := skySum / float64(skyCount)
	if groundMean < 1.5*skyMean {
		t.Fatalf("expected ground region mean luminance >= 1.5x sky region, got ground=%v sky=%v", groundMean, skyMean)
	}
}
