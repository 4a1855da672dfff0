package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mtandon-io/lumentrace/bvh"
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/ppm"
	"github.com/mtandon-io/lumentrace/progress"
	"github.com/mtandon-io/lumentrace/render"
	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/scenes"
	"github.com/urfave/cli"
)

// RenderFlags are shared between the render and bench commands: both
// build a scene and layer CLI overrides onto its default camera.
var RenderFlags = []cli.Flag{
	cli.IntFlag{Name: "width", Usage: "frame width in pixels (0 keeps the scene default)"},
	cli.IntFlag{Name: "height", Usage: "frame height in pixels (0 keeps the scene default)"},
	cli.IntFlag{Name: "samples", Usage: "samples per pixel (0 keeps the scene default)"},
	cli.IntFlag{Name: "depth", Usage: "max recursion depth (0 keeps the scene default)"},
	cli.Float64Flag{Name: "defocus-angle", Usage: "defocus cone angle in degrees (camera aperture)"},
	cli.Int64Flag{Name: "seed", Usage: "fixed RNG seed for reproducible renders"},
	cli.IntFlag{Name: "workers", Usage: "number of render worker goroutines (0 uses all CPUs)"},
	cli.IntFlag{Name: "leaf-size", Value: bvh.DefaultMaxPrimsPerLeaf, Usage: "max primitives per BVH leaf"},
}

// RenderOutputFlags augments RenderFlags with the flags only the render
// command needs (bench never writes a file).
var RenderOutputFlags = append(append([]cli.Flag{}, RenderFlags...),
	cli.Float64Flag{Name: "gamma", Value: ppm.DefaultGamma, Usage: "gamma applied when encoding the PPM output"},
	cli.StringFlag{Name: "out, o", Value: "render.ppm", Usage: "output PPM file path"},
)

// Render builds the named scene, applies CLI camera overrides, runs the
// renderer and writes the resulting PPM file.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("render: expected exactly one scene name argument")
	}

	name := ctx.Args().First()
	entry, ok := scenes.Get(name)
	if !ok {
		return fmt.Errorf("render: unknown scene %q (see the scenes command)", name)
	}

	if ctx.IsSet("seed") {
		rng.SetSeed(uint64(ctx.Int64("seed")))
	}

	world := entry.Build()
	applyCameraOverrides(ctx, world.Camera)

	cam, err := world.Camera.Build()
	if err != nil {
		return fmt.Errorf("render: invalid camera configuration: %w", err)
	}

	logger.Noticef("building BVH for scene %q (%d primitives)", entry.Name, len(world.Scene.Primitives))
	tree := bvh.BuildTree(world.Scene, ctx.Int("leaf-size"))

	bar := progress.New(cam.ImageHeight, fmt.Sprintf("rendering %s", entry.Name))

	img, stats, err := render.Render(tree, cam, render.Options{Workers: ctx.Int("workers")}, bar)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Infof("render stats: %+v", stats)

	out, err := os.Create(ctx.String("out"))
	if err != nil {
		return fmt.Errorf("render: creating output file: %w", err)
	}
	defer out.Close()

	if err := ppm.Encode(out, img, ctx.Float64("gamma")); err != nil {
		return fmt.Errorf("render: encoding PPM: %w", err)
	}

	logger.Noticef("wrote %s", ctx.String("out"))
	return nil
}

// applyCameraOverrides layers the camera flags from RenderFlags onto a
// scene's default camera.Builder. Width, height, samples and depth apply
// only when positive, so 0 (or leaving the flag out) keeps the scene
// default; defocus-angle applies whenever it is passed, since 0 is a
// valid pinhole setting.
func applyCameraOverrides(ctx *cli.Context, b *camera.Builder) {
	if w := ctx.Int("width"); w > 0 {
		b.ImageWidth(w)
	}
	if h := ctx.Int("height"); h > 0 {
		b.ImageHeight(h)
	}
	if s := ctx.Int("samples"); s > 0 {
		b.SamplesPerPixel(s)
	}
	if d := ctx.Int("depth"); d > 0 {
		b.MaxDepth(d)
	}
	if ctx.IsSet("defocus-angle") {
		b.DefocusAngleDeg(ctx.Float64("defocus-angle"))
	}
}
