package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/mtandon-io/lumentrace/bvh"
	"github.com/mtandon-io/lumentrace/render"
	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/scenes"
	"github.com/urfave/cli"
)

// benchDefaultWidth, benchDefaultHeight and benchDefaultSamples pin the
// frame size a bench run renders at regardless of the named scene's own
// camera defaults, so results across scenes are comparable.
const (
	benchDefaultWidth    = 160
	benchDefaultHeight   = 90
	benchDefaultSamples  = 16
	benchDefaultMaxDepth = 8
)

// Bench renders the named scene at a small fixed resolution and reports
// wall time and primary (camera) rays per second. It writes no output
// file.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("bench: expected exactly one scene name argument")
	}

	name := ctx.Args().First()
	entry, ok := scenes.Get(name)
	if !ok {
		return fmt.Errorf("bench: unknown scene %q (see the scenes command)", name)
	}

	if ctx.IsSet("seed") {
		rng.SetSeed(uint64(ctx.Int64("seed")))
	}

	world := entry.Build()
	world.Camera.
		ImageWidth(benchDefaultWidth).
		ImageHeight(benchDefaultHeight).
		SamplesPerPixel(benchDefaultSamples).
		MaxDepth(benchDefaultMaxDepth)
	applyCameraOverrides(ctx, world.Camera)

	cam, err := world.Camera.Build()
	if err != nil {
		return fmt.Errorf("bench: invalid camera configuration: %w", err)
	}

	tree := bvh.BuildTree(world.Scene, ctx.Int("leaf-size"))

	start := time.Now()
	_, stats, err := render.Render(tree, cam, render.Options{Workers: ctx.Int("workers")}, nil)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	elapsed := time.Since(start)

	primaryRays := int64(cam.ImageWidth) * int64(cam.ImageHeight) * int64(cam.SamplesPerPixel)
	raysPerSec := float64(primaryRays) / elapsed.Seconds()

	logger.Noticef(
		"bench %q: %dx%d, %d spp, %d workers, %s, %.1f primary rays/sec",
		entry.Name, cam.ImageWidth, cam.ImageHeight, cam.SamplesPerPixel, stats.Workers, elapsed, raysPerSec,
	)
	return nil
}
