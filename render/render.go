// Package render implements the parallel pixel-sampling loop: a fixed
// pool of row workers, each owning one *rng.Generator, pulls row chunks
// off a channel and averages samples into a shared, disjointly-written
// ppm.Image.
package render

import (
	"runtime"
	"sync"
	"time"

	"github.com/mtandon-io/lumentrace/bvh"
	"github.com/mtandon-io/lumentrace/camera"
	"github.com/mtandon-io/lumentrace/integrator"
	"github.com/mtandon-io/lumentrace/log"
	"github.com/mtandon-io/lumentrace/ppm"
	"github.com/mtandon-io/lumentrace/progress"
	"github.com/mtandon-io/lumentrace/rng"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

var logger = log.New("render")

// rowChunkCeiling bounds how many row-ranges get handed out: chunkRows
// = max(1, imageH/rowChunkCeiling).
const rowChunkCeiling = 1024

type rowRange struct {
	y0, y1 int
}

// Render draws cam through world into a new ppm.Image, running
// cam.SamplesPerPixel samples per pixel and averaging them. bar may be
// nil; when non-nil, CompleteIteration is called once per completed row.
// If world is a raw *scene.Scene rather than an already-accelerated
// *bvh.Tree, Render builds a BVH over it before rendering.
func Render(world integrator.World, cam *camera.Camera, opts Options, bar *progress.Bar) (*ppm.Image, Stats, error) {
	if world == nil {
		return nil, Stats{}, ErrSceneNotDefined
	}
	if cam == nil {
		return nil, Stats{}, ErrCameraNotDefined
	}

	if scn, ok := world.(*scene.Scene); ok {
		leafSize := opts.BVHLeafSize
		if leafSize <= 0 {
			leafSize = bvh.DefaultMaxPrimsPerLeaf
		}
		logger.Noticef("world is a raw scene, building BVH over %d primitives", len(scn.Primitives))
		world = bvh.BuildTree(scn, leafSize)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := ppm.NewImage(cam.ImageWidth, cam.ImageHeight)

	chunk := cam.ImageHeight / rowChunkCeiling
	if chunk < 1 {
		chunk = 1
	}

	rowsCh := make(chan rowRange)
	go func() {
		for y := 0; y < cam.ImageHeight; y += chunk {
			y1 := y + chunk
			if y1 > cam.ImageHeight {
				y1 = cam.ImageHeight
			}
			rowsCh <- rowRange{y0: y, y1: y1}
		}
		close(rowsCh)
	}()

	intOpts := integrator.Options{
		Background:    cam.Background,
		HasBackground: cam.HasBackground,
	}

	rowsPerWorker := make([]int, workers)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerIdx int) {
			defer wg.Done()
			gen := rng.NewGenerator(rng.NextSeed())
			for rr := range rowsCh {
				renderRows(img, cam, world, gen, intOpts, rr)
				rowsPerWorker[workerIdx] += rr.y1 - rr.y0
				if bar != nil {
					for i := 0; i < rr.y1-rr.y0; i++ {
						bar.CompleteIteration()
					}
				}
			}
		}(w)
	}
	wg.Wait()

	elapsed := time.Since(start)
	logger.Noticef("rendered %dx%d in %s (%d samples/pixel, %d workers)",
		cam.ImageWidth, cam.ImageHeight, elapsed, cam.SamplesPerPixel, workers)

	return img, Stats{
		RenderTimeNanos: elapsed.Nanoseconds(),
		Workers:         workers,
		RowsPerWorker:   rowsPerWorker,
		ImageWidth:      cam.ImageWidth,
		ImageHeight:     cam.ImageHeight,
	}, nil
}

func renderRows(img *ppm.Image, cam *camera.Camera, world integrator.World, gen *rng.Generator, opts integrator.Options, rr rowRange) {
	invSamples := 1.0 / float64(cam.SamplesPerPixel)
	for y := rr.y0; y < rr.y1; y++ {
		for x := 0; x < cam.ImageWidth; x++ {
			var sum types.Color
			for s := 0; s < cam.SamplesPerPixel; s++ {
				r := cam.Ray(x, y, gen)
				sum = sum.Add(integrator.RayColor(r, cam.MaxDepth, world, gen, opts))
			}
			img.Set(x, y, sum.Mul(invSamples))
		}
	}
}
