package render

// Options configures a single render invocation. A zero Options uses
// every field's documented default.
type Options struct {
	// Workers is the number of row-worker goroutines. <=0 defaults to
	// runtime.NumCPU().
	Workers int

	// Gamma is not read by render.Render, which is gamma-agnostic and
	// always produces linear radiance; gamma is applied only when the
	// image is written with ppm.Encode.
	Gamma float64

	// BVHLeafSize bounds primitives per leaf when Render must build a BVH
	// itself (world passed in as a raw *scene.Scene). <=0 defaults to
	// bvh.DefaultMaxPrimsPerLeaf. Ignored when world is already a
	// *bvh.Tree.
	BVHLeafSize int
}

// Stats summarizes one completed render.
type Stats struct {
	RenderTimeNanos int64
	Workers         int
	RowsPerWorker   []int
	ImageWidth      int
	ImageHeight     int
}
