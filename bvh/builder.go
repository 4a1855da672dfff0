package bvh

import (
	"sort"
	"time"

	"github.com/mtandon-io/lumentrace/log"
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

// numBuckets is the number of equal-width centroid buckets the builder
// partitions a range into when scoring a candidate split axis.
const numBuckets = 32

// DefaultMaxPrimsPerLeaf bounds leaf size even when the SAH estimate
// favors a larger leaf, to keep traversal's brute-force scan short.
const DefaultMaxPrimsPerLeaf = 12

var logger = log.New("bvh")

type bucket struct {
	count  int
	bounds types.AABB
}

type builder struct {
	primitives   []*scene.Primitive
	nodes        []Node
	maxPrimsLeaf int

	nodeCount int
	leafCount int
	maxDepth  int
}

// Build runs the surface-area-heuristic bucket builder over primitives,
// decomposed beforehand via Scene.DecomposePrimitives, and returns the
// flattened preorder node array together with the primitive order the
// leaves index into (the input slice is reordered in place by the build
// and returned as-is for the caller to keep alongside the tree).
func Build(primitives []*scene.Primitive, maxPrimsPerLeaf int) ([]Node, []*scene.Primitive) {
	if maxPrimsPerLeaf <= 0 {
		maxPrimsPerLeaf = DefaultMaxPrimsPerLeaf
	}
	b := &builder{
		primitives:   primitives,
		maxPrimsLeaf: maxPrimsPerLeaf,
	}

	start := time.Now()
	b.partition(0, len(primitives), 0)
	logger.Debugf(
		"bvh build time: %d ms, nodes: %d, leafs: %d, maxDepth: %d, primitives: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.nodeCount, b.leafCount, b.maxDepth, len(primitives),
	)
	return b.nodes, b.primitives
}

// partition builds the subtree over primitives[lo:hi] and returns the
// index of its root in b.nodes.
func (b *builder) partition(lo, hi, depth int) int {
	if depth > b.maxDepth {
		b.maxDepth = depth
	}

	rangeBounds := types.EmptyAABB
	for _, p := range b.primitives[lo:hi] {
		rangeBounds = rangeBounds.Merge(p.Bounds())
	}

	if hi-lo == 1 {
		return b.emitLeaf(lo, hi, rangeBounds)
	}

	centroidBounds := types.EmptyAABB
	for _, p := range b.primitives[lo:hi] {
		c := p.Bounds().Centroid()
		centroidBounds = centroidBounds.Merge(types.NewAABB(c, c))
	}

	bestAxis := -1
	bestSplit := -1
	bestCost := float64(hi - lo)
	bestLeftCount := 0

	for axis := 0; axis < 3; axis++ {
		axisRange := centroidBounds.Axis(axis)
		size := axisRange.Size()
		if size <= 0 {
			continue
		}

		var buckets [numBuckets]bucket
		bucketOf := func(p *scene.Primitive) int {
			offset := (p.Bounds().Centroid().Axis(axis) - axisRange.Min) / size
			idx := int(float64(numBuckets) * offset)
			if idx < 0 {
				idx = 0
			} else if idx > numBuckets-1 {
				idx = numBuckets - 1
			}
			return idx
		}

		for _, p := range b.primitives[lo:hi] {
			idx := bucketOf(p)
			buckets[idx].count++
			buckets[idx].bounds = buckets[idx].bounds.Merge(p.Bounds())
		}

		var prefixCount [numBuckets]int
		var prefixBounds [numBuckets]types.AABB
		running := types.EmptyAABB
		runningCount := 0
		for i := 0; i < numBuckets; i++ {
			runningCount += buckets[i].count
			running = running.Merge(buckets[i].bounds)
			prefixCount[i] = runningCount
			prefixBounds[i] = running
		}

		var suffixCount [numBuckets]int
		var suffixBounds [numBuckets]types.AABB
		running = types.EmptyAABB
		runningCount = 0
		for i := numBuckets - 1; i >= 0; i-- {
			runningCount += buckets[i].count
			running = running.Merge(buckets[i].bounds)
			suffixCount[i] = runningCount
			suffixBounds[i] = running
		}

		for s := 0; s < numBuckets-1; s++ {
			leftCount := prefixCount[s]
			rightCount := suffixCount[s+1]
			if leftCount == 0 || rightCount == 0 {
				continue
			}
			cost := prefixBounds[s].SurfaceArea()*float64(leftCount) +
				suffixBounds[s+1].SurfaceArea()*float64(rightCount)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestSplit = s
				bestLeftCount = leftCount
			}
		}
	}

	if bestAxis < 0 {
		return b.emitLeaf(lo, hi, rangeBounds)
	}

	if bestCost >= float64(hi-lo) && hi-lo <= b.maxPrimsLeaf {
		return b.emitLeaf(lo, hi, rangeBounds)
	}

	axisRange := centroidBounds.Axis(bestAxis)
	size := axisRange.Size()
	bucketOf := func(p *scene.Primitive) int {
		offset := (p.Bounds().Centroid().Axis(bestAxis) - axisRange.Min) / size
		idx := int(float64(numBuckets) * offset)
		if idx < 0 {
			idx = 0
		} else if idx > numBuckets-1 {
			idx = numBuckets - 1
		}
		return idx
	}

	region := b.primitives[lo:hi]
	sort.SliceStable(region, func(i, j int) bool {
		return bucketOf(region[i]) <= bestSplit && bucketOf(region[j]) > bestSplit
	})

	mid := lo + bestLeftCount
	if mid == lo || mid == hi {
		mid = (lo + hi) / 2
	}

	return b.emitInterior(lo, hi, mid, depth, rangeBounds, uint8(bestAxis))
}

func (b *builder) emitLeaf(lo, hi int, bounds types.AABB) int {
	index := len(b.nodes)
	b.nodes = append(b.nodes, Node{
		Bounds:         bounds,
		FirstPrimitive: uint32(lo),
		NumPrimitives:  uint32(hi - lo),
	})
	b.nodeCount++
	b.leafCount++
	return index
}

func (b *builder) emitInterior(lo, hi, mid, depth int, bounds types.AABB, axis uint8) int {
	index := len(b.nodes)
	b.nodes = append(b.nodes, Node{Bounds: bounds, SplitAxis: axis})
	b.nodeCount++

	b.partition(lo, mid, depth+1)
	secondChild := b.partition(mid, hi, depth+1)

	b.nodes[index].SecondChildIndex = uint32(secondChild)
	return index
}
