package bvh

import (
	"math"
	"testing"

	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

func buildStressScene(n int) *scene.Scene {
	scn := scene.NewScene()
	mat := scene.NewLambertian(types.XYZ(0.5, 0.5, 0.5))
	seed := uint32(12345)
	next := func() float64 {
		seed = 1_664_525*seed + 1_013_904_223
		return float64(seed>>8) / float64(1<<24)
	}
	for i := 0; i < n; i++ {
		center := types.XYZ(next()*40-20, next()*40-20, next()*40-20)
		scn.Add(scene.NewSphere(center, 0.3+0.5*next(), mat))
	}
	return scn
}

func TestBVHMatchesBruteForce(t *testing.T) {
	scn := buildStressScene(500)
	tree := BuildTree(scn, DefaultMaxPrimsPerLeaf)

	seed := uint32(777)
	next := func() float64 {
		seed = 1_664_525*seed + 1_013_904_223
		return float64(seed>>8) / float64(1<<24)
	}

	for i := 0; i < 300; i++ {
		origin := types.XYZ(next()*60-30, next()*60-30, next()*60-30)
		dir := types.XYZ(next()*2-1, next()*2-1, next()*2-1).Unit()
		r := types.Ray{Origin: origin, Dir: dir}

		bvhHit, bvhOK := tree.Intersect(r, types.UniverseInterval)
		bruteHit, bruteOK := scn.Intersect(r, types.UniverseInterval)

		if bvhOK != bruteOK {
			t.Fatalf("ray %d: bvh hit=%v brute hit=%v", i, bvhOK, bruteOK)
		}
		if bvhOK && math.Abs(bvhHit.T-bruteHit.T) > 1e-9 {
			t.Fatalf("ray %d: bvh t=%v brute t=%v", i, bvhHit.T, bruteHit.T)
		}
	}
}

func TestBVHPreorderLayout(t *testing.T) {
	scn := buildStressScene(200)
	tree := BuildTree(scn, DefaultMaxPrimsPerLeaf)

	for i, node := range tree.Nodes {
		if node.IsLeaf() {
			continue
		}
		left := uint32(i) + 1
		if node.SecondChildIndex <= left {
			t.Fatalf("node %d: second child %d not after left child %d", i, node.SecondChildIndex, left)
		}
		if int(node.SecondChildIndex) >= len(tree.Nodes) {
			t.Fatalf("node %d: second child %d out of range", i, node.SecondChildIndex)
		}
	}

	expectedNodes := 2*countLeaves(tree.Nodes) - 1
	if len(tree.Nodes) > expectedNodes {
		t.Fatalf("node count %d exceeds 2*leaves-1 = %d", len(tree.Nodes), expectedNodes)
	}
}

func countLeaves(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		if node.IsLeaf() {
			n++
		}
	}
	return n
}

func TestBVHLeafContiguity(t *testing.T) {
	scn := buildStressScene(150)
	tree := BuildTree(scn, DefaultMaxPrimsPerLeaf)

	covered := make([]bool, len(tree.Primitives))
	for _, node := range tree.Nodes {
		if !node.IsLeaf() {
			continue
		}
		first := int(node.FirstPrimitive)
		last := first + int(node.NumPrimitives)
		if first < 0 || last > len(tree.Primitives) {
			t.Fatalf("leaf range [%d,%d) out of bounds for %d primitives", first, last, len(tree.Primitives))
		}
		for idx := first; idx < last; idx++ {
			if covered[idx] {
				t.Fatalf("primitive %d claimed by more than one leaf", idx)
			}
			covered[idx] = true
		}
	}
	for idx, ok := range covered {
		if !ok {
			t.Fatalf("primitive %d not covered by any leaf", idx)
		}
	}
}

func TestBVHRootBoundsContainAllPrimitives(t *testing.T) {
	scn := buildStressScene(100)
	tree := BuildTree(scn, DefaultMaxPrimsPerLeaf)
	root := tree.Bounds()

	for _, p := range tree.Primitives {
		pb := p.Bounds()
		for axis := 0; axis < 3; axis++ {
			if pb.Axis(axis).Min < root.Axis(axis).Min-1e-9 || pb.Axis(axis).Max > root.Axis(axis).Max+1e-9 {
				t.Fatalf("primitive bounds not contained in root bounds on axis %d", axis)
			}
		}
	}
}
