package bvh

import (
	"github.com/mtandon-io/lumentrace/scene"
	"github.com/mtandon-io/lumentrace/types"
)

// initialStackCapacity bounds the traversal stack for typical tree depths;
// it grows automatically for deeper trees.
const initialStackCapacity = 128

// Tree is a built, flattened BVH paired with the primitive order its
// leaves index into.
type Tree struct {
	Nodes      []Node
	Primitives []*scene.Primitive
}

// BuildTree decomposes scn's primitives and builds a BVH over them.
func BuildTree(scn *scene.Scene, maxPrimsPerLeaf int) *Tree {
	nodes, ordered := Build(scn.DecomposePrimitives(), maxPrimsPerLeaf)
	return &Tree{Nodes: nodes, Primitives: ordered}
}

// Bounds returns the root node's bounding box, or an empty box for an
// empty tree.
func (t *Tree) Bounds() types.AABB {
	if len(t.Nodes) == 0 {
		return types.EmptyAABB
	}
	return t.Nodes[0].Bounds
}

// Intersect walks the tree with an iterative near-child-first DFS,
// returning the closest hit within tRange.
func (t *Tree) Intersect(r types.Ray, tRange types.Interval) (scene.HitRecord, bool) {
	if len(t.Nodes) == 0 {
		return scene.HitRecord{}, false
	}

	invDir := types.XYZ(1/r.Dir.X, 1/r.Dir.Y, 1/r.Dir.Z)
	dirNeg := [3]bool{r.Dir.X < 0, r.Dir.Y < 0, r.Dir.Z < 0}

	stack := make([]uint32, 0, initialStackCapacity)
	curr := uint32(0)

	var closest scene.HitRecord
	hitAny := false

	for {
		node := &t.Nodes[curr]
		if node.Bounds.IntersectsOptimized(r, tRange, invDir, dirNeg) {
			if node.IsLeaf() {
				first := node.FirstPrimitive
				last := first + node.NumPrimitives
				for _, p := range t.Primitives[first:last] {
					if hit, ok := p.Intersect(r, tRange); ok {
						hitAny = true
						closest = hit
						tRange.Max = hit.T
					}
				}
			} else {
				left := curr + 1
				right := node.SecondChildIndex
				if dirNeg[node.SplitAxis] {
					stack = append(stack, left)
					curr = right
					continue
				}
				stack = append(stack, right)
				curr = left
				continue
			}
		}

		if len(stack) == 0 {
			break
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}

	return closest, hitAny
}
