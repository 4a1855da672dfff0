// Package bvh builds and traverses a linearized bounding volume hierarchy
// over scene primitives, using a surface-area-heuristic bucket builder and
// an iterative near-child-first traversal.
package bvh

import "github.com/mtandon-io/lumentrace/types"

// Node is one entry of the flattened, preorder bounding volume hierarchy.
// A leaf stores FirstPrimitive/NumPrimitives; an interior node stores
// SecondChildIndex and SplitAxis and has NumPrimitives == 0. The left
// child of an interior node is always the node immediately following it
// in the array.
type Node struct {
	Bounds types.AABB

	FirstPrimitive   uint32
	SecondChildIndex uint32
	NumPrimitives    uint32
	SplitAxis        uint8
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.NumPrimitives > 0
}
