package terrain

import (
	"fmt"

	"github.com/Faultbox/holo-terrain/pkg/math"
)

// MaxDepth bounds the partition tree so the arena stays small (2^16-1 nodes).
const MaxDepth = 16

// Node is one dividing segment of a partition tree.
type Node struct {
	Start math.Vec2
	End   math.Vec2
}

// Direction returns End - Start.
func (n Node) Direction() math.Vec2 {
	return n.End.Sub(n.Start)
}

// Tree is a complete binary tree of dividing segments stored in heap order: node i has
// its left child at 2i+1, its right child at 2i+2 and its parent at (i-1)/2. The arena
// owns every node; parent links are computed indices and carry no ownership.
type Tree struct {
	Depth int
	Nodes []Node
}

// NewTree allocates a tree with depth levels (2^depth - 1 nodes).
func NewTree(depth int) (*Tree, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDepth, depth, MaxDepth)
	}
	return &Tree{
		Depth: depth,
		Nodes: make([]Node, 1<<depth-1),
	}, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int { return 0 }

// Left returns the index of the left child of node i.
func (t *Tree) Left(i int) int { return 2*i + 1 }

// Right returns the index of the right child of node i.
func (t *Tree) Right(i int) int { return 2*i + 2 }

// Parent returns the parent of node i. ok is false for the root.
func (t *Tree) Parent(i int) (parent int, ok bool) {
	if i <= 0 {
		return 0, false
	}
	return (i - 1) / 2, true
}

// IsLeft reports whether node i is its parent's left child.
func (t *Tree) IsLeft(i int) bool {
	return i > 0 && i%2 == 1
}

// IsLeaf reports whether node i is on the last level.
func (t *Tree) IsLeaf(i int) bool {
	return t.Left(i) >= len(t.Nodes)
}

// Level returns the depth of node i below the root (root is 0).
func (t *Tree) Level(i int) int {
	level := 0
	for n := i + 1; n > 1; n >>= 1 {
		level++
	}
	return level
}
