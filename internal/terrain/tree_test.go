package terrain

import (
	"errors"
	"testing"
)

func TestNewTree(t *testing.T) {
	for depth, want := range map[int]int{1: 1, 2: 3, 5: 31, MaxDepth: 1<<MaxDepth - 1} {
		tree, err := NewTree(depth)
		if err != nil {
			t.Fatalf("NewTree(%d): %v", depth, err)
		}
		if len(tree.Nodes) != want {
			t.Errorf("NewTree(%d) has %d nodes, want %d", depth, len(tree.Nodes), want)
		}
	}
}

func TestNewTreeInvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -1, MaxDepth + 1} {
		if _, err := NewTree(depth); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("NewTree(%d) err = %v, want ErrInvalidDepth", depth, err)
		}
	}
}

func TestTreeLinks(t *testing.T) {
	tree, _ := NewTree(3)

	if _, ok := tree.Parent(tree.Root()); ok {
		t.Error("root should have no parent")
	}

	for i := 0; i < 3; i++ {
		l, r := tree.Left(i), tree.Right(i)
		if p, ok := tree.Parent(l); !ok || p != i {
			t.Errorf("Parent(Left(%d)) = %d, %v", i, p, ok)
		}
		if p, ok := tree.Parent(r); !ok || p != i {
			t.Errorf("Parent(Right(%d)) = %d, %v", i, p, ok)
		}
		if !tree.IsLeft(l) || tree.IsLeft(r) {
			t.Errorf("IsLeft wrong for children of %d", i)
		}
		if tree.IsLeaf(i) {
			t.Errorf("node %d should not be a leaf", i)
		}
	}
	for i := 3; i < 7; i++ {
		if !tree.IsLeaf(i) {
			t.Errorf("node %d should be a leaf", i)
		}
	}
	if tree.IsLeft(tree.Root()) {
		t.Error("root is nobody's left child")
	}
}

func TestTreeLevel(t *testing.T) {
	tree, _ := NewTree(4)
	want := []int{0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3}
	for i, w := range want {
		if got := tree.Level(i); got != w {
			t.Errorf("Level(%d) = %d, want %d", i, got, w)
		}
	}
}
