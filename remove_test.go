package bstree

import (
	"errors"
	"slices"
	"testing"
)

func TestRemoveLeaf(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(15, Leaf(10), NewNode(20, nil, Leaf(25)))
	if _, err := Remove(root, 10); err != nil {
		t.Fatalf("Remove(10) failed: %v", err)
	}
	if root.Left != nil {
		t.Errorf("expected left child of root to be removed, is %v", root.Left)
	}
	if _, err := Remove(root, 25); err != nil {
		t.Fatalf("Remove(25) failed: %v", err)
	}
	if root.Right.Right != nil {
		t.Errorf("expected 25 to be removed, tree is %v", root)
	}
	if err := Check(root); err != nil {
		t.Errorf("tree invalid after removal: %v", err)
	}
}

func TestRemoveOneChild(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(15, Leaf(10), NewNode(20, nil, Leaf(25)))
	r, err := Remove(root, 20)
	if err != nil {
		t.Fatalf("Remove(20) failed: %v", err)
	}
	if r != root {
		t.Errorf("expected Remove to return the root")
	}
	if root.Right.Key != 25 || root.Right.Left != nil || root.Right.Right != nil {
		t.Errorf("expected 25 to replace 20 as a leaf, tree is %v", root)
	}
	//
	root = NewNode(15, NewNode(10, NewNode(5, Leaf(3), nil), nil), NewNode(20, nil, Leaf(25)))
	if _, err = Remove(root, 5); err != nil {
		t.Fatalf("Remove(5) failed: %v", err)
	}
	if root.Left.Left.Key != 3 {
		t.Errorf("expected 3 to replace 5, tree is %v", root)
	}
	if err := Check(root); err != nil {
		t.Errorf("tree invalid after removal: %v", err)
	}
	if !slices.Equal(keys(root), []int{3, 10, 15, 20, 25}) {
		t.Errorf("unexpected keys after removal: %v", keys(root))
	}
}

func TestRemoveTwoChildren(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(4,
		Leaf(2),
		NewNode(5,
			nil,
			NewNode(11,
				NewNode(9, Leaf(6), Leaf(10)),
				NewNode(18,
					NewNode(17, NewNode(16, Leaf(20), nil), nil),
					NewNode(24, nil, Leaf(16)),
				),
			),
		),
	)
	if _, err := Remove(root, 11); err != nil {
		t.Fatalf("Remove(11) failed: %v", err)
	}
	if root.Right.Right.Key != 9 {
		t.Errorf("expected 9 to replace 11, is %d", root.Right.Right.Key)
	}
	if root.Right.Right.Right.Key != 10 {
		t.Errorf("expected 10 as right child of 9, is %d", root.Right.Right.Right.Key)
	}
	if root.Right.Right.Right.Right.Key != 18 {
		t.Errorf("expected right subtree of 11 below 10, is %d", root.Right.Right.Right.Right.Key)
	}
	if Search(root, 11) {
		t.Errorf("11 still reachable after removal")
	}
}

func TestRemoveTwoChildrenKeepsValidRightSubtree(t *testing.T) {
	setupTracing(t)
	//
	root := Leaf(50)
	for _, k := range []int{30, 70, 60, 80, 55, 65, 75, 90} {
		if _, err := Add(root, k); err != nil {
			t.Fatalf("Add(%d) failed: %v", k, err)
		}
	}
	if _, err := Remove(root, 70); err != nil {
		t.Fatalf("Remove(70) failed: %v", err)
	}
	if err := Check(root); err != nil {
		t.Fatalf("tree invalid after removal: %v", err)
	}
	if !slices.Equal(keys(root), []int{30, 50, 55, 60, 65, 75, 80, 90}) {
		t.Errorf("unexpected keys after removal: %v", keys(root))
	}
	if root.Right.Key != 60 || FindMax(root.Right.Left).Key != 55 {
		t.Errorf("unexpected shape after removal: %v", root)
	}
}

// Removing a two-children node from the left side of its parent hangs the
// node's left subtree into the parent's right slot.
func TestRemoveTwoChildrenFromLeftSide(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(20, NewNode(10, Leaf(5), Leaf(15)), Leaf(30))
	if _, err := Remove(root, 10); err != nil {
		t.Fatalf("Remove(10) failed: %v", err)
	}
	if root.Right.Key != 5 || root.Right.Right.Key != 15 {
		t.Errorf("expected 5(-,15) as right child of root, tree is %v", root)
	}
	if root.Left.Key != 10 {
		t.Errorf("expected left slot of root to be untouched, is %v", root.Left)
	}
	if err := Check(root); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected resulting tree to be invalid, got %v", err)
	}
}

func TestRemoveNotFound(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(15, Leaf(10), NewNode(20, nil, Leaf(25)))
	before := root.String()
	r, err := Remove(root, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if r != root || root.String() != before {
		t.Errorf("tree modified by failed Remove: %v", root)
	}
	if _, err = Remove[int](nil, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty tree, got %v", err)
	}
}

func TestRemoveRoot(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(15, Leaf(10), Leaf(20))
	before := root.String()
	if _, err := Remove(root, 15); !errors.Is(err, ErrRootRemoval) {
		t.Errorf("expected ErrRootRemoval, got %v", err)
	}
	if root.String() != before {
		t.Errorf("tree modified by failed Remove: %v", root)
	}
}

// A one-child node is replaced on the side its child hangs from, not on the
// side it hangs from its parent.
func TestRemoveOneChildFromOppositeSide(t *testing.T) {
	setupTracing(t)
	//
	root := NewNode(20, Leaf(10), NewNode(30, Leaf(25), nil))
	if _, err := Remove(root, 30); err != nil {
		t.Fatalf("Remove(30) failed: %v", err)
	}
	if root.Left.Key != 25 || root.Right.Key != 30 {
		t.Errorf("expected 25 in left slot of root, tree is %v", root)
	}
	if err := Check(root); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected resulting tree to be invalid, got %v", err)
	}
}
