package bstree

import (
	"cmp"
	"fmt"
)

// Add inserts key into the tree rooted at root and returns root.
//
// The new key is attached as a leaf at the first free slot on its search
// path. If key is already present, Add returns ErrDuplicateKey and leaves the
// tree untouched. root must not be nil; a tree is started with Leaf or NewNode.
func Add[K cmp.Ordered](root *Node[K], key K) (*Node[K], error) {
	assert(root != nil, "cannot add a key to a nil tree")
	node := root
	for {
		if key == node.Key {
			return root, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
		if key > node.Key {
			if node.Right == nil {
				node.Right = Leaf(key)
				T().Debugf("bstree: added %v as right child of %v", key, node.Key)
				return root, nil
			}
			node = node.Right
			continue
		}
		if node.Left == nil {
			node.Left = Leaf(key)
			T().Debugf("bstree: added %v as left child of %v", key, node.Key)
			return root, nil
		}
		node = node.Left
	}
}

// Search reports whether key is present in the tree rooted at root.
// Searching an empty tree always yields false.
func Search[K cmp.Ordered](root *Node[K], key K) bool {
	for node := root; node != nil; {
		if node.Key == key {
			return true
		}
		if key > node.Key {
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return false
}

// FindMax returns the rightmost node of the tree rooted at node, i.e. the
// node with the largest key. node must not be nil.
func FindMax[K cmp.Ordered](node *Node[K]) *Node[K] {
	assert(node != nil, "cannot find maximum of a nil tree")
	for node.Right != nil {
		node = node.Right
	}
	return node
}

// FindMin returns the leftmost node of the tree rooted at node, i.e. the
// node with the smallest key. node must not be nil.
func FindMin[K cmp.Ordered](node *Node[K]) *Node[K] {
	assert(node != nil, "cannot find minimum of a nil tree")
	for node.Left != nil {
		node = node.Left
	}
	return node
}
