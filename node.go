package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Node is a node of a binary search tree. A tree is identified by its root
// node, an empty tree by a nil root.
//
// Some invariants hold for trees built with the functions of this package:
//
//   - Every key in the left subtree of a node is less than the node's key,
//     every key in the right subtree is greater.
//   - No key occurs more than once.
//   - Every node is the child of at most one other node.
//
// Nodes may be built literally or with NewNode, which will not check any of
// these invariants. Use Check to verify them.
type Node[K cmp.Ordered] struct {
	Key   K
	Left  *Node[K]
	Right *Node[K]
}

// NewNode creates a node with the given children already attached. Either
// child may be nil.
func NewNode[K cmp.Ordered](key K, left, right *Node[K]) *Node[K] {
	return &Node[K]{Key: key, Left: left, Right: right}
}

// Leaf creates a node without children.
func Leaf[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key}
}

// IsLeaf reports whether node has no children. node must not be nil.
func IsLeaf[K cmp.Ordered](node *Node[K]) bool {
	return node.Left == nil && node.Right == nil
}

func (node *Node[K]) String() string {
	if node == nil {
		return "-"
	}
	if IsLeaf(node) {
		return fmt.Sprintf("%v", node.Key)
	}
	return fmt.Sprintf("%v(%v,%v)", node.Key, node.Left, node.Right)
}

// Size returns the number of nodes in the tree rooted at node. An empty tree
// has size 0.
func Size[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return 1 + Size(node.Left) + Size(node.Right)
}

// Height returns the number of edges from node down to its deepest leaf.
//
// A leaf has height 0, and so does a nil node. Height therefore cannot tell an
// empty tree from a tree with a single node; clients who care have to check
// for nil themselves.
func Height[K cmp.Ordered](node *Node[K]) int {
	return height(node, 0)
}

func height[K cmp.Ordered](node *Node[K], count int) int {
	if node == nil || IsLeaf(node) {
		return count
	}
	return max(height(node.Left, count+1), height(node.Right, count+1))
}
