package bstree

import "cmp"

// RotateRight rotates the subtree rooted at node to the right and returns
// the new root of the subtree, which is node's former left child.
//
//	      b             a
//	     / \           / \
//	    a   e   ===>  c   b
//	   / \               / \
//	  c   d             d   e
//
// The in-order sequence of keys is unchanged. node.Left must not be nil.
// Clients have to re-attach the returned node in place of node.
func RotateRight[K cmp.Ordered](node *Node[K]) *Node[K] {
	assert(node != nil && node.Left != nil, "cannot rotate right without a left child")
	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node
	return pivot
}

// RotateLeft rotates the subtree rooted at node to the left and returns
// the new root of the subtree, which is node's former right child.
//
//	    a                 b
//	   / \               / \
//	  c   b     ===>    a   e
//	     / \           / \
//	    d   e         c   d
//
// The in-order sequence of keys is unchanged. node.Right must not be nil.
// Clients have to re-attach the returned node in place of node.
func RotateLeft[K cmp.Ordered](node *Node[K]) *Node[K] {
	assert(node != nil && node.Right != nil, "cannot rotate left without a right child")
	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node
	return pivot
}
