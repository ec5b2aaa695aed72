package bstree

import (
	"cmp"
	"fmt"
)

// Remove deletes key from the tree rooted at root and returns root.
//
// If key is not present, Remove returns ErrNotFound and the tree is left
// untouched. The root node itself cannot be removed this way, as there is no
// parent to re-attach its children to: Remove returns ErrRootRemoval and the
// client has to drop or rebuild the tree.
//
// The node to delete is unlinked from its parent according to its shape:
//
//   - A leaf is cut off from the parent. The side is derived by comparing
//     keys, so this relies on the tree being a valid BST.
//   - A node with one child is replaced by that child. The child is put into
//     the parent's slot on the same side as the child hangs from the removed
//     node (a left child goes to parent.Left, a right child to parent.Right).
//   - For a node with two children, its right subtree is hung below the
//     maximum of its left subtree, and the left subtree then replaces the
//     node as the parent's *right* child.
//
// Please note that the last two cases do not look at which side of the
// parent the removed node was on. If a two-children node was a left child, the
// parent's right subtree is overwritten and the parent's left slot still
// refers to the removed node. The same goes for a one-child node hanging from
// the opposite side of its parent. Check will report the resulting
// trees as invalid.
func Remove[K cmp.Ordered](root *Node[K], key K) (*Node[K], error) {
	node, parent := locate(root, key, nil)
	if node == nil {
		return root, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if parent == nil {
		return root, fmt.Errorf("%w: %v", ErrRootRemoval, key)
	}
	T().Debugf("bstree: removing %v from parent %v", key, parent.Key)
	unlink(node, parent)
	return root, nil
}

// locate finds the node carrying key together with its parent. If key is
// not present, both return values are nil. The parent of the root is nil.
func locate[K cmp.Ordered](node *Node[K], key K, parent *Node[K]) (*Node[K], *Node[K]) {
	if node == nil {
		return nil, nil
	}
	if node.Key == key {
		return node, parent
	}
	if key > node.Key {
		return locate(node.Right, key, node)
	}
	return locate(node.Left, key, node)
}

func unlink[K cmp.Ordered](node, parent *Node[K]) {
	switch {
	case IsLeaf(node):
		if node.Key > parent.Key {
			parent.Right = nil
		} else {
			parent.Left = nil
		}
	case node.Left != nil && node.Right != nil:
		pred := FindMax(node.Left)
		pred.Right = node.Right
		parent.Right = node.Left
	case node.Left != nil:
		parent.Left = node.Left
	default:
		parent.Right = node.Right
	}
}
