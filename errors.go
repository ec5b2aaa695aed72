package bstree

import "errors"

var (
	// ErrDuplicateKey signals that a key is already present in the tree.
	ErrDuplicateKey = errors.New("bstree: duplicate key")
	// ErrNotFound signals that a key to remove is not present in the tree.
	ErrNotFound = errors.New("bstree: key not found")
	// ErrRootRemoval signals an attempt to remove the root node through Remove.
	// The root has no parent to re-attach its children to; clients own the
	// root reference and have to drop it themselves.
	ErrRootRemoval = errors.New("bstree: cannot remove root node")
	// ErrInvariant signals a violated structural invariant, as reported by Check.
	ErrInvariant = errors.New("bstree: invariant violated")
)
