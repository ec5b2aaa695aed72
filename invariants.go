package bstree

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree rooted at root:
// keys are strictly ordered (which rules out duplicates), and no node is
// reachable twice. A nil root is a valid, empty tree.
//
// Trees built by Add alone are always valid. Check is meant for trees built
// by hand, and for tests.
func Check[K cmp.Ordered](root *Node[K]) error {
	seen := make(map[*Node[K]]struct{})
	return checkNode(root, nil, nil, seen)
}

// checkNode checks the subtree at n against optional exclusive key bounds.
func checkNode[K cmp.Ordered](n *Node[K], lower, upper *K, seen map[*Node[K]]struct{}) error {
	if n == nil {
		return nil
	}
	if _, ok := seen[n]; ok {
		return fmt.Errorf("%w: node %v reachable more than once", ErrInvariant, n.Key)
	}
	seen[n] = struct{}{}
	if lower != nil && n.Key <= *lower {
		return fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.Key, *lower)
	}
	if upper != nil && n.Key >= *upper {
		return fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.Key, *upper)
	}
	if err := checkNode(n.Left, lower, &n.Key, seen); err != nil {
		return err
	}
	return checkNode(n.Right, &n.Key, upper, seen)
}
