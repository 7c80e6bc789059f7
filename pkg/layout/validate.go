package layout

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-set/v3"
)

var (
	// ErrOwnerMismatch is reported for an owned child whose owner pointer
	// names a different node.
	ErrOwnerMismatch = errors.New("child owner does not match parent")
	// ErrNodeReachableTwice is reported when a node appears twice in the
	// owned part of the tree, which also catches cycles.
	ErrNodeReachableTwice = errors.New("node reachable twice through owned children")
)

// Validate walks the tree rooted at n and reports every broken ownership or
// measure invariant. Shared children are checked but not descended into.
func (n *Node) Validate() error {
	var result *multierror.Error
	seen := set.New[*Node](0)

	var walk func(node *Node, path string)
	walk = func(node *Node, path string) {
		if !seen.Insert(node) {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, ErrNodeReachableTwice))
			return
		}
		if node.measureFunc != nil && len(node.children) > 0 {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, ErrMeasuredNodeChildren))
		}
		for i, child := range node.children {
			childPath := fmt.Sprintf("%s/%d", path, i)
			if child.owner == nil {
				continue
			}
			if child.owner != node {
				result = multierror.Append(result, fmt.Errorf("%s: %w", childPath, ErrOwnerMismatch))
				continue
			}
			walk(child, childPath)
		}
	}
	walk(n, "root")

	return result.ErrorOrNil()
}
