package layout

import (
	"errors"
	"slices"

	"github.com/grindlemire/go-flexbox/internal/layout"
	"github.com/hashicorp/go-hclog"
)

var (
	// ErrChildHasOwner is returned when inserting a node that already
	// belongs to another tree.
	ErrChildHasOwner = errors.New("child already has an owner")

	// ErrMeasuredNodeChildren is returned when a node would end up with both
	// a measure function and children.
	ErrMeasuredNodeChildren = errors.New("node with a measure function cannot have children")

	// ErrIndexOutOfRange is returned when an insert index is negative or
	// past ChildCount.
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrMarkDirtyWithoutMeasure is returned by MarkDirty on nodes that do
	// not measure their own content.
	ErrMarkDirtyWithoutMeasure = errors.New("only nodes with a measure function can be marked dirty")

	// ErrResetWithChildren is returned by Reset while the node has children.
	ErrResetWithChildren = errors.New("cannot reset a node that still has children")

	// ErrResetWithOwner is returned by Reset while the node is attached to
	// an owner.
	ErrResetWithOwner = errors.New("cannot reset a node that still has an owner")
)

func (n *Node) logger() hclog.Logger {
	return n.config.logger.Named("tree")
}

// InsertChild inserts child at index and takes ownership of it. index may
// equal ChildCount to append.
func (n *Node) InsertChild(child *Node, index int) error {
	if err := n.checkInsert(index); err != nil {
		return err
	}
	if child.owner != nil {
		n.logger().Error("cannot insert child", "index", index, "error", ErrChildHasOwner)
		return ErrChildHasOwner
	}

	n.cloneChildrenIfNeeded()
	n.children = slices.Insert(n.children, index, child)
	child.owner = n
	n.markDirtyAndPropagate()
	return nil
}

// AddChild appends children, taking ownership of each. It stops at the
// first child that cannot be inserted.
func (n *Node) AddChild(children ...*Node) error {
	for _, c := range children {
		if err := n.InsertChild(c, len(n.children)); err != nil {
			return err
		}
	}
	return nil
}

// InsertSharedChild inserts child at index without taking ownership, so
// the child can stay in another tree. The child is left without an owner;
// whichever tree later mutates it clones it first.
func (n *Node) InsertSharedChild(child *Node, index int) error {
	if err := n.checkInsert(index); err != nil {
		return err
	}
	n.children = slices.Insert(n.children, index, child)
	child.owner = nil
	n.markDirtyAndPropagate()
	return nil
}

func (n *Node) checkInsert(index int) error {
	if n.measureFunc != nil {
		n.logger().Error("cannot insert child", "index", index, "error", ErrMeasuredNodeChildren)
		return ErrMeasuredNodeChildren
	}
	if index < 0 || index > len(n.children) {
		n.logger().Error("cannot insert child", "index", index, "count", len(n.children), "error", ErrIndexOutOfRange)
		return ErrIndexOutOfRange
	}
	return nil
}

// releaseChild orphans a detached child and clears its layout, but only if
// n owns it. A shared child still belongs to another tree and is left as is.
func (n *Node) releaseChild(child *Node) {
	if child.owner != n {
		return
	}
	child.layout = layout.NewResult()
	child.owner = nil
}

// RemoveChild removes child from the node. Returns true if it was a child.
//
// When the child list is shared with another tree, the remaining children
// are cloned so the other tree is unaffected.
func (n *Node) RemoveChild(child *Node) bool {
	if len(n.children) == 0 {
		return false
	}

	if n.children[0].owner == n {
		i := slices.Index(n.children, child)
		if i < 0 {
			return false
		}
		n.children = slices.Delete(n.children, i, i+1)
		n.releaseChild(child)
		n.markDirtyAndPropagate()
		return true
	}

	removed := false
	next := 0
	for _, old := range n.children {
		if old == child {
			removed = true
			n.markDirtyAndPropagate()
			continue
		}
		clone := n.cloneChild(old, next)
		clone.owner = n
		n.children[next] = clone
		next++
	}
	clear(n.children[next:])
	n.children = n.children[:next]
	return removed
}

// RemoveAllChildren detaches every child. Owned children are orphaned and
// their layout reset; shared children are only dropped.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}

	for _, c := range n.children {
		n.releaseChild(c)
	}
	n.children = nil
	n.markDirtyAndPropagate()
}

// SetChildren replaces the child list. Previous owned children that are not
// in the new list are orphaned and reset; new children become owned.
func (n *Node) SetChildren(children []*Node) error {
	if len(children) > 0 && n.measureFunc != nil {
		n.logger().Error("cannot set children", "error", ErrMeasuredNodeChildren)
		return ErrMeasuredNodeChildren
	}
	for _, c := range children {
		if c.owner != nil && c.owner != n {
			n.logger().Error("cannot set children", "error", ErrChildHasOwner)
			return ErrChildHasOwner
		}
	}

	if len(children) == 0 {
		if len(n.children) > 0 {
			for _, c := range n.children {
				n.releaseChild(c)
			}
			n.children = nil
			n.markDirtyAndPropagate()
		}
		return nil
	}

	for _, old := range n.children {
		if !slices.Contains(children, old) {
			n.releaseChild(old)
		}
	}
	n.children = slices.Clone(children)
	for _, c := range n.children {
		c.owner = n
	}
	n.markDirtyAndPropagate()
	return nil
}

// MarkDirty forces a node that measures its own content to be measured
// again on the next layout, e.g. after its text changed.
func (n *Node) MarkDirty() error {
	if n.measureFunc == nil {
		n.logger().Error("cannot mark node dirty", "error", ErrMarkDirtyWithoutMeasure)
		return ErrMarkDirtyWithoutMeasure
	}
	n.markDirtyAndPropagate()
	return nil
}

// markDirtyAndPropagate marks the node and its ancestors dirty, stopping at
// the first ancestor that is already dirty.
func (n *Node) markDirtyAndPropagate() {
	if n.isDirty {
		return
	}
	n.setDirty(true)
	n.layout.ComputedFlexBasis = Undefined
	if n.owner != nil {
		n.owner.markDirtyAndPropagate()
	}
}

func (n *Node) setDirty(dirty bool) {
	if dirty == n.isDirty {
		return
	}
	n.isDirty = dirty
	if dirty && n.dirtiedFunc != nil {
		n.dirtiedFunc(n)
	}
}
