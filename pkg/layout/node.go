package layout

import (
	"slices"

	"github.com/grindlemire/go-flexbox/internal/layout"
)

// MeasureFunc reports the size of a leaf whose content the engine cannot
// see, such as text. Width and height are the available inner size; the
// modes say how to interpret them.
type MeasureFunc func(n *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// BaselineFunc returns the distance from the top of the node to its first
// baseline. It must not return NaN.
type BaselineFunc func(n *Node, width, height float64) float64

// PrintFunc returns extra text to include for the node in Print output.
type PrintFunc func(n *Node) string

// DirtiedFunc is called when a node transitions from clean to dirty.
type DirtiedFunc func(n *Node)

// Node is an element of the layout tree.
type Node struct {
	style    Style
	layout   layout.Result
	children []*Node
	owner    *Node
	config   *Config
	nodeType NodeType
	context  any

	measureFunc  MeasureFunc
	baselineFunc BaselineFunc
	printFunc    PrintFunc
	dirtiedFunc  DirtiedFunc

	isDirty      bool
	hasNewLayout bool

	// resolvedDimensions caches resolveDimension for the current pass.
	resolvedDimensions [2]Value
}

// NewNode creates a node with its own default config.
func NewNode() *Node {
	return NewNodeWithConfig(DefaultConfig())
}

// NewNodeWithConfig creates a node using cfg. A nil cfg gets a default
// config.
func NewNodeWithConfig(cfg *Config) *Node {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n := &Node{config: cfg}
	n.initDefaults()
	return n
}

func (n *Node) initDefaults() {
	n.style = DefaultStyle()
	if n.config.useWebDefaults {
		n.style = WebDefaultStyle()
	}
	n.layout = layout.NewResult()
	n.hasNewLayout = true
	n.resolvedDimensions = [2]Value{UndefinedValue(), UndefinedValue()}
}

// Config returns the node's config.
func (n *Node) Config() *Config { return n.config }

// SetConfig replaces the node's config.
func (n *Node) SetConfig(cfg *Config) {
	if cfg != nil {
		n.config = cfg
	}
}

// Context returns the host value attached to the node.
func (n *Node) Context() any { return n.context }

// SetContext attaches a host value to the node.
func (n *Node) SetContext(ctx any) { n.context = ctx }

// NodeType returns the node's type.
func (n *Node) NodeType() NodeType { return n.nodeType }

// SetNodeType changes the node's type. Text nodes are never rounded down
// in size.
func (n *Node) SetNodeType(t NodeType) { n.nodeType = t }

// Owner returns the node that owns this one, or nil for roots and shared
// children.
func (n *Node) Owner() *Node { return n.owner }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the child at index i, or nil when i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// HasMeasureFunc reports whether the node measures its own content.
func (n *Node) HasMeasureFunc() bool { return n.measureFunc != nil }

// SetMeasureFunc sets the measure callback. A node with a measure callback
// cannot have children; passing nil removes the callback.
func (n *Node) SetMeasureFunc(fn MeasureFunc) error {
	if fn == nil {
		n.measureFunc = nil
		n.nodeType = NodeTypeDefault
		return nil
	}
	if len(n.children) > 0 {
		n.logger().Error("cannot set measure func", "children", len(n.children), "error", ErrMeasuredNodeChildren)
		return ErrMeasuredNodeChildren
	}
	n.measureFunc = fn
	n.nodeType = NodeTypeText
	return nil
}

// HasBaselineFunc reports whether the node reports its own baseline.
func (n *Node) HasBaselineFunc() bool { return n.baselineFunc != nil }

// SetBaselineFunc sets the baseline callback.
func (n *Node) SetBaselineFunc(fn BaselineFunc) { n.baselineFunc = fn }

// SetPrintFunc sets the callback used by Print.
func (n *Node) SetPrintFunc(fn PrintFunc) { n.printFunc = fn }

// DirtiedFunc returns the dirtied callback.
func (n *Node) DirtiedFunc() DirtiedFunc { return n.dirtiedFunc }

// SetDirtiedFunc sets the callback fired when the node becomes dirty.
func (n *Node) SetDirtiedFunc(fn DirtiedFunc) { n.dirtiedFunc = fn }

// IsDirty reports whether the node needs layout.
func (n *Node) IsDirty() bool { return n.isDirty }

// HasNewLayout reports whether the layout changed since the flag was last
// cleared by the host.
func (n *Node) HasNewLayout() bool { return n.hasNewLayout }

// SetHasNewLayout sets or clears the new layout flag.
func (n *Node) SetHasNewLayout(v bool) { n.hasNewLayout = v }

// Layout getters

func (n *Node) LayoutLeft() float64   { return n.layout.Position[layout.EdgeLeft] }
func (n *Node) LayoutTop() float64    { return n.layout.Position[layout.EdgeTop] }
func (n *Node) LayoutRight() float64  { return n.layout.Position[layout.EdgeRight] }
func (n *Node) LayoutBottom() float64 { return n.layout.Position[layout.EdgeBottom] }
func (n *Node) LayoutWidth() float64  { return n.layout.Dimensions[layout.DimensionWidth] }
func (n *Node) LayoutHeight() float64 { return n.layout.Dimensions[layout.DimensionHeight] }

// LayoutDirection returns the direction the node was laid out with.
func (n *Node) LayoutDirection() Direction { return n.layout.Direction }

// LayoutHadOverflow reports whether children overflowed the node on the
// last layout.
func (n *Node) LayoutHadOverflow() bool { return n.layout.HadOverflow }

// LayoutMargin returns the resolved margin for a physical or logical edge.
func (n *Node) LayoutMargin(edge Edge) float64 { return n.resolvedEdge(&n.layout.Margin, edge) }

// LayoutBorder returns the resolved border for a physical or logical edge.
func (n *Node) LayoutBorder(edge Edge) float64 { return n.resolvedEdge(&n.layout.Border, edge) }

// LayoutPadding returns the resolved padding for a physical or logical edge.
func (n *Node) LayoutPadding(edge Edge) float64 { return n.resolvedEdge(&n.layout.Padding, edge) }

// resolvedEdge maps left/right onto start/end using the layout direction.
// Shorthand edges have no single value and report Undefined.
func (n *Node) resolvedEdge(values *[6]float64, edge Edge) float64 {
	rtl := n.layout.Direction == RTL
	switch edge {
	case EdgeLeft:
		if rtl {
			return values[EdgeEnd]
		}
		return values[EdgeStart]
	case EdgeRight:
		if rtl {
			return values[EdgeStart]
		}
		return values[EdgeEnd]
	case EdgeTop, EdgeBottom, EdgeStart, EdgeEnd:
		return values[edge]
	}
	return Undefined
}

// Free detaches the node from its owner and orphans the children it owns.
// The children themselves are left intact.
func (n *Node) Free() {
	if n.owner != nil {
		n.owner.RemoveChild(n)
		n.owner = nil
	}
	for _, c := range n.children {
		if c.owner == n {
			c.owner = nil
		}
	}
	n.children = nil
}

// FreeRecursive frees the node and every descendant it owns. Shared
// children owned by another tree are skipped.
func (n *Node) FreeRecursive() {
	skipped := 0
	for len(n.children) > skipped {
		child := n.children[skipped]
		if child.owner != n {
			skipped++
			continue
		}
		n.RemoveChild(child)
		child.FreeRecursive()
	}
	n.Free()
}

// Reset restores a detached, childless node to its initial state, keeping
// its config.
func (n *Node) Reset() error {
	if len(n.children) > 0 {
		n.logger().Error("cannot reset node", "error", ErrResetWithChildren)
		return ErrResetWithChildren
	}
	if n.owner != nil {
		n.logger().Error("cannot reset node", "error", ErrResetWithOwner)
		return ErrResetWithOwner
	}
	*n = Node{config: n.config}
	n.initDefaults()
	return nil
}

// Clone returns a shallow copy of the node. The copy references the same
// children and has no owner.
func (n *Node) Clone() *Node {
	c := *n
	c.owner = nil
	c.children = slices.Clone(n.children)
	return &c
}

// CloneRecursive returns a deep copy of the node and the children it owns.
// Shared children are referenced, not copied.
func (n *Node) CloneRecursive() *Node {
	c := n.Clone()
	for i, child := range n.children {
		if child.owner != n {
			continue
		}
		cc := child.CloneRecursive()
		cc.owner = c
		c.children[i] = cc
	}
	return c
}

// cloneChildrenIfNeeded gives the node private copies of children it
// shares with another tree. The first child's owner tells whether the list
// is shared.
func (n *Node) cloneChildrenIfNeeded() {
	if len(n.children) == 0 || n.children[0].owner == n {
		return
	}
	for i, old := range n.children {
		clone := n.cloneChild(old, i)
		clone.owner = n
		n.children[i] = clone
	}
}

func (n *Node) cloneChild(old *Node, i int) *Node {
	if fn := n.config.cloneNodeFunc; fn != nil {
		if c := fn(old, n, i); c != nil {
			return c
		}
	}
	return old.Clone()
}
