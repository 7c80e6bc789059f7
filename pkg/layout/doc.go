// Package layout implements a flexbox layout engine over a tree of nodes.
//
// Build a tree with [NewNode] and [Node.InsertChild], set style properties
// through the node's setters, then call [Node.CalculateLayout] on the root.
// Results are read back with LayoutLeft, LayoutTop, LayoutWidth and
// LayoutHeight, relative to the owner's border box.
//
//	root := layout.NewNode()
//	root.SetFlexDirection(layout.Row)
//	root.SetWidth(100)
//	root.SetHeight(100)
//
//	a, b := layout.NewNode(), layout.NewNode()
//	a.SetFlexGrow(1)
//	b.SetFlexGrow(1)
//	root.AddChild(a, b)
//
//	root.CalculateLayout(layout.Undefined, layout.Undefined, layout.LTR)
//	// a and b are each 50 wide
//
// Leaves whose content the engine cannot see, such as text, report their
// size through a [MeasureFunc]. Results are cached per node; after a style
// change only the changed node and its ancestors are recomputed. Call
// [Node.MarkDirty] when content behind a measure function changes.
//
// A tree is not safe for concurrent use. Nodes sharing a [Config] must not
// be laid out concurrently.
package layout
