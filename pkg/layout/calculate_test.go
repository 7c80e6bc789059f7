package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shoenig/test/must"
)

// box is a node's laid out border box relative to its owner.
type box struct {
	Left, Top, Width, Height float64
}

func boxOf(n *Node) box {
	return box{n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight()}
}

func approx() must.Setting {
	return must.Cmp(cmpopts.EquateApprox(0, 1e-4))
}

// sized returns a node with a fixed size. Undefined leaves a dimension auto.
func sized(w, h float64) *Node {
	n := NewNode()
	if !IsUndefined(w) {
		n.SetWidth(w)
	}
	if !IsUndefined(h) {
		n.SetHeight(h)
	}
	return n
}

// wrapRow returns a wrapping 100x100 row with the given align-content.
func wrapRow(alignContent Align) *Node {
	n := sized(100, 100)
	n.SetFlexDirection(Row)
	n.SetFlexWrap(WrapWrap)
	n.SetAlignContent(alignContent)
	return n
}

func grow(f float64) *Node {
	n := NewNode()
	n.SetFlexGrow(f)
	return n
}

func TestCalculateLayout(t *testing.T) {
	type tc struct {
		build     func() (root *Node, children []*Node)
		direction Direction
		wantRoot  box
		want      []box
	}

	tests := map[string]tc{
		"flex grow splits row evenly": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				return root, []*Node{grow(1), grow(1)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 50, 100}, {50, 0, 50, 100}},
		},
		"justify center column": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetJustifyContent(JustifyCenter)
				return root, []*Node{sized(Undefined, 20), sized(Undefined, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 30, 100, 20}, {0, 50, 100, 20}},
		},
		"justify space between row": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				root.SetJustifyContent(JustifySpaceBetween)
				return root, []*Node{sized(10, Undefined), sized(10, Undefined), sized(10, Undefined)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 10, 100}, {45, 0, 10, 100}, {90, 0, 10, 100}},
		},
		"justify space evenly row": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				root.SetJustifyContent(JustifySpaceEvenly)
				return root, []*Node{sized(20, 20), sized(20, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{20, 0, 20, 20}, {60, 0, 20, 20}},
		},
		"align items center": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				root.SetAlignItems(AlignCenter)
				return root, []*Node{sized(20, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 40, 20, 20}},
		},
		"align self end overrides container": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				child := sized(20, 20)
				child.SetAlignSelf(AlignEnd)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{80, 0, 20, 20}},
		},
		"padding and margin": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetPadding(EdgeAll, 10)
				child := grow(1)
				child.SetMargin(EdgeAll, 5)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{15, 15, 70, 70}},
		},
		"border offsets children": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetBorder(EdgeLeft, 4)
				root.SetBorder(EdgeTop, 6)
				return root, []*Node{sized(Undefined, 10)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{4, 6, 96, 10}},
		},
		"flex shrink": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				a, b := sized(80, Undefined), sized(80, Undefined)
				a.SetFlexShrink(1)
				b.SetFlexShrink(1)
				return root, []*Node{a, b}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 50, 100}, {50, 0, 50, 100}},
		},
		"max width freezes growth": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				a := grow(1)
				a.SetMaxWidth(30)
				return root, []*Node{a, grow(1)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 30, 100}, {30, 0, 70, 100}},
		},
		"wrap starts a new line": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				root.SetFlexWrap(WrapWrap)
				return root, []*Node{sized(60, 20), sized(60, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 60, 20}, {0, 20, 60, 20}},
		},
		"wrap reverse stacks lines from the cross end": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				root.SetFlexWrap(WrapReverse)
				return root, []*Node{sized(60, 20), sized(60, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 80, 60, 20}, {0, 60, 60, 20}},
		},
		"align content center": {
			build: func() (*Node, []*Node) {
				root := wrapRow(AlignCenter)
				return root, []*Node{sized(60, 20), sized(60, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 30, 60, 20}, {0, 50, 60, 20}},
		},
		"align content space between": {
			build: func() (*Node, []*Node) {
				root := wrapRow(AlignSpaceBetween)
				return root, []*Node{sized(60, 20), sized(60, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 60, 20}, {0, 80, 60, 20}},
		},
		"align content space around": {
			build: func() (*Node, []*Node) {
				root := wrapRow(AlignSpaceAround)
				return root, []*Node{sized(60, 20), sized(60, 20)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 15, 60, 20}, {0, 65, 60, 20}},
		},
		"align content stretch grows lines": {
			build: func() (*Node, []*Node) {
				root := wrapRow(AlignStretch)
				return root, []*Node{sized(60, Undefined), sized(60, Undefined)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 60, 50}, {0, 50, 60, 50}},
		},
		"absolute with leading insets": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				child := sized(50, 50)
				child.SetPositionType(PositionAbsolute)
				child.SetPosition(EdgeTop, 10)
				child.SetPosition(EdgeLeft, 10)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{10, 10, 50, 50}},
		},
		"absolute with trailing insets": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				child := sized(30, 30)
				child.SetPositionType(PositionAbsolute)
				child.SetPosition(EdgeRight, 10)
				child.SetPosition(EdgeBottom, 20)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{60, 50, 30, 30}},
		},
		"absolute sized by opposite insets": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				child := NewNode()
				child.SetPositionType(PositionAbsolute)
				child.SetPosition(EdgeLeft, 10)
				child.SetPosition(EdgeRight, 10)
				child.SetPosition(EdgeTop, 0)
				child.SetPosition(EdgeBottom, 0)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{10, 0, 80, 100}},
		},
		"aspect ratio from width": {
			build: func() (*Node, []*Node) {
				root := sized(200, 200)
				child := sized(100, Undefined)
				child.SetAspectRatio(2)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 200, 200},
			want:     []box{{0, 0, 100, 50}},
		},
		"percent sizes": {
			build: func() (*Node, []*Node) {
				root := sized(200, 100)
				root.SetFlexDirection(Row)
				child := NewNode()
				child.SetWidthPercent(50)
				child.SetHeightPercent(50)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 200, 100},
			want:     []box{{0, 0, 100, 50}},
		},
		"display none takes no space": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				hidden := grow(1)
				hidden.SetDisplay(DisplayNone)
				return root, []*Node{grow(1), hidden}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 100, 100}, {0, 0, 0, 0}},
		},
		"rtl row starts at the right": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				return root, []*Node{sized(20, Undefined)}
			},
			direction: RTL,
			wantRoot:  box{0, 0, 100, 100},
			want:      []box{{80, 0, 20, 100}},
		},
		"row reverse": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(RowReverse)
				return root, []*Node{sized(20, Undefined), sized(30, Undefined)}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{80, 0, 20, 100}, {50, 0, 30, 100}},
		},
		"auto margin pushes to end": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				child := sized(20, 20)
				child.SetMarginAuto(EdgeLeft)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{80, 0, 20, 20}},
		},
		"auto margins center": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				root.SetFlexDirection(Row)
				child := sized(20, 20)
				child.SetMarginAuto(EdgeLeft)
				child.SetMarginAuto(EdgeRight)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{40, 0, 20, 20}},
		},
		"relative offsets": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				child := sized(Undefined, 20)
				child.SetPosition(EdgeLeft, 10)
				child.SetPosition(EdgeTop, 5)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{10, 5, 100, 20}},
		},
		"static ignores insets": {
			build: func() (*Node, []*Node) {
				root := sized(100, 100)
				child := sized(Undefined, 20)
				child.SetPositionType(PositionStatic)
				child.SetPosition(EdgeLeft, 10)
				child.SetPosition(EdgeTop, 5)
				return root, []*Node{child}
			},
			wantRoot: box{0, 0, 100, 100},
			want:     []box{{0, 0, 100, 20}},
		},
		"measured leaf sizes auto root": {
			build: func() (*Node, []*Node) {
				root := sized(100, Undefined)
				text := NewNode()
				must.NoError(t, text.SetMeasureFunc(textMeasure(30, 10)))
				return root, []*Node{text}
			},
			wantRoot: box{0, 0, 100, 10},
			want:     []box{{0, 0, 100, 10}},
		},
		"pixel rounding keeps edges adjacent": {
			build: func() (*Node, []*Node) {
				root := sized(100, 10)
				root.SetFlexDirection(Row)
				return root, []*Node{grow(1), grow(1), grow(1)}
			},
			wantRoot: box{0, 0, 100, 10},
			want:     []box{{0, 0, 33, 10}, {33, 0, 34, 10}, {67, 0, 33, 10}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, children := tt.build()
			must.NoError(t, root.AddChild(children...))

			direction := tt.direction
			if direction == DirectionInherit {
				direction = LTR
			}
			root.CalculateLayout(Undefined, Undefined, direction)

			must.Eq(t, tt.wantRoot, boxOf(root), approx())
			got := make([]box, len(children))
			for i, c := range children {
				got[i] = boxOf(c)
			}
			must.Eq(t, tt.want, got, approx())
		})
	}
}

func TestCalculateLayout_OwnerSize(t *testing.T) {
	root := NewNode()
	child := grow(1)
	must.NoError(t, root.AddChild(child))

	root.CalculateLayout(100, 50, LTR)
	must.Eq(t, box{0, 0, 100, 50}, boxOf(root), approx())
	must.Eq(t, box{0, 0, 100, 50}, boxOf(child), approx())

	root.CalculateLayout(200, 80, LTR)
	must.Eq(t, box{0, 0, 200, 80}, boxOf(root), approx())
	must.Eq(t, box{0, 0, 200, 80}, boxOf(child), approx())
}

func TestCalculateLayout_MultiLineStretchColumn(t *testing.T) {
	root := sized(100, 100)
	root.SetFlexWrap(WrapWrap)

	a := sized(Undefined, 60)
	b := sized(Undefined, 60)
	b.SetMargin(EdgeLeft, 10)
	must.NoError(t, root.AddChild(a, b))

	root.CalculateLayout(Undefined, Undefined, LTR)

	// Re-laying out a stretched child of a column adds its cross margin to
	// the measured height.
	must.Eq(t, box{0, 0, 0, 60}, boxOf(a), approx())
	must.Eq(t, box{10, 0, 0, 70}, boxOf(b), approx())
}

func TestCalculateLayout_OverflowScroll(t *testing.T) {
	type tc struct {
		overflow Overflow
		want     box
	}

	tests := map[string]tc{
		"visible grows with content": {overflow: OverflowVisible, want: box{0, 0, 100, 150}},
		"hidden grows with content":  {overflow: OverflowHidden, want: box{0, 0, 100, 150}},
		"scroll stays in bounds":     {overflow: OverflowScroll, want: box{0, 0, 100, 100}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := sized(100, 100)
			root.SetFlexDirection(Row)
			root.SetAlignItems(AlignStart)

			scroller := sized(50, Undefined)
			scroller.SetFlexGrow(1)
			scroller.SetOverflow(tt.overflow)
			content := sized(50, 150)
			content.SetFlexGrow(1)
			must.NoError(t, scroller.AddChild(content))
			must.NoError(t, root.AddChild(scroller))

			root.CalculateLayout(Undefined, Undefined, LTR)

			must.Eq(t, tt.want, boxOf(scroller), approx())
			must.Eq(t, box{0, 0, 50, 150}, boxOf(content), approx())
		})
	}
}

func TestCalculateLayout_WebFlexBasis(t *testing.T) {
	type tc struct {
		webFlexBasis bool
		want         float64
	}

	tests := map[string]tc{
		"cached basis survives an owner resize": {webFlexBasis: false, want: 50},
		"basis recomputed every pass":           {webFlexBasis: true, want: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SetExperimentalFeatureEnabled(FeatureWebFlexBasis, tt.webFlexBasis)

			root := NewNodeWithConfig(cfg)
			root.SetFlexDirection(Row)
			root.SetWidth(100)
			root.SetHeight(20)
			child := NewNodeWithConfig(cfg)
			child.SetFlexBasisPercent(50)
			must.NoError(t, root.AddChild(child))

			root.CalculateLayout(Undefined, Undefined, LTR)
			must.Eq(t, 50.0, child.LayoutWidth(), approx())

			// Only the root is dirtied, so the child's basis is reused unless
			// it is recomputed on every pass.
			root.SetWidth(200)
			root.CalculateLayout(Undefined, Undefined, LTR)
			must.Eq(t, 200.0, root.LayoutWidth(), approx())
			must.Eq(t, tt.want, child.LayoutWidth(), approx())
		})
	}
}

func TestCalculateLayout_Baseline(t *testing.T) {
	root := sized(100, 100)
	root.SetFlexDirection(Row)
	root.SetAlignItems(AlignBaseline)

	a, b := sized(20, 20), sized(20, 20)
	a.SetBaselineFunc(func(n *Node, w, h float64) float64 { return 15 })
	must.NoError(t, root.AddChild(a, b))

	root.CalculateLayout(Undefined, Undefined, LTR)

	must.Eq(t, box{0, 5, 20, 20}, boxOf(a), approx())
	must.Eq(t, box{20, 0, 20, 20}, boxOf(b), approx())
}

func TestCalculateLayout_BaselineNaNPanics(t *testing.T) {
	root := sized(100, 100)
	root.SetFlexDirection(Row)
	root.SetAlignItems(AlignBaseline)

	child := sized(20, 20)
	child.SetBaselineFunc(func(n *Node, w, h float64) float64 { return Undefined })
	must.NoError(t, root.AddChild(child))

	defer func() {
		must.NotNil(t, recover())
	}()
	root.CalculateLayout(Undefined, Undefined, LTR)
	t.Fatal("expected a panic")
}

func TestCalculateLayout_HadOverflow(t *testing.T) {
	root := sized(100, 100)
	root.SetFlexDirection(Row)
	wide := sized(150, 10)
	must.NoError(t, root.AddChild(wide))

	root.CalculateLayout(Undefined, Undefined, LTR)
	must.True(t, root.LayoutHadOverflow())

	wide.SetWidth(50)
	root.CalculateLayout(Undefined, Undefined, LTR)
	must.False(t, root.LayoutHadOverflow())
}

func TestCalculateLayout_MeasureModes(t *testing.T) {
	type call struct {
		wm, hm MeasureMode
	}
	var calls []call

	root := sized(100, 100)
	root.SetAlignItems(AlignStart)
	text := NewNode()
	must.NoError(t, text.SetMeasureFunc(func(n *Node, w float64, wm MeasureMode, h float64, hm MeasureMode) Size {
		calls = append(calls, call{wm, hm})
		must.Eq(t, 100.0, w)
		return Size{Width: 40, Height: 10}
	}))
	must.NoError(t, root.AddChild(text))

	root.CalculateLayout(Undefined, Undefined, LTR)

	must.SliceNotEmpty(t, calls)
	must.Eq(t, MeasureModeAtMost, calls[0].wm)
	must.Eq(t, box{0, 0, 40, 10}, boxOf(text), approx())
}

func TestCalculateLayout_HasNewLayout(t *testing.T) {
	root := sized(100, 100)
	child := sized(Undefined, 10)
	must.NoError(t, root.AddChild(child))

	root.CalculateLayout(Undefined, Undefined, LTR)
	must.True(t, root.HasNewLayout())
	must.True(t, child.HasNewLayout())

	root.SetHasNewLayout(false)
	child.SetHasNewLayout(false)
	child.SetHeight(20)
	root.CalculateLayout(Undefined, Undefined, LTR)

	must.True(t, root.HasNewLayout())
	must.True(t, child.HasNewLayout())
	must.Eq(t, 20.0, child.LayoutHeight())
}
