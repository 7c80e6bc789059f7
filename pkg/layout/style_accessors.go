package layout

// Style setters compare against the current value and mark the node dirty
// only when something changed.

func setStyleField[T any](n *Node, field *T, v T, equal func(a, b T) bool) {
	if equal(*field, v) {
		return
	}
	*field = v
	n.markDirtyAndPropagate()
}

func sameEnum[T comparable](a, b T) bool { return a == b }

func sameValue(a, b Value) bool { return a.Equal(b) }

// Style returns a copy of the node's style.
func (n *Node) Style() Style { return n.style }

// SetStyle replaces the whole style.
func (n *Node) SetStyle(s Style) {
	if n.style.Equal(&s) {
		return
	}
	n.style = s
	n.markDirtyAndPropagate()
}

// CopyStyle copies src's style onto the node.
func (n *Node) CopyStyle(src *Node) { n.SetStyle(src.style) }

func (n *Node) SetDirection(v Direction) { setStyleField(n, &n.style.Direction, v, sameEnum) }
func (n *Node) SetFlexDirection(v FlexDirection) {
	setStyleField(n, &n.style.FlexDirection, v, sameEnum)
}
func (n *Node) SetJustifyContent(v Justify) { setStyleField(n, &n.style.JustifyContent, v, sameEnum) }
func (n *Node) SetAlignContent(v Align)     { setStyleField(n, &n.style.AlignContent, v, sameEnum) }
func (n *Node) SetAlignItems(v Align)       { setStyleField(n, &n.style.AlignItems, v, sameEnum) }
func (n *Node) SetAlignSelf(v Align)        { setStyleField(n, &n.style.AlignSelf, v, sameEnum) }
func (n *Node) SetPositionType(v PositionType) {
	setStyleField(n, &n.style.PositionType, v, sameEnum)
}
func (n *Node) SetFlexWrap(v Wrap)         { setStyleField(n, &n.style.FlexWrap, v, sameEnum) }
func (n *Node) SetOverflow(v Overflow)     { setStyleField(n, &n.style.Overflow, v, sameEnum) }
func (n *Node) SetDisplay(v Display)       { setStyleField(n, &n.style.Display, v, sameEnum) }
func (n *Node) SetFlex(v float64)          { setStyleField(n, &n.style.Flex, v, FloatsEqual) }
func (n *Node) SetFlexGrow(v float64)      { setStyleField(n, &n.style.FlexGrow, v, FloatsEqual) }
func (n *Node) SetFlexShrink(v float64)    { setStyleField(n, &n.style.FlexShrink, v, FloatsEqual) }
func (n *Node) SetAspectRatio(v float64)   { setStyleField(n, &n.style.AspectRatio, v, FloatsEqual) }
func (n *Node) SetFlexBasis(v float64)     { setStyleField(n, &n.style.FlexBasis, Point(v), sameValue) }
func (n *Node) SetFlexBasisPercent(v float64) {
	setStyleField(n, &n.style.FlexBasis, Percent(v), sameValue)
}
func (n *Node) SetFlexBasisAuto() { setStyleField(n, &n.style.FlexBasis, Auto(), sameValue) }

// Edges

func (n *Node) SetPosition(edge Edge, v float64) {
	setStyleField(n, &n.style.Position[edge], Point(v), sameValue)
}
func (n *Node) SetPositionPercent(edge Edge, v float64) {
	setStyleField(n, &n.style.Position[edge], Percent(v), sameValue)
}
func (n *Node) SetMargin(edge Edge, v float64) {
	setStyleField(n, &n.style.Margin[edge], Point(v), sameValue)
}
func (n *Node) SetMarginPercent(edge Edge, v float64) {
	setStyleField(n, &n.style.Margin[edge], Percent(v), sameValue)
}
func (n *Node) SetMarginAuto(edge Edge) {
	setStyleField(n, &n.style.Margin[edge], Auto(), sameValue)
}
func (n *Node) SetPadding(edge Edge, v float64) {
	setStyleField(n, &n.style.Padding[edge], Point(v), sameValue)
}
func (n *Node) SetPaddingPercent(edge Edge, v float64) {
	setStyleField(n, &n.style.Padding[edge], Percent(v), sameValue)
}
func (n *Node) SetBorder(edge Edge, v float64) {
	setStyleField(n, &n.style.Border[edge], Point(v), sameValue)
}

// Dimensions

func (n *Node) SetWidth(v float64) {
	setStyleField(n, &n.style.Dimensions[DimensionWidth], Point(v), sameValue)
}
func (n *Node) SetWidthPercent(v float64) {
	setStyleField(n, &n.style.Dimensions[DimensionWidth], Percent(v), sameValue)
}
func (n *Node) SetWidthAuto() {
	setStyleField(n, &n.style.Dimensions[DimensionWidth], Auto(), sameValue)
}
func (n *Node) SetHeight(v float64) {
	setStyleField(n, &n.style.Dimensions[DimensionHeight], Point(v), sameValue)
}
func (n *Node) SetHeightPercent(v float64) {
	setStyleField(n, &n.style.Dimensions[DimensionHeight], Percent(v), sameValue)
}
func (n *Node) SetHeightAuto() {
	setStyleField(n, &n.style.Dimensions[DimensionHeight], Auto(), sameValue)
}
func (n *Node) SetMinWidth(v float64) {
	setStyleField(n, &n.style.MinDimensions[DimensionWidth], Point(v), sameValue)
}
func (n *Node) SetMinWidthPercent(v float64) {
	setStyleField(n, &n.style.MinDimensions[DimensionWidth], Percent(v), sameValue)
}
func (n *Node) SetMinHeight(v float64) {
	setStyleField(n, &n.style.MinDimensions[DimensionHeight], Point(v), sameValue)
}
func (n *Node) SetMinHeightPercent(v float64) {
	setStyleField(n, &n.style.MinDimensions[DimensionHeight], Percent(v), sameValue)
}
func (n *Node) SetMaxWidth(v float64) {
	setStyleField(n, &n.style.MaxDimensions[DimensionWidth], Point(v), sameValue)
}
func (n *Node) SetMaxWidthPercent(v float64) {
	setStyleField(n, &n.style.MaxDimensions[DimensionWidth], Percent(v), sameValue)
}
func (n *Node) SetMaxHeight(v float64) {
	setStyleField(n, &n.style.MaxDimensions[DimensionHeight], Point(v), sameValue)
}
func (n *Node) SetMaxHeightPercent(v float64) {
	setStyleField(n, &n.style.MaxDimensions[DimensionHeight], Percent(v), sameValue)
}
