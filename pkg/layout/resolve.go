package layout

import "math"

// Axis tables, indexed by FlexDirection.
var (
	leadingEdge  = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	trailingEdge = [4]Edge{EdgeBottom, EdgeTop, EdgeRight, EdgeLeft}
	axisDim      = [4]Dimension{DimensionHeight, DimensionHeight, DimensionWidth, DimensionWidth}
)

func isRow(d FlexDirection) bool    { return d == Row || d == RowReverse }
func isColumn(d FlexDirection) bool { return d == Column || d == ColumnReverse }

// resolveFlexDirection swaps the row axes for right-to-left text.
func resolveFlexDirection(d FlexDirection, dir Direction) FlexDirection {
	if dir == RTL {
		switch d {
		case Row:
			return RowReverse
		case RowReverse:
			return Row
		}
	}
	return d
}

func flexDirectionCross(d FlexDirection, dir Direction) FlexDirection {
	if isColumn(d) {
		return resolveFlexDirection(Row, dir)
	}
	return Column
}

func (n *Node) isAbsolute() bool { return n.style.PositionType == PositionAbsolute }

// Insets only move relatively positioned nodes; static nodes ignore them.
func (n *Node) hasInsets() bool { return n.style.PositionType != PositionStatic }

func (n *Node) resolveDirection(owner Direction) Direction {
	if n.style.Direction == DirectionInherit {
		if owner > DirectionInherit {
			return owner
		}
		return LTR
	}
	return n.style.Direction
}

// Positions

func (n *Node) isLeadingPositionDefined(axis FlexDirection) bool {
	if !n.hasInsets() {
		return false
	}
	return (isRow(axis) && n.style.Position.Computed(EdgeStart, UndefinedValue()).IsDefined()) ||
		n.style.Position.Computed(leadingEdge[axis], UndefinedValue()).IsDefined()
}

func (n *Node) isTrailingPositionDefined(axis FlexDirection) bool {
	if !n.hasInsets() {
		return false
	}
	return (isRow(axis) && n.style.Position.Computed(EdgeEnd, UndefinedValue()).IsDefined()) ||
		n.style.Position.Computed(trailingEdge[axis], UndefinedValue()).IsDefined()
}

func (n *Node) leadingPosition(axis FlexDirection, axisSize float64) float64 {
	if !n.hasInsets() {
		return 0
	}
	if isRow(axis) {
		if v := n.style.Position.Computed(EdgeStart, UndefinedValue()); v.IsDefined() {
			return v.Resolve(axisSize)
		}
	}
	v := n.style.Position.Computed(leadingEdge[axis], UndefinedValue()).Resolve(axisSize)
	if IsUndefined(v) {
		return 0
	}
	return v
}

func (n *Node) trailingPosition(axis FlexDirection, axisSize float64) float64 {
	if !n.hasInsets() {
		return 0
	}
	if isRow(axis) {
		if v := n.style.Position.Computed(EdgeEnd, UndefinedValue()); v.IsDefined() {
			return v.Resolve(axisSize)
		}
	}
	v := n.style.Position.Computed(trailingEdge[axis], UndefinedValue()).Resolve(axisSize)
	if IsUndefined(v) {
		return 0
	}
	return v
}

// relativePosition is the offset applied by relative insets: the leading
// inset if set, otherwise the negated trailing inset.
func (n *Node) relativePosition(axis FlexDirection, axisSize float64) float64 {
	if n.isLeadingPositionDefined(axis) {
		return n.leadingPosition(axis, axisSize)
	}
	return -n.trailingPosition(axis, axisSize)
}

// Margins

func resolveMargin(v Value, ownerSize float64) float64 {
	if v.IsAuto() {
		return 0
	}
	return v.Resolve(ownerSize)
}

func (n *Node) leadingMargin(axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && n.style.Margin[EdgeStart].IsDefined() {
		return resolveMargin(n.style.Margin[EdgeStart], widthSize)
	}
	return resolveMargin(n.style.Margin.Computed(leadingEdge[axis], Point(0)), widthSize)
}

func (n *Node) trailingMargin(axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && n.style.Margin[EdgeEnd].IsDefined() {
		return resolveMargin(n.style.Margin[EdgeEnd], widthSize)
	}
	return resolveMargin(n.style.Margin.Computed(trailingEdge[axis], Point(0)), widthSize)
}

func (n *Node) marginForAxis(axis FlexDirection, widthSize float64) float64 {
	return n.leadingMargin(axis, widthSize) + n.trailingMargin(axis, widthSize)
}

// marginLeadingValue returns the raw style value, used to detect auto
// margins.
func (n *Node) marginLeadingValue(axis FlexDirection) Value {
	if isRow(axis) && n.style.Margin[EdgeStart].IsDefined() {
		return n.style.Margin[EdgeStart]
	}
	return n.style.Margin[leadingEdge[axis]]
}

func (n *Node) marginTrailingValue(axis FlexDirection) Value {
	if isRow(axis) && n.style.Margin[EdgeEnd].IsDefined() {
		return n.style.Margin[EdgeEnd]
	}
	return n.style.Margin[trailingEdge[axis]]
}

func (n *Node) isLeadingMarginAuto(axis FlexDirection) bool {
	return n.marginLeadingValue(axis).IsAuto()
}

func (n *Node) isTrailingMarginAuto(axis FlexDirection) bool {
	return n.marginTrailingValue(axis).IsAuto()
}

// Borders and padding are never negative.

func (n *Node) leadingBorder(axis FlexDirection) float64 {
	if isRow(axis) {
		if v := n.style.Border[EdgeStart]; v.IsDefined() && v.Amount >= 0 {
			return v.Amount
		}
	}
	return nonNegative(n.style.Border.Computed(leadingEdge[axis], Point(0)).Amount)
}

func (n *Node) trailingBorder(axis FlexDirection) float64 {
	if isRow(axis) {
		if v := n.style.Border[EdgeEnd]; v.IsDefined() && v.Amount >= 0 {
			return v.Amount
		}
	}
	return nonNegative(n.style.Border.Computed(trailingEdge[axis], Point(0)).Amount)
}

func (n *Node) leadingPadding(axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && n.style.Padding[EdgeStart].IsDefined() {
		if v := n.style.Padding[EdgeStart].Resolve(widthSize); v >= 0 {
			return v
		}
	}
	return nonNegative(n.style.Padding.Computed(leadingEdge[axis], Point(0)).Resolve(widthSize))
}

func (n *Node) trailingPadding(axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && n.style.Padding[EdgeEnd].IsDefined() {
		if v := n.style.Padding[EdgeEnd].Resolve(widthSize); v >= 0 {
			return v
		}
	}
	return nonNegative(n.style.Padding.Computed(trailingEdge[axis], Point(0)).Resolve(widthSize))
}

func (n *Node) leadingPaddingAndBorder(axis FlexDirection, widthSize float64) float64 {
	return n.leadingPadding(axis, widthSize) + n.leadingBorder(axis)
}

func (n *Node) trailingPaddingAndBorder(axis FlexDirection, widthSize float64) float64 {
	return n.trailingPadding(axis, widthSize) + n.trailingBorder(axis)
}

func (n *Node) paddingAndBorderForAxis(axis FlexDirection, widthSize float64) float64 {
	return n.leadingPaddingAndBorder(axis, widthSize) + n.trailingPaddingAndBorder(axis, widthSize)
}

// nonNegative maps NaN and negative values to 0.
func nonNegative(v float64) float64 {
	if IsUndefined(v) || v < 0 {
		return 0
	}
	return v
}

// Flex factors

func (n *Node) resolveFlexGrow() float64 {
	if n.owner == nil {
		return 0
	}
	if !IsUndefined(n.style.FlexGrow) {
		return n.style.FlexGrow
	}
	if !IsUndefined(n.style.Flex) && n.style.Flex > 0 {
		return n.style.Flex
	}
	return 0
}

func (n *Node) resolveFlexShrink() float64 {
	if n.owner == nil {
		return 0
	}
	if !IsUndefined(n.style.FlexShrink) {
		return n.style.FlexShrink
	}
	web := n.config.useWebDefaults
	if !web && !IsUndefined(n.style.Flex) && n.style.Flex < 0 {
		return -n.style.Flex
	}
	if web {
		return 1
	}
	return 0
}

func (n *Node) isFlexible() bool {
	return !n.isAbsolute() && (n.resolveFlexGrow() != 0 || n.resolveFlexShrink() != 0)
}

// resolveFlexBasis returns the flex basis style value, expanding the flex
// shorthand when no basis was set.
func (n *Node) resolveFlexBasis() Value {
	if b := n.style.FlexBasis; b.Unit != UnitAuto && b.Unit != UnitUndefined {
		return b
	}
	if !IsUndefined(n.style.Flex) && n.style.Flex > 0 {
		if n.config.useWebDefaults {
			return Auto()
		}
		return Point(0)
	}
	return Auto()
}

// Dimensions

// resolveDimension collapses a dimension to max when max equals min.
func (n *Node) resolveDimension() {
	for _, d := range [2]Dimension{DimensionWidth, DimensionHeight} {
		if max := n.style.MaxDimensions[d]; max.IsDefined() && max.Equal(n.style.MinDimensions[d]) {
			n.resolvedDimensions[d] = max
		} else {
			n.resolvedDimensions[d] = n.style.Dimensions[d]
		}
	}
}

func (n *Node) isStyleDimDefined(axis FlexDirection, ownerSize float64) bool {
	v := n.resolvedDimensions[axisDim[axis]]
	switch v.Unit {
	case UnitAuto, UnitUndefined:
		return false
	case UnitPoint:
		return v.Amount >= 0
	case UnitPercent:
		return v.Amount >= 0 && !IsUndefined(ownerSize)
	}
	return true
}

func (n *Node) isLayoutDimDefined(axis FlexDirection) bool {
	v := n.layout.MeasuredDimensions[axisDim[axis]]
	return !IsUndefined(v) && v >= 0
}

func (n *Node) measured(axis FlexDirection) float64 {
	return n.layout.MeasuredDimensions[axisDim[axis]]
}

func (n *Node) dimWithMargin(axis FlexDirection, widthSize float64) float64 {
	return n.measured(axis) + n.marginForAxis(axis, widthSize)
}

// boundAxisWithinMinAndMax applies the max clamp first, then the min clamp.
func (n *Node) boundAxisWithinMinAndMax(axis FlexDirection, value, axisSize float64) float64 {
	d := axisDim[axis]
	min := n.style.MinDimensions[d].Resolve(axisSize)
	max := n.style.MaxDimensions[d].Resolve(axisSize)

	if !IsUndefined(max) && max >= 0 && value > max {
		return max
	}
	if !IsUndefined(min) && min >= 0 && value < min {
		return min
	}
	return value
}

// boundAxis is boundAxisWithinMinAndMax floored at padding and border.
func (n *Node) boundAxis(axis FlexDirection, value, axisSize, widthSize float64) float64 {
	return maxOrDefined(
		n.boundAxisWithinMinAndMax(axis, value, axisSize),
		n.paddingAndBorderForAxis(axis, widthSize),
	)
}

// constrainMaxSizeForMode tightens a tentative size and mode by the node's
// max size.
func (n *Node) constrainMaxSizeForMode(axis FlexDirection, ownerAxisSize, ownerWidth float64, mode *MeasureMode, size *float64) {
	maxSize := n.style.MaxDimensions[axisDim[axis]].Resolve(ownerAxisSize) + n.marginForAxis(axis, ownerWidth)
	switch *mode {
	case MeasureModeExactly, MeasureModeAtMost:
		if !IsUndefined(maxSize) && *size > maxSize {
			*size = maxSize
		}
	case MeasureModeUndefined:
		if !IsUndefined(maxSize) {
			*mode = MeasureModeAtMost
			*size = maxSize
		}
	}
}

// alignItem is the effective cross alignment of child inside n.
func (n *Node) alignItem(child *Node) Align {
	align := child.style.AlignSelf
	if align == AlignAuto {
		align = n.style.AlignItems
	}
	if align == AlignBaseline && isColumn(n.style.FlexDirection) {
		return AlignStart
	}
	return align
}

// setPosition writes margin plus relative offset into the leading and
// trailing position slots of both axes.
func (n *Node) setPosition(direction Direction, mainSize, crossSize, ownerWidth float64) {
	if n.owner == nil {
		direction = LTR
	}
	mainAxis := resolveFlexDirection(n.style.FlexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)

	relMain := n.relativePosition(mainAxis, mainSize)
	relCross := n.relativePosition(crossAxis, crossSize)

	n.layout.Position[leadingEdge[mainAxis]] = n.leadingMargin(mainAxis, ownerWidth) + relMain
	n.layout.Position[trailingEdge[mainAxis]] = n.trailingMargin(mainAxis, ownerWidth) + relMain
	n.layout.Position[leadingEdge[crossAxis]] = n.leadingMargin(crossAxis, ownerWidth) + relCross
	n.layout.Position[trailingEdge[crossAxis]] = n.trailingMargin(crossAxis, ownerWidth) + relCross
}

func (n *Node) setChildTrailingPosition(child *Node, axis FlexDirection) {
	size := child.measured(axis)
	child.layout.Position[trailingEdge[axis]] =
		n.measured(axis) - size - child.layout.Position[leadingEdge[axis]]
}

// baseline returns the distance from the node's top to its first baseline.
func (n *Node) baseline() float64 {
	if n.baselineFunc != nil {
		b := n.baselineFunc(n, n.layout.MeasuredDimensions[DimensionWidth], n.layout.MeasuredDimensions[DimensionHeight])
		if math.IsNaN(b) {
			panic("layout: baseline function returned NaN")
		}
		return b
	}

	var baselineChild *Node
	for _, child := range n.children {
		if child.layout.LineIndex > 0 {
			break
		}
		if child.isAbsolute() {
			continue
		}
		if n.alignItem(child) == AlignBaseline {
			baselineChild = child
			break
		}
		if baselineChild == nil {
			baselineChild = child
		}
	}

	if baselineChild == nil {
		return n.layout.MeasuredDimensions[DimensionHeight]
	}
	return baselineChild.baseline() + baselineChild.layout.Position[EdgeTop]
}

func (n *Node) isBaselineLayout() bool {
	if isColumn(n.style.FlexDirection) {
		return false
	}
	if n.style.AlignItems == AlignBaseline {
		return true
	}
	for _, child := range n.children {
		if !child.isAbsolute() && child.style.AlignSelf == AlignBaseline {
			return true
		}
	}
	return false
}
