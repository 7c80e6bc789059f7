package layout

// layoutAbsoluteChild sizes and positions an out-of-flow child against the
// container's padding box. width and height are the container's available
// inner size.
func (p *layoutPass) layoutAbsoluteChild(n, child *Node, width float64, widthMode MeasureMode, height float64, direction Direction) {
	mainAxis := resolveFlexDirection(n.style.FlexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)
	mainIsRow := isRow(mainAxis)

	childWidth, childHeight := Undefined, Undefined

	marginRow := child.marginForAxis(Row, width)
	marginColumn := child.marginForAxis(Column, width)

	// Size from the explicit dimension, otherwise from opposite insets.
	if child.isStyleDimDefined(Row, width) {
		childWidth = child.resolvedDimensions[DimensionWidth].Resolve(width) + marginRow
	} else if child.isLeadingPositionDefined(Row) && child.isTrailingPositionDefined(Row) {
		childWidth = n.layout.MeasuredDimensions[DimensionWidth] -
			(n.leadingBorder(Row) + n.trailingBorder(Row)) -
			(child.leadingPosition(Row, width) + child.trailingPosition(Row, width))
		childWidth = child.boundAxis(Row, childWidth, width, width)
	}

	if child.isStyleDimDefined(Column, height) {
		childHeight = child.resolvedDimensions[DimensionHeight].Resolve(height) + marginColumn
	} else if child.isLeadingPositionDefined(Column) && child.isTrailingPositionDefined(Column) {
		childHeight = n.layout.MeasuredDimensions[DimensionHeight] -
			(n.leadingBorder(Column) + n.trailingBorder(Column)) -
			(child.leadingPosition(Column, height) + child.trailingPosition(Column, height))
		childHeight = child.boundAxis(Column, childHeight, height, width)
	}

	// Aspect ratio needs exactly one anchor dimension.
	if ar := child.style.AspectRatio; !IsUndefined(ar) && IsUndefined(childWidth) != IsUndefined(childHeight) {
		if IsUndefined(childWidth) {
			childWidth = marginRow + (childHeight-marginColumn)*ar
		} else {
			childHeight = marginColumn + (childWidth-marginRow)/ar
		}
	}

	if IsUndefined(childWidth) || IsUndefined(childHeight) {
		childWidthMode := exactUnlessUndefined(childWidth)
		childHeightMode := exactUnlessUndefined(childHeight)

		// Let content such as text wrap at the container's width.
		if !mainIsRow && IsUndefined(childWidth) && widthMode != MeasureModeUndefined &&
			!IsUndefined(width) && width > 0 {
			childWidth = width
			childWidthMode = MeasureModeAtMost
		}

		p.layoutNode(child, childWidth, childHeight, direction, childWidthMode, childHeightMode,
			childWidth, childHeight, false, "abs-measure")
		childWidth = child.layout.MeasuredDimensions[DimensionWidth] + child.marginForAxis(Row, width)
		childHeight = child.layout.MeasuredDimensions[DimensionHeight] + child.marginForAxis(Column, width)
	}

	p.layoutNode(child, childWidth, childHeight, direction, MeasureModeExactly, MeasureModeExactly,
		childWidth, childHeight, true, "abs-layout")

	mainSize, crossSize := height, width
	if mainIsRow {
		mainSize, crossSize = width, height
	}

	mainPos := &child.layout.Position[leadingEdge[mainAxis]]
	mainSpace := n.measured(mainAxis) - child.measured(mainAxis)
	switch {
	case child.isTrailingPositionDefined(mainAxis) && !child.isLeadingPositionDefined(mainAxis):
		*mainPos = mainSpace - n.trailingBorder(mainAxis) -
			child.trailingMargin(mainAxis, width) -
			child.trailingPosition(mainAxis, mainSize)
	case !child.isLeadingPositionDefined(mainAxis) && n.style.JustifyContent == JustifyCenter:
		*mainPos = mainSpace / 2
	case !child.isLeadingPositionDefined(mainAxis) && n.style.JustifyContent == JustifyEnd:
		*mainPos = mainSpace
	}

	crossPos := &child.layout.Position[leadingEdge[crossAxis]]
	crossSpace := n.measured(crossAxis) - child.measured(crossAxis)
	align := n.alignItem(child)
	switch {
	case child.isTrailingPositionDefined(crossAxis) && !child.isLeadingPositionDefined(crossAxis):
		*crossPos = crossSpace - n.trailingBorder(crossAxis) -
			child.trailingMargin(crossAxis, width) -
			child.trailingPosition(crossAxis, crossSize)
	case !child.isLeadingPositionDefined(crossAxis) && align == AlignCenter:
		*crossPos = crossSpace / 2
	case !child.isLeadingPositionDefined(crossAxis) && (align == AlignEnd) != (n.style.FlexWrap == WrapReverse):
		*crossPos = crossSpace
	}
}
