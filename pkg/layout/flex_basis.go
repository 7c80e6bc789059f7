package layout

// computeFlexBasisForChild sets child's computed flex basis: the size along
// the main axis before free space is distributed.
func (p *layoutPass) computeFlexBasisForChild(
	n, child *Node,
	width float64, widthMode MeasureMode,
	height float64,
	ownerWidth, ownerHeight float64,
	heightMode MeasureMode,
	direction Direction,
) {
	mainAxis := resolveFlexDirection(n.style.FlexDirection, direction)
	row := isRow(mainAxis)
	mainAxisSize, mainAxisOwnerSize := height, ownerHeight
	if row {
		mainAxisSize, mainAxisOwnerSize = width, ownerWidth
	}

	basis := child.resolveFlexBasis().Resolve(mainAxisOwnerSize)
	rowDefined := child.isStyleDimDefined(Row, ownerWidth)
	columnDefined := child.isStyleDimDefined(Column, ownerHeight)

	switch {
	case !IsUndefined(basis) && !IsUndefined(mainAxisSize):
		if IsUndefined(child.layout.ComputedFlexBasis) ||
			(child.config.IsExperimentalFeatureEnabled(FeatureWebFlexBasis) &&
				child.layout.ComputedFlexBasisGeneration != p.generation) {
			child.layout.ComputedFlexBasis = maxOrDefined(basis, child.paddingAndBorderForAxis(mainAxis, ownerWidth))
		}

	case row && rowDefined:
		child.layout.ComputedFlexBasis = maxOrDefined(
			child.resolvedDimensions[DimensionWidth].Resolve(ownerWidth),
			child.paddingAndBorderForAxis(Row, ownerWidth),
		)

	case !row && columnDefined:
		child.layout.ComputedFlexBasis = maxOrDefined(
			child.resolvedDimensions[DimensionHeight].Resolve(ownerHeight),
			child.paddingAndBorderForAxis(Column, ownerWidth),
		)

	default:
		p.measureFlexBasis(n, child, mainAxis, width, widthMode, height, heightMode, ownerWidth, ownerHeight, direction, rowDefined, columnDefined)
	}

	child.layout.ComputedFlexBasisGeneration = p.generation
}

// measureFlexBasis derives the basis by measuring the child with tentative
// sizes built from its defined dimensions.
func (p *layoutPass) measureFlexBasis(
	n, child *Node,
	mainAxis FlexDirection,
	width float64, widthMode MeasureMode,
	height float64, heightMode MeasureMode,
	ownerWidth, ownerHeight float64,
	direction Direction,
	rowDefined, columnDefined bool,
) {
	row := isRow(mainAxis)

	childWidth, childHeight := Undefined, Undefined
	childWidthMode, childHeightMode := MeasureModeUndefined, MeasureModeUndefined

	marginRow := child.marginForAxis(Row, ownerWidth)
	marginColumn := child.marginForAxis(Column, ownerWidth)

	if rowDefined {
		childWidth = child.resolvedDimensions[DimensionWidth].Resolve(ownerWidth) + marginRow
		childWidthMode = MeasureModeExactly
	}
	if columnDefined {
		childHeight = child.resolvedDimensions[DimensionHeight].Resolve(ownerHeight) + marginColumn
		childHeightMode = MeasureModeExactly
	}

	// Scroll containers do not bound children along the scroll axis.
	scroll := n.style.Overflow == OverflowScroll
	if (!row && scroll) || !scroll {
		if IsUndefined(childWidth) && !IsUndefined(width) {
			childWidth = width
			childWidthMode = MeasureModeAtMost
		}
	}
	if (row && scroll) || !scroll {
		if IsUndefined(childHeight) && !IsUndefined(height) {
			childHeight = height
			childHeightMode = MeasureModeAtMost
		}
	}

	if ar := child.style.AspectRatio; !IsUndefined(ar) {
		if !row && childWidthMode == MeasureModeExactly {
			childHeight = marginColumn + (childWidth-marginRow)/ar
			childHeightMode = MeasureModeExactly
		} else if row && childHeightMode == MeasureModeExactly {
			childWidth = marginRow + (childHeight-marginColumn)*ar
			childWidthMode = MeasureModeExactly
		}
	}

	// A stretched child with no own cross size takes the owner's exact cross
	// size.
	hasExactWidth := !IsUndefined(width) && widthMode == MeasureModeExactly
	if !row && !rowDefined && hasExactWidth && n.alignItem(child) == AlignStretch &&
		childWidthMode != MeasureModeExactly {
		childWidth = width
		childWidthMode = MeasureModeExactly
		if ar := child.style.AspectRatio; !IsUndefined(ar) {
			childHeight = (childWidth - marginRow) / ar
			childHeightMode = MeasureModeExactly
		}
	}

	hasExactHeight := !IsUndefined(height) && heightMode == MeasureModeExactly
	if row && !columnDefined && hasExactHeight && n.alignItem(child) == AlignStretch &&
		childHeightMode != MeasureModeExactly {
		childHeight = height
		childHeightMode = MeasureModeExactly
		if ar := child.style.AspectRatio; !IsUndefined(ar) {
			childWidth = (childHeight - marginColumn) * ar
			childWidthMode = MeasureModeExactly
		}
	}

	child.constrainMaxSizeForMode(Row, ownerWidth, ownerWidth, &childWidthMode, &childWidth)
	child.constrainMaxSizeForMode(Column, ownerHeight, ownerWidth, &childHeightMode, &childHeight)

	p.layoutNode(child, childWidth, childHeight, direction, childWidthMode, childHeightMode,
		ownerWidth, ownerHeight, false, "measure")

	child.layout.ComputedFlexBasis = maxOrDefined(
		child.measured(mainAxis),
		child.paddingAndBorderForAxis(mainAxis, ownerWidth),
	)
}

// computeFlexBasisForChildren computes every in-flow child's basis and
// returns their sum including main axis margins.
func (p *layoutPass) computeFlexBasisForChildren(
	n *Node,
	availableInnerWidth, availableInnerHeight float64,
	widthMode, heightMode MeasureMode,
	direction Direction,
	mainAxis FlexDirection,
	performLayout bool,
) float64 {
	total := 0.0

	// With an exact main size, a lone flexible child takes all remaining
	// space, so its content size is irrelevant.
	var singleFlexChild *Node
	mainMode := heightMode
	if isRow(mainAxis) {
		mainMode = widthMode
	}
	if mainMode == MeasureModeExactly {
		for _, child := range n.children {
			if !child.isFlexible() {
				continue
			}
			if singleFlexChild != nil ||
				FloatsEqual(child.resolveFlexGrow(), 0) ||
				FloatsEqual(child.resolveFlexShrink(), 0) {
				singleFlexChild = nil
				break
			}
			singleFlexChild = child
		}
	}

	for _, child := range n.children {
		child.resolveDimension()

		if child.style.Display == DisplayNone {
			zeroOutLayoutRecursively(child)
			child.hasNewLayout = true
			child.setDirty(false)
			continue
		}

		if performLayout {
			childDirection := child.resolveDirection(direction)
			mainDim, crossDim := availableInnerHeight, availableInnerWidth
			if isRow(mainAxis) {
				mainDim, crossDim = availableInnerWidth, availableInnerHeight
			}
			child.setPosition(childDirection, mainDim, crossDim, availableInnerWidth)
		}

		if child.isAbsolute() {
			continue
		}

		if child == singleFlexChild {
			child.layout.ComputedFlexBasisGeneration = p.generation
			child.layout.ComputedFlexBasis = 0
		} else {
			p.computeFlexBasisForChild(n, child,
				availableInnerWidth, widthMode, availableInnerHeight,
				availableInnerWidth, availableInnerHeight, heightMode, direction)
		}

		total += child.layout.ComputedFlexBasis + child.marginForAxis(mainAxis, availableInnerWidth)
	}

	return total
}

// zeroOutLayoutRecursively clears the layout of a display:none subtree.
func zeroOutLayoutRecursively(n *Node) {
	n.layout.Position = [4]float64{}
	n.layout.Dimensions = [2]float64{}
	n.layout.MeasuredDimensions = [2]float64{}
	n.layout.Margin = [6]float64{}
	n.layout.Border = [6]float64{}
	n.layout.Padding = [6]float64{}
	n.layout.HadOverflow = false
	n.hasNewLayout = true
	n.cloneChildrenIfNeeded()
	for _, child := range n.children {
		zeroOutLayoutRecursively(child)
	}
}
