package layout

import (
	"math"
	"strings"
)

// CalculateLayout lays out the tree rooted at n within the given owner
// size. Either size may be Undefined to size to content. Only dirty
// subtrees are recomputed; clean ones are answered from their caches.
func (n *Node) CalculateLayout(ownerWidth, ownerHeight float64, ownerDirection Direction) {
	p := newLayoutPass(n.config)

	n.resolveDimension()

	width, widthMode := n.rootAvailableSize(Row, ownerWidth, ownerWidth)
	height, heightMode := n.rootAvailableSize(Column, ownerHeight, ownerWidth)

	// A clean root answered from its cache keeps the rounded size of the
	// pass that produced it.
	rounded := n.layout.Dimensions

	if !p.layoutNode(n, width, height, ownerDirection, widthMode, heightMode, ownerWidth, ownerHeight, true, "initial") {
		n.layout.Dimensions = rounded
		return
	}

	n.setPosition(n.layout.Direction, ownerWidth, ownerHeight, ownerWidth)
	if n.config.IsExperimentalFeatureEnabled(FeatureRounding) {
		roundToPixelGrid(n, n.config.pointScaleFactor, 0, 0)
	}

	if n.config.printTree && p.log.IsTrace() {
		var b strings.Builder
		n.Print(&b, PrintLayout|PrintStyle|PrintChildren)
		p.log.Trace("layout complete", "tree", b.String())
	}
}

// rootAvailableSize picks the root's available size on one axis: its own
// dimension, else its max size as an upper bound, else the owner's size.
func (n *Node) rootAvailableSize(axis FlexDirection, ownerSize, ownerWidth float64) (float64, MeasureMode) {
	d := axisDim[axis]
	if n.isStyleDimDefined(axis, ownerSize) {
		return n.resolvedDimensions[d].Resolve(ownerSize) + n.marginForAxis(axis, ownerWidth), MeasureModeExactly
	}
	if max := n.style.MaxDimensions[d].Resolve(ownerSize); !IsUndefined(max) {
		return max, MeasureModeAtMost
	}
	return ownerSize, exactUnlessUndefined(ownerSize)
}

// layoutImpl computes the measured size of n for the given constraints and,
// when performLayout is set, the positions of its children.
//
// Available sizes include the node's margin. A mode of Undefined means the
// size is unconstrained, Exactly means the node must take that size, and
// AtMost means it may be smaller.
func (p *layoutPass) layoutImpl(
	n *Node,
	availableWidth, availableHeight float64,
	ownerDirection Direction,
	widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight float64,
	performLayout bool,
) {
	if IsUndefined(availableWidth) && widthMode != MeasureModeUndefined {
		panic("layout: undefined available width requires an undefined measure mode, got " + widthMode.String())
	}
	if IsUndefined(availableHeight) && heightMode != MeasureModeUndefined {
		panic("layout: undefined available height requires an undefined measure mode, got " + heightMode.String())
	}

	direction := n.resolveDirection(ownerDirection)
	n.layout.Direction = direction

	rowDir := resolveFlexDirection(Row, direction)
	colDir := resolveFlexDirection(Column, direction)

	n.layout.Margin[EdgeStart] = n.leadingMargin(rowDir, ownerWidth)
	n.layout.Margin[EdgeEnd] = n.trailingMargin(rowDir, ownerWidth)
	n.layout.Margin[EdgeTop] = n.leadingMargin(colDir, ownerWidth)
	n.layout.Margin[EdgeBottom] = n.trailingMargin(colDir, ownerWidth)

	n.layout.Border[EdgeStart] = n.leadingBorder(rowDir)
	n.layout.Border[EdgeEnd] = n.trailingBorder(rowDir)
	n.layout.Border[EdgeTop] = n.leadingBorder(colDir)
	n.layout.Border[EdgeBottom] = n.trailingBorder(colDir)

	n.layout.Padding[EdgeStart] = n.leadingPadding(rowDir, ownerWidth)
	n.layout.Padding[EdgeEnd] = n.trailingPadding(rowDir, ownerWidth)
	n.layout.Padding[EdgeTop] = n.leadingPadding(colDir, ownerWidth)
	n.layout.Padding[EdgeBottom] = n.trailingPadding(colDir, ownerWidth)

	if n.measureFunc != nil {
		p.setMeasuredDimensionsWithMeasureFunc(n, availableWidth, availableHeight, widthMode, heightMode, ownerWidth, ownerHeight)
		return
	}

	if len(n.children) == 0 {
		n.setEmptyContainerMeasuredDimensions(availableWidth, availableHeight, widthMode, heightMode, ownerWidth, ownerHeight)
		return
	}

	// A measurement with a known size does not need the algorithm.
	if !performLayout && n.setFixedMeasuredDimensions(availableWidth, availableHeight, widthMode, heightMode, ownerWidth, ownerHeight) {
		return
	}

	n.cloneChildrenIfNeeded()
	n.layout.HadOverflow = false

	// Phase 1: Axes, padding, border and inner bounds
	mainAxis := resolveFlexDirection(n.style.FlexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)
	mainIsRow := isRow(mainAxis)

	fc := &flexContainer{
		node:          n,
		direction:     direction,
		mainAxis:      mainAxis,
		crossAxis:     crossAxis,
		mainIsRow:     mainIsRow,
		wrap:          n.style.FlexWrap != NoWrap,
		performLayout: performLayout,
		ownerWidth:    ownerWidth,
	}
	if mainIsRow {
		fc.mainOwnerSize, fc.crossOwnerSize = ownerWidth, ownerHeight
		fc.mainMode, fc.crossMode = widthMode, heightMode
	} else {
		fc.mainOwnerSize, fc.crossOwnerSize = ownerHeight, ownerWidth
		fc.mainMode, fc.crossMode = heightMode, widthMode
	}

	paddingAndBorderMain := n.paddingAndBorderForAxis(mainAxis, ownerWidth)
	paddingAndBorderCross := n.paddingAndBorderForAxis(crossAxis, ownerWidth)
	paddingAndBorderRow, paddingAndBorderColumn := paddingAndBorderCross, paddingAndBorderMain
	if mainIsRow {
		paddingAndBorderRow, paddingAndBorderColumn = paddingAndBorderMain, paddingAndBorderCross
	}

	marginRow := n.marginForAxis(Row, ownerWidth)
	marginColumn := n.marginForAxis(Column, ownerWidth)

	minInnerWidth := n.style.MinDimensions[DimensionWidth].Resolve(ownerWidth) - paddingAndBorderRow
	maxInnerWidth := n.style.MaxDimensions[DimensionWidth].Resolve(ownerWidth) - paddingAndBorderRow
	minInnerHeight := n.style.MinDimensions[DimensionHeight].Resolve(ownerHeight) - paddingAndBorderColumn
	maxInnerHeight := n.style.MaxDimensions[DimensionHeight].Resolve(ownerHeight) - paddingAndBorderColumn
	minInnerMain, maxInnerMain := minInnerHeight, maxInnerHeight
	if mainIsRow {
		minInnerMain, maxInnerMain = minInnerWidth, maxInnerWidth
	}

	// Phase 2: Available inner size
	fc.availableInnerWidth = n.availableInnerDim(Row, availableWidth, ownerWidth)
	fc.availableInnerHeight = n.availableInnerDim(Column, availableHeight, ownerHeight)
	if mainIsRow {
		fc.availableInnerMain, fc.availableInnerCross = fc.availableInnerWidth, fc.availableInnerHeight
	} else {
		fc.availableInnerMain, fc.availableInnerCross = fc.availableInnerHeight, fc.availableInnerWidth
	}

	// Phase 3: Flex basis of every child
	totalOuterFlexBasis := p.computeFlexBasisForChildren(n,
		fc.availableInnerWidth, fc.availableInnerHeight, widthMode, heightMode,
		direction, mainAxis, performLayout)

	fc.flexBasisOverflows = fc.mainMode != MeasureModeUndefined && totalOuterFlexBasis > fc.availableInnerMain
	if fc.wrap && fc.flexBasisOverflows && fc.mainMode == MeasureModeAtMost {
		fc.mainMode = MeasureModeExactly
	}

	// Phase 4: Lines, flexible lengths, justification and cross alignment
	lineCount := 0
	totalLineCrossDim := 0.0
	maxLineMainDim := 0.0

	for start := 0; start < len(n.children); lineCount++ {
		line := fc.collectLine(start, lineCount)
		start = line.end

		canSkipFlex := !performLayout && fc.crossMode == MeasureModeExactly

		sizeBasedOnContent := false
		if fc.mainMode != MeasureModeExactly {
			switch {
			case !IsUndefined(minInnerMain) && line.sizeConsumed < minInnerMain:
				fc.availableInnerMain = minInnerMain
			case !IsUndefined(maxInnerMain) && line.sizeConsumed > maxInnerMain:
				fc.availableInnerMain = maxInnerMain
			default:
				// Nothing can grow, so the content is all the space needed.
				if line.totalFlexGrowFactors == 0 || n.resolveFlexGrow() == 0 {
					fc.availableInnerMain = line.sizeConsumed
				}
				sizeBasedOnContent = true
			}
		}

		if !sizeBasedOnContent && !IsUndefined(fc.availableInnerMain) {
			line.remainingFreeSpace = fc.availableInnerMain - line.sizeConsumed
		} else if line.sizeConsumed < 0 {
			line.remainingFreeSpace = -line.sizeConsumed
		}

		if !canSkipFlex {
			p.resolveFlexibleLengths(fc, &line)
		}
		n.layout.HadOverflow = n.layout.HadOverflow || line.remainingFreeSpace < 0

		fc.justifyMainAxis(&line)

		containerCrossAxis := fc.availableInnerCross
		if fc.crossMode == MeasureModeUndefined || fc.crossMode == MeasureModeAtMost {
			containerCrossAxis = n.boundAxis(crossAxis, line.crossDim+paddingAndBorderCross, fc.crossOwnerSize, ownerWidth) -
				paddingAndBorderCross
		}

		// Without wrapping the single line spans the container.
		if !fc.wrap && fc.crossMode == MeasureModeExactly {
			line.crossDim = fc.availableInnerCross
		}
		line.crossDim = n.boundAxis(crossAxis, line.crossDim+paddingAndBorderCross, fc.crossOwnerSize, ownerWidth) -
			paddingAndBorderCross

		if performLayout {
			p.alignCrossAxis(fc, &line, containerCrossAxis, totalLineCrossDim)
		}

		totalLineCrossDim += line.crossDim
		maxLineMainDim = maxOrDefined(maxLineMainDim, line.mainDim)
	}

	// Phase 5: Multi-line content alignment
	if performLayout && (lineCount > 1 || n.isBaselineLayout()) && !IsUndefined(fc.availableInnerCross) {
		p.alignLines(fc, lineCount, totalLineCrossDim)
	}

	// Phase 6: Final dimensions
	n.layout.MeasuredDimensions[DimensionWidth] = n.boundAxis(Row, availableWidth-marginRow, ownerWidth, ownerWidth)
	n.layout.MeasuredDimensions[DimensionHeight] = n.boundAxis(Column, availableHeight-marginColumn, ownerHeight, ownerWidth)

	scroll := n.style.Overflow == OverflowScroll
	mainDim := &n.layout.MeasuredDimensions[axisDim[mainAxis]]
	switch {
	case fc.mainMode == MeasureModeUndefined || (!scroll && fc.mainMode == MeasureModeAtMost):
		*mainDim = n.boundAxis(mainAxis, maxLineMainDim, fc.mainOwnerSize, ownerWidth)
	case fc.mainMode == MeasureModeAtMost && scroll:
		*mainDim = maxOrDefined(
			minOrDefined(fc.availableInnerMain+paddingAndBorderMain,
				n.boundAxisWithinMinAndMax(mainAxis, maxLineMainDim, fc.mainOwnerSize)),
			paddingAndBorderMain)
	}

	crossDim := &n.layout.MeasuredDimensions[axisDim[crossAxis]]
	switch {
	case fc.crossMode == MeasureModeUndefined || (!scroll && fc.crossMode == MeasureModeAtMost):
		*crossDim = n.boundAxis(crossAxis, totalLineCrossDim+paddingAndBorderCross, fc.crossOwnerSize, ownerWidth)
	case fc.crossMode == MeasureModeAtMost && scroll:
		*crossDim = maxOrDefined(
			minOrDefined(fc.availableInnerCross+paddingAndBorderCross,
				n.boundAxisWithinMinAndMax(crossAxis, totalLineCrossDim+paddingAndBorderCross, fc.crossOwnerSize)),
			paddingAndBorderCross)
	}

	if !performLayout {
		return
	}

	// Lines were stacked in normal order; flip them for wrap-reverse.
	if n.style.FlexWrap == WrapReverse {
		for _, child := range n.children {
			if child.isAbsolute() {
				continue
			}
			pos := &child.layout.Position[leadingEdge[crossAxis]]
			*pos = n.measured(crossAxis) - *pos - child.measured(crossAxis)
		}
	}

	// Phase 7: Absolute children
	absoluteMode := fc.crossMode
	if mainIsRow {
		absoluteMode = fc.mainMode
	}
	for _, child := range n.children {
		if child.isAbsolute() {
			p.layoutAbsoluteChild(n, child, fc.availableInnerWidth, absoluteMode, fc.availableInnerHeight, direction)
		}
	}

	// Phase 8: Trailing positions for reversed axes
	needsMainTrailing := mainAxis == RowReverse || mainAxis == ColumnReverse
	needsCrossTrailing := crossAxis == RowReverse || crossAxis == ColumnReverse
	if needsMainTrailing || needsCrossTrailing {
		for _, child := range n.children {
			if child.style.Display == DisplayNone {
				continue
			}
			if needsMainTrailing {
				n.setChildTrailingPosition(child, mainAxis)
			}
			if needsCrossTrailing {
				n.setChildTrailingPosition(child, crossAxis)
			}
		}
	}
}

// availableInnerDim subtracts margin, padding and border from an available
// size and clamps the result to the node's inner min and max.
func (n *Node) availableInnerDim(axis FlexDirection, availableDim, ownerDim float64) float64 {
	d := axisDim[axis]
	paddingAndBorder := n.paddingAndBorderForAxis(axis, ownerDim)

	inner := availableDim - n.marginForAxis(axis, ownerDim) - paddingAndBorder
	if IsUndefined(inner) {
		return inner
	}

	minInner := 0.0
	if min := n.style.MinDimensions[d].Resolve(ownerDim); !IsUndefined(min) {
		minInner = min - paddingAndBorder
	}
	maxInner := math.MaxFloat64
	if max := n.style.MaxDimensions[d].Resolve(ownerDim); !IsUndefined(max) {
		maxInner = max - paddingAndBorder
	}
	return maxOrDefined(minOrDefined(inner, maxInner), minInner)
}

// setMeasuredDimensionsWithMeasureFunc sizes a leaf through the host's
// measure callback, skipping the call when both sizes are exact.
func (p *layoutPass) setMeasuredDimensionsWithMeasureFunc(
	n *Node,
	availableWidth, availableHeight float64,
	widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight float64,
) {
	paddingAndBorderRow := n.paddingAndBorderForAxis(Row, availableWidth)
	paddingAndBorderColumn := n.paddingAndBorderForAxis(Column, availableWidth)
	marginRow := n.marginForAxis(Row, availableWidth)
	marginColumn := n.marginForAxis(Column, availableWidth)

	if widthMode == MeasureModeExactly && heightMode == MeasureModeExactly {
		n.layout.MeasuredDimensions[DimensionWidth] = n.boundAxis(Row, availableWidth-marginRow, ownerWidth, ownerWidth)
		n.layout.MeasuredDimensions[DimensionHeight] = n.boundAxis(Column, availableHeight-marginColumn, ownerHeight, ownerWidth)
		return
	}

	// Never measure with a negative size.
	innerWidth, innerHeight := availableWidth, availableHeight
	if !IsUndefined(availableWidth) {
		innerWidth = math.Max(0, availableWidth-marginRow-paddingAndBorderRow)
	}
	if !IsUndefined(availableHeight) {
		innerHeight = math.Max(0, availableHeight-marginColumn-paddingAndBorderColumn)
	}

	p.config.stats.MeasureCalls++
	size := n.measureFunc(n, innerWidth, widthMode, innerHeight, heightMode)

	width := availableWidth - marginRow
	if widthMode == MeasureModeUndefined || widthMode == MeasureModeAtMost {
		width = size.Width + paddingAndBorderRow
	}
	height := availableHeight - marginColumn
	if heightMode == MeasureModeUndefined || heightMode == MeasureModeAtMost {
		height = size.Height + paddingAndBorderColumn
	}

	n.layout.MeasuredDimensions[DimensionWidth] = n.boundAxis(Row, width, ownerWidth, ownerWidth)
	n.layout.MeasuredDimensions[DimensionHeight] = n.boundAxis(Column, height, ownerHeight, ownerWidth)
}

// setEmptyContainerMeasuredDimensions sizes a childless container to its
// padding and border unless the size is exact.
func (n *Node) setEmptyContainerMeasuredDimensions(
	availableWidth, availableHeight float64,
	widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight float64,
) {
	width := availableWidth - n.marginForAxis(Row, ownerWidth)
	if widthMode == MeasureModeUndefined || widthMode == MeasureModeAtMost {
		width = n.paddingAndBorderForAxis(Row, ownerWidth)
	}
	height := availableHeight - n.marginForAxis(Column, ownerWidth)
	if heightMode == MeasureModeUndefined || heightMode == MeasureModeAtMost {
		height = n.paddingAndBorderForAxis(Column, ownerWidth)
	}

	n.layout.MeasuredDimensions[DimensionWidth] = n.boundAxis(Row, width, ownerWidth, ownerWidth)
	n.layout.MeasuredDimensions[DimensionHeight] = n.boundAxis(Column, height, ownerHeight, ownerWidth)
}

// setFixedMeasuredDimensions answers a measurement whose result does not
// depend on the children: both sizes exact, or an at-most bound of zero or
// less. Returns false when the full algorithm is needed.
func (n *Node) setFixedMeasuredDimensions(
	availableWidth, availableHeight float64,
	widthMode, heightMode MeasureMode,
	ownerWidth, ownerHeight float64,
) bool {
	if !((!IsUndefined(availableWidth) && widthMode == MeasureModeAtMost && availableWidth <= 0) ||
		(!IsUndefined(availableHeight) && heightMode == MeasureModeAtMost && availableHeight <= 0) ||
		(widthMode == MeasureModeExactly && heightMode == MeasureModeExactly)) {
		return false
	}

	width := availableWidth - n.marginForAxis(Row, ownerWidth)
	if IsUndefined(availableWidth) || (widthMode == MeasureModeAtMost && availableWidth < 0) {
		width = 0
	}
	height := availableHeight - n.marginForAxis(Column, ownerWidth)
	if IsUndefined(availableHeight) || (heightMode == MeasureModeAtMost && availableHeight < 0) {
		height = 0
	}

	n.layout.MeasuredDimensions[DimensionWidth] = n.boundAxis(Row, width, ownerWidth, ownerWidth)
	n.layout.MeasuredDimensions[DimensionHeight] = n.boundAxis(Column, height, ownerHeight, ownerWidth)
	return true
}
