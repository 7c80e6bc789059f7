package layout

// flexContainer holds the per-call state of laying out one container.
// It is stack-allocated per layout call, not stored on nodes.
type flexContainer struct {
	node          *Node
	direction     Direction
	mainAxis      FlexDirection
	crossAxis     FlexDirection
	mainIsRow     bool
	wrap          bool
	performLayout bool

	ownerWidth     float64
	mainOwnerSize  float64
	crossOwnerSize float64

	mainMode  MeasureMode
	crossMode MeasureMode

	availableInnerWidth  float64
	availableInnerHeight float64
	availableInnerMain   float64
	availableInnerCross  float64

	flexBasisOverflows bool
}

// flexLine holds the children placed on one line and the sums used to
// distribute free space among them.
type flexLine struct {
	start, end   int
	itemsOnLine  int
	sizeConsumed float64

	totalFlexGrowFactors         float64
	totalFlexShrinkScaledFactors float64
	remainingFreeSpace           float64

	// mainDim and crossDim are the line's extent after justification.
	mainDim  float64
	crossDim float64

	children []*Node
}

// collectLine greedily fills a line starting at child index start. A line
// breaks only when wrapping is on and it already holds an item.
func (fc *flexContainer) collectLine(start, lineIndex int) flexLine {
	n := fc.node
	line := flexLine{start: start, children: make([]*Node, 0, len(n.children)-start)}

	end := start
	for ; end < len(n.children); end++ {
		child := n.children[end]
		if child.style.Display == DisplayNone || child.isAbsolute() {
			continue
		}
		child.layout.LineIndex = lineIndex

		marginMain := child.marginForAxis(fc.mainAxis, fc.availableInnerWidth)
		basis := child.boundAxisWithinMinAndMax(fc.mainAxis, child.layout.ComputedFlexBasis, fc.mainOwnerSize)

		if line.sizeConsumed+basis+marginMain > fc.availableInnerMain && fc.wrap && line.itemsOnLine > 0 {
			break
		}

		line.sizeConsumed += basis + marginMain
		line.itemsOnLine++

		if child.isFlexible() {
			line.totalFlexGrowFactors += child.resolveFlexGrow()
			// Shrink is weighted by the basis so larger items give up more.
			line.totalFlexShrinkScaledFactors += -child.resolveFlexShrink() * child.layout.ComputedFlexBasis
		}
		line.children = append(line.children, child)
	}

	if line.totalFlexGrowFactors > 0 && line.totalFlexGrowFactors < 1 {
		line.totalFlexGrowFactors = 1
	}
	if line.totalFlexShrinkScaledFactors > 0 && line.totalFlexShrinkScaledFactors < 1 {
		line.totalFlexShrinkScaledFactors = 1
	}

	line.end = end
	return line
}

// resolveFlexibleLengths distributes the line's free space over its
// children and lays each of them out with the resulting main size.
func (p *layoutPass) resolveFlexibleLengths(fc *flexContainer, line *flexLine) {
	original := line.remainingFreeSpace
	fc.distributeFreeSpaceFirstPass(line)
	distributed := p.distributeFreeSpaceSecondPass(fc, line)
	line.remainingFreeSpace = original - distributed
}

// distributeFreeSpaceFirstPass finds children whose min or max constraint
// would be violated by their share of the free space. Their clamped size is
// taken out of the free space and their factor out of the totals, so both
// passes size them identically.
func (fc *flexContainer) distributeFreeSpaceFirstPass(line *flexLine) {
	delta := 0.0

	for _, child := range line.children {
		basis := child.boundAxisWithinMinAndMax(fc.mainAxis, child.layout.ComputedFlexBasis, fc.mainOwnerSize)

		switch {
		case line.remainingFreeSpace < 0:
			shrinkScaled := -child.resolveFlexShrink() * basis
			if IsUndefined(shrinkScaled) || shrinkScaled == 0 {
				continue
			}
			base := basis + line.remainingFreeSpace/line.totalFlexShrinkScaledFactors*shrinkScaled
			bound := child.boundAxis(fc.mainAxis, base, fc.availableInnerMain, fc.availableInnerWidth)
			if !IsUndefined(base) && !IsUndefined(bound) && base != bound {
				delta += bound - basis
				line.totalFlexShrinkScaledFactors -= shrinkScaled
			}

		case line.remainingFreeSpace > 0:
			grow := child.resolveFlexGrow()
			if IsUndefined(grow) || grow == 0 {
				continue
			}
			base := basis + line.remainingFreeSpace/line.totalFlexGrowFactors*grow
			bound := child.boundAxis(fc.mainAxis, base, fc.availableInnerMain, fc.availableInnerWidth)
			if !IsUndefined(base) && !IsUndefined(bound) && base != bound {
				delta += bound - basis
				line.totalFlexGrowFactors -= grow
			}
		}
	}

	line.remainingFreeSpace -= delta
}

// distributeFreeSpaceSecondPass sizes every child on the line and returns
// the space actually handed out.
func (p *layoutPass) distributeFreeSpaceSecondPass(fc *flexContainer, line *flexLine) float64 {
	n := fc.node
	delta := 0.0

	for _, child := range line.children {
		basis := child.boundAxisWithinMinAndMax(fc.mainAxis, child.layout.ComputedFlexBasis, fc.mainOwnerSize)
		updatedMainSize := basis

		switch {
		case line.remainingFreeSpace < 0:
			shrinkScaled := -child.resolveFlexShrink() * basis
			if shrinkScaled != 0 {
				var childSize float64
				if line.totalFlexShrinkScaledFactors == 0 {
					childSize = basis + shrinkScaled
				} else {
					childSize = basis + (line.remainingFreeSpace/line.totalFlexShrinkScaledFactors)*shrinkScaled
				}
				updatedMainSize = child.boundAxis(fc.mainAxis, childSize, fc.availableInnerMain, fc.availableInnerWidth)
			}

		case line.remainingFreeSpace > 0:
			if grow := child.resolveFlexGrow(); !IsUndefined(grow) && grow != 0 {
				updatedMainSize = child.boundAxis(fc.mainAxis,
					basis+line.remainingFreeSpace/line.totalFlexGrowFactors*grow,
					fc.availableInnerMain, fc.availableInnerWidth)
			}
		}

		delta += updatedMainSize - basis

		marginMain := child.marginForAxis(fc.mainAxis, fc.availableInnerWidth)
		marginCross := child.marginForAxis(fc.crossAxis, fc.availableInnerWidth)

		childMainSize := updatedMainSize + marginMain
		childMainMode := MeasureModeExactly
		var childCrossSize float64
		var childCrossMode MeasureMode

		crossDefined := child.isStyleDimDefined(fc.crossAxis, fc.availableInnerCross)
		autoCrossMargin := child.isLeadingMarginAuto(fc.crossAxis) || child.isTrailingMarginAuto(fc.crossAxis)
		stretch := n.alignItem(child) == AlignStretch

		switch {
		case !IsUndefined(child.style.AspectRatio):
			if fc.mainIsRow {
				childCrossSize = (childMainSize - marginMain) / child.style.AspectRatio
			} else {
				childCrossSize = (childMainSize - marginMain) * child.style.AspectRatio
			}
			childCrossSize += marginCross
			childCrossMode = MeasureModeExactly

		case !IsUndefined(fc.availableInnerCross) && !crossDefined &&
			fc.crossMode == MeasureModeExactly &&
			!(fc.wrap && fc.flexBasisOverflows) &&
			stretch && !autoCrossMargin:
			childCrossSize = fc.availableInnerCross
			childCrossMode = MeasureModeExactly

		case !crossDefined:
			childCrossSize = fc.availableInnerCross
			childCrossMode = MeasureModeAtMost
			if IsUndefined(childCrossSize) {
				childCrossMode = MeasureModeUndefined
			}

		default:
			dim := child.resolvedDimensions[axisDim[fc.crossAxis]]
			childCrossSize = dim.Resolve(fc.availableInnerCross) + marginCross
			loosePercent := dim.Unit == UnitPercent && fc.crossMode != MeasureModeExactly
			childCrossMode = MeasureModeExactly
			if IsUndefined(childCrossSize) || loosePercent {
				childCrossMode = MeasureModeUndefined
			}
		}

		child.constrainMaxSizeForMode(fc.mainAxis, fc.availableInnerMain, fc.availableInnerWidth, &childMainMode, &childMainSize)
		child.constrainMaxSizeForMode(fc.crossAxis, fc.availableInnerCross, fc.availableInnerWidth, &childCrossMode, &childCrossSize)

		// A stretched child is laid out again once the line's cross size is
		// known, so this pass only needs to measure it.
		requiresStretchLayout := !crossDefined && stretch && !autoCrossMargin

		childWidth, childHeight := childCrossSize, childMainSize
		childWidthMode, childHeightMode := childCrossMode, childMainMode
		if fc.mainIsRow {
			childWidth, childHeight = childMainSize, childCrossSize
			childWidthMode, childHeightMode = childMainMode, childCrossMode
		}

		p.layoutNode(child, childWidth, childHeight, n.layout.Direction, childWidthMode, childHeightMode,
			fc.availableInnerWidth, fc.availableInnerHeight, fc.performLayout && !requiresStretchLayout, "flex")

		n.layout.HadOverflow = n.layout.HadOverflow || child.layout.HadOverflow
	}

	return delta
}
