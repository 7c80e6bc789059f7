package layout

// justifyMainAxis positions the line's children along the main axis and
// computes the line's main and cross extent.
func (fc *flexContainer) justifyMainAxis(line *flexLine) {
	n := fc.node

	// When sizing to content, only a min size leaves space to distribute.
	if fc.mainMode == MeasureModeAtMost && line.remainingFreeSpace > 0 {
		min := n.style.MinDimensions[axisDim[fc.mainAxis]].Resolve(fc.mainOwnerSize)
		if !IsUndefined(min) {
			line.remainingFreeSpace = maxOrDefined(0, min-(fc.availableInnerMain-line.remainingFreeSpace))
		} else {
			line.remainingFreeSpace = 0
		}
	}

	autoMargins := 0
	for _, child := range n.children[line.start:line.end] {
		if child.isAbsolute() {
			continue
		}
		if child.isLeadingMarginAuto(fc.mainAxis) {
			autoMargins++
		}
		if child.isTrailingMarginAuto(fc.mainAxis) {
			autoMargins++
		}
	}

	// Auto margins absorb all free space, which disables justify-content.
	leadingMainDim, betweenMainDim := 0.0, 0.0
	if autoMargins == 0 {
		remaining := line.remainingFreeSpace
		items := float64(line.itemsOnLine)
		switch n.style.JustifyContent {
		case JustifyCenter:
			leadingMainDim = remaining / 2
		case JustifyEnd:
			leadingMainDim = remaining
		case JustifySpaceBetween:
			if line.itemsOnLine > 1 {
				betweenMainDim = maxOrDefined(remaining, 0) / (items - 1)
			}
		case JustifySpaceEvenly:
			betweenMainDim = remaining / (items + 1)
			leadingMainDim = betweenMainDim
		case JustifySpaceAround:
			if line.itemsOnLine > 0 {
				betweenMainDim = remaining / items
				leadingMainDim = betweenMainDim / 2
			}
		}
	}

	line.mainDim = n.leadingPaddingAndBorder(fc.mainAxis, fc.ownerWidth) + leadingMainDim
	line.crossDim = 0

	canSkipFlex := !fc.performLayout && fc.crossMode == MeasureModeExactly

	for _, child := range n.children[line.start:line.end] {
		if child.style.Display == DisplayNone {
			continue
		}
		mainPos := &child.layout.Position[leadingEdge[fc.mainAxis]]

		if child.isAbsolute() {
			switch {
			case child.isLeadingPositionDefined(fc.mainAxis):
				if fc.performLayout {
					*mainPos = child.leadingPosition(fc.mainAxis, fc.availableInnerMain) +
						n.leadingBorder(fc.mainAxis) +
						child.leadingMargin(fc.mainAxis, fc.availableInnerWidth)
				}
			case fc.performLayout:
				*mainPos += n.leadingBorder(fc.mainAxis) + leadingMainDim
			}
			continue
		}

		if child.isLeadingMarginAuto(fc.mainAxis) {
			line.mainDim += line.remainingFreeSpace / float64(autoMargins)
		}
		if fc.performLayout {
			*mainPos += line.mainDim
		}
		if child.isTrailingMarginAuto(fc.mainAxis) {
			line.mainDim += line.remainingFreeSpace / float64(autoMargins)
		}

		if canSkipFlex {
			// Measured sizes were not computed, so use the basis.
			line.mainDim += betweenMainDim + child.marginForAxis(fc.mainAxis, fc.availableInnerWidth) +
				child.layout.ComputedFlexBasis
			line.crossDim = fc.availableInnerCross
		} else {
			line.mainDim += betweenMainDim + child.dimWithMargin(fc.mainAxis, fc.availableInnerWidth)
			line.crossDim = maxOrDefined(line.crossDim, child.dimWithMargin(fc.crossAxis, fc.availableInnerWidth))
		}
	}

	line.mainDim += n.trailingPaddingAndBorder(fc.mainAxis, fc.ownerWidth)
}
