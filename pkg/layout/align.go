package layout

// alignCrossAxis positions the line's children on the cross axis. Stretched
// children are laid out again with the line's cross size.
func (p *layoutPass) alignCrossAxis(fc *flexContainer, line *flexLine, containerCrossAxis, totalLineCrossDim float64) {
	n := fc.node
	leadingPaddingAndBorderCross := n.leadingPaddingAndBorder(fc.crossAxis, fc.ownerWidth)

	for _, child := range n.children[line.start:line.end] {
		if child.style.Display == DisplayNone {
			continue
		}
		crossPos := &child.layout.Position[leadingEdge[fc.crossAxis]]

		if child.isAbsolute() {
			defined := child.isLeadingPositionDefined(fc.crossAxis)
			if defined {
				*crossPos = child.leadingPosition(fc.crossAxis, fc.availableInnerCross) +
					n.leadingBorder(fc.crossAxis) +
					child.leadingMargin(fc.crossAxis, fc.availableInnerWidth)
			}
			if !defined || IsUndefined(*crossPos) {
				*crossPos = n.leadingBorder(fc.crossAxis) + child.leadingMargin(fc.crossAxis, fc.availableInnerWidth)
			}
			continue
		}

		leadingCrossDim := leadingPaddingAndBorderCross
		align := n.alignItem(child)
		leadingAuto := child.isLeadingMarginAuto(fc.crossAxis)
		trailingAuto := child.isTrailingMarginAuto(fc.crossAxis)

		if align == AlignStretch && !leadingAuto && !trailingAuto {
			if !child.isStyleDimDefined(fc.crossAxis, fc.availableInnerCross) {
				p.stretchChild(fc, child, line.crossDim)
			}
		} else {
			remaining := containerCrossAxis - child.dimWithMargin(fc.crossAxis, fc.availableInnerWidth)
			switch {
			case leadingAuto && trailingAuto:
				leadingCrossDim += maxOrDefined(0, remaining/2)
			case trailingAuto:
			case leadingAuto:
				leadingCrossDim += maxOrDefined(0, remaining)
			case align == AlignStart:
			case align == AlignCenter:
				leadingCrossDim += remaining / 2
			default:
				leadingCrossDim += remaining
			}
		}

		*crossPos += totalLineCrossDim + leadingCrossDim
	}
}

// stretchChild lays child out again with an exact cross size.
func (p *layoutPass) stretchChild(fc *flexContainer, child *Node, lineCrossDim float64) {
	childMainSize := child.measured(fc.mainAxis)
	childCrossSize := lineCrossDim
	if ar := child.style.AspectRatio; !IsUndefined(ar) {
		if fc.mainIsRow {
			childCrossSize = childMainSize / ar
		} else {
			childCrossSize = childMainSize * ar
		}
		childCrossSize += child.marginForAxis(fc.crossAxis, fc.availableInnerWidth)
	}
	childMainSize += child.marginForAxis(fc.mainAxis, fc.availableInnerWidth)

	mainMode, crossMode := MeasureModeExactly, MeasureModeExactly
	child.constrainMaxSizeForMode(fc.mainAxis, fc.availableInnerMain, fc.availableInnerWidth, &mainMode, &childMainSize)
	child.constrainMaxSizeForMode(fc.crossAxis, fc.availableInnerCross, fc.availableInnerWidth, &crossMode, &childCrossSize)

	childWidth, childHeight := childCrossSize, childMainSize
	if fc.mainIsRow {
		childWidth, childHeight = childMainSize, childCrossSize
	}

	p.layoutNode(child, childWidth, childHeight, fc.direction,
		exactUnlessUndefined(childWidth), exactUnlessUndefined(childHeight),
		fc.availableInnerWidth, fc.availableInnerHeight, true, "stretch")
}

func exactUnlessUndefined(size float64) MeasureMode {
	if IsUndefined(size) {
		return MeasureModeUndefined
	}
	return MeasureModeExactly
}

// alignLines distributes the container's spare cross space between lines
// according to align-content, then aligns each child within its line,
// including baseline alignment.
func (p *layoutPass) alignLines(fc *flexContainer, lineCount int, totalLineCrossDim float64) {
	n := fc.node
	remaining := fc.availableInnerCross - totalLineCrossDim
	lines := float64(lineCount)
	hasSpace := fc.availableInnerCross > totalLineCrossDim

	crossDimLead := 0.0
	currentLead := n.leadingPaddingAndBorder(fc.crossAxis, fc.ownerWidth)

	switch n.style.AlignContent {
	case AlignEnd:
		currentLead += remaining
	case AlignCenter:
		currentLead += remaining / 2
	case AlignStretch:
		if hasSpace {
			crossDimLead = remaining / lines
		}
	case AlignSpaceAround:
		if hasSpace {
			currentLead += remaining / (2 * lines)
			if lineCount > 1 {
				crossDimLead = remaining / lines
			}
		} else {
			currentLead += remaining / 2
		}
	case AlignSpaceBetween:
		if hasSpace && lineCount > 1 {
			crossDimLead = remaining / (lines - 1)
		}
	}

	endIndex := 0
	for i := 0; i < lineCount; i++ {
		startIndex := endIndex

		lineHeight := 0.0
		maxAscent, maxDescent := 0.0, 0.0

		ii := startIndex
		for ; ii < len(n.children); ii++ {
			child := n.children[ii]
			if child.style.Display == DisplayNone || child.isAbsolute() {
				continue
			}
			if child.layout.LineIndex != i {
				break
			}
			if child.isLayoutDimDefined(fc.crossAxis) {
				lineHeight = maxOrDefined(lineHeight, child.dimWithMargin(fc.crossAxis, fc.availableInnerWidth))
			}
			if n.alignItem(child) == AlignBaseline {
				ascent := child.baseline() + child.leadingMargin(Column, fc.availableInnerWidth)
				descent := child.layout.MeasuredDimensions[DimensionHeight] +
					child.marginForAxis(Column, fc.availableInnerWidth) - ascent
				maxAscent = maxOrDefined(maxAscent, ascent)
				maxDescent = maxOrDefined(maxDescent, descent)
				lineHeight = maxOrDefined(lineHeight, maxAscent+maxDescent)
			}
		}
		endIndex = ii
		lineHeight += crossDimLead

		for _, child := range n.children[startIndex:endIndex] {
			if child.style.Display == DisplayNone || child.isAbsolute() {
				continue
			}
			p.alignInLine(fc, child, currentLead, lineHeight, maxAscent)
		}

		currentLead += lineHeight
	}
}

func (p *layoutPass) alignInLine(fc *flexContainer, child *Node, lead, lineHeight, maxAscent float64) {
	n := fc.node
	crossPos := &child.layout.Position[leadingEdge[fc.crossAxis]]

	switch n.alignItem(child) {
	case AlignStart:
		*crossPos = lead + child.leadingMargin(fc.crossAxis, fc.availableInnerWidth)

	case AlignEnd:
		*crossPos = lead + lineHeight -
			child.trailingMargin(fc.crossAxis, fc.availableInnerWidth) -
			child.measured(fc.crossAxis)

	case AlignCenter:
		*crossPos = lead + (lineHeight-child.measured(fc.crossAxis))/2

	case AlignStretch:
		*crossPos = lead + child.leadingMargin(fc.crossAxis, fc.availableInnerWidth)

		// The child was only measured against the container so far.
		if child.isStyleDimDefined(fc.crossAxis, fc.availableInnerCross) {
			return
		}
		measuredW := child.layout.MeasuredDimensions[DimensionWidth]
		measuredH := child.layout.MeasuredDimensions[DimensionHeight]
		childWidth, childHeight := lineHeight, lineHeight
		if fc.mainIsRow {
			childWidth = measuredW + child.marginForAxis(fc.mainAxis, fc.availableInnerWidth)
		} else {
			childHeight = measuredH + child.marginForAxis(fc.crossAxis, fc.availableInnerWidth)
		}
		if !(FloatsEqual(childWidth, measuredW) && FloatsEqual(childHeight, measuredH)) {
			p.layoutNode(child, childWidth, childHeight, fc.direction,
				MeasureModeExactly, MeasureModeExactly,
				fc.availableInnerWidth, fc.availableInnerHeight, true, "multiline-stretch")
		}

	case AlignBaseline:
		child.layout.Position[EdgeTop] = lead + maxAscent - child.baseline() +
			child.leadingPosition(Column, fc.availableInnerCross)
	}
}
