package layout

import "math"

// roundValueToPixelGrid snaps v to the nearest physical pixel for the given
// scale. forceCeil and forceFloor override the half-up rounding.
func roundValueToPixelGrid(v, scale float64, forceCeil, forceFloor bool) float64 {
	scaled := v * scale
	frac := math.Mod(scaled, 1)
	// math.Mod keeps the sign of scaled; the grid math needs a fraction in
	// [0, 1) so negative values round toward negative infinity.
	if frac < 0 {
		frac++
	}

	switch {
	case FloatsEqual(frac, 0):
		scaled -= frac
	case FloatsEqual(frac, 1):
		scaled = scaled - frac + 1
	case forceCeil:
		scaled = scaled - frac + 1
	case forceFloor:
		scaled -= frac
	default:
		up := 0.0
		if !IsUndefined(frac) && (frac > 0.5 || FloatsEqual(frac, 0.5)) {
			up = 1
		}
		scaled = scaled - frac + up
	}

	if IsUndefined(scaled) || IsUndefined(scale) {
		return Undefined
	}
	return scaled / scale
}

// roundToPixelGrid rounds the subtree's positions and sizes in absolute
// coordinates so that adjacent edges stay adjacent after rounding.
func roundToPixelGrid(n *Node, scale, absLeft, absTop float64) {
	if scale == 0 {
		return
	}

	left := n.layout.Position[EdgeLeft]
	top := n.layout.Position[EdgeTop]
	width := n.layout.Dimensions[DimensionWidth]
	height := n.layout.Dimensions[DimensionHeight]

	absLeft += left
	absTop += top
	absRight := absLeft + width
	absBottom := absTop + height

	// Text is never rounded down in size so it does not clip.
	text := n.nodeType == NodeTypeText

	n.layout.Position[EdgeLeft] = roundValueToPixelGrid(left, scale, false, text)
	n.layout.Position[EdgeTop] = roundValueToPixelGrid(top, scale, false, text)

	fractionalWidth := hasFraction(width * scale)
	fractionalHeight := hasFraction(height * scale)

	n.layout.Dimensions[DimensionWidth] =
		roundValueToPixelGrid(absRight, scale, text && fractionalWidth, text && !fractionalWidth) -
			roundValueToPixelGrid(absLeft, scale, false, text)
	n.layout.Dimensions[DimensionHeight] =
		roundValueToPixelGrid(absBottom, scale, text && fractionalHeight, text && !fractionalHeight) -
			roundValueToPixelGrid(absTop, scale, false, text)

	for _, child := range n.children {
		roundToPixelGrid(child, scale, absLeft, absTop)
	}
}

func hasFraction(v float64) bool {
	frac := math.Mod(v, 1)
	return !FloatsEqual(frac, 0) && !FloatsEqual(frac, 1)
}
