package layout

import (
	"github.com/grindlemire/go-flexbox/internal/layout"
	"github.com/hashicorp/go-hclog"
)

// layoutPass carries per-pass state down the recursion.
type layoutPass struct {
	config     *Config
	generation uint64
	log        hclog.Logger
	depth      int
}

func newLayoutPass(cfg *Config) *layoutPass {
	return &layoutPass{
		config:     cfg,
		generation: cfg.nextGeneration(),
		log:        cfg.logger.Named("layout"),
	}
}

func sizeIsExactAndMatchesOld(mode MeasureMode, size, lastComputed float64) bool {
	return mode == MeasureModeExactly && FloatsEqual(size, lastComputed)
}

func oldSizeIsUnspecifiedAndStillFits(mode MeasureMode, size float64, lastMode MeasureMode, lastComputed float64) bool {
	return mode == MeasureModeAtMost && lastMode == MeasureModeUndefined &&
		(size >= lastComputed || FloatsEqual(size, lastComputed))
}

func newMeasureSizeIsStricterAndStillValid(mode MeasureMode, size float64, lastMode MeasureMode, lastSize, lastComputed float64) bool {
	return lastMode == MeasureModeAtMost && mode == MeasureModeAtMost &&
		!IsUndefined(lastSize) && !IsUndefined(size) && !IsUndefined(lastComputed) &&
		lastSize > size && (lastComputed <= size || FloatsEqual(size, lastComputed))
}

// canUseCachedMeasurement reports whether a previous measurement of a leaf
// still answers a request for the given size and modes.
func canUseCachedMeasurement(
	wMode MeasureMode, width float64,
	hMode MeasureMode, height float64,
	last *layout.CachedMeasurement,
	marginRow, marginColumn float64,
	cfg *Config,
) bool {
	if (!IsUndefined(last.ComputedHeight) && last.ComputedHeight < 0) ||
		(!IsUndefined(last.ComputedWidth) && last.ComputedWidth < 0) {
		return false
	}

	useRounded := cfg != nil && cfg.pointScaleFactor != 0
	effWidth, effHeight := width, height
	lastWidth, lastHeight := last.AvailableWidth, last.AvailableHeight
	if useRounded {
		scale := cfg.pointScaleFactor
		effWidth = roundValueToPixelGrid(width, scale, false, false)
		effHeight = roundValueToPixelGrid(height, scale, false, false)
		lastWidth = roundValueToPixelGrid(lastWidth, scale, false, false)
		lastHeight = roundValueToPixelGrid(lastHeight, scale, false, false)
	}

	widthCompatible := (last.WidthMeasureMode == wMode && FloatsEqual(lastWidth, effWidth)) ||
		sizeIsExactAndMatchesOld(wMode, width-marginRow, last.ComputedWidth) ||
		oldSizeIsUnspecifiedAndStillFits(wMode, width-marginRow, last.WidthMeasureMode, last.ComputedWidth) ||
		newMeasureSizeIsStricterAndStillValid(wMode, width-marginRow, last.WidthMeasureMode, last.AvailableWidth, last.ComputedWidth)

	heightCompatible := (last.HeightMeasureMode == hMode && FloatsEqual(lastHeight, effHeight)) ||
		sizeIsExactAndMatchesOld(hMode, height-marginColumn, last.ComputedHeight) ||
		oldSizeIsUnspecifiedAndStillFits(hMode, height-marginColumn, last.HeightMeasureMode, last.ComputedHeight) ||
		newMeasureSizeIsStricterAndStillValid(hMode, height-marginColumn, last.HeightMeasureMode, last.AvailableHeight, last.ComputedHeight)

	return widthCompatible && heightCompatible
}

func exactCacheMatch(c *layout.CachedMeasurement, availW, availH float64, wMode, hMode MeasureMode) bool {
	return FloatsEqual(c.AvailableWidth, availW) && FloatsEqual(c.AvailableHeight, availH) &&
		c.WidthMeasureMode == wMode && c.HeightMeasureMode == hMode
}

// layoutNode wraps layoutImpl with the measurement cache. It returns true
// when the node was recomputed rather than answered from the cache.
func (p *layoutPass) layoutNode(
	n *Node,
	availW, availH float64,
	ownerDirection Direction,
	wMode, hMode MeasureMode,
	ownerW, ownerH float64,
	performLayout bool,
	reason string,
) bool {
	l := &n.layout

	p.depth++
	defer func() { p.depth-- }()

	needToVisit := (n.isDirty && l.GenerationCount != p.generation) || l.OwnerDirectionChanged(ownerDirection)
	if needToVisit {
		l.InvalidateCache()
	}

	var cached *layout.CachedMeasurement

	switch {
	case n.measureFunc != nil:
		marginRow := n.marginForAxis(Row, ownerW)
		marginColumn := n.marginForAxis(Column, ownerW)

		if canUseCachedMeasurement(wMode, availW, hMode, availH, &l.CachedLayout, marginRow, marginColumn, p.config) {
			cached = &l.CachedLayout
		} else {
			for i := 0; i < l.NextCachedMeasurementsIndex; i++ {
				if canUseCachedMeasurement(wMode, availW, hMode, availH, &l.CachedMeasurements[i], marginRow, marginColumn, p.config) {
					cached = &l.CachedMeasurements[i]
					break
				}
			}
		}
	case performLayout:
		if exactCacheMatch(&l.CachedLayout, availW, availH, wMode, hMode) {
			cached = &l.CachedLayout
		}
	default:
		for i := 0; i < l.NextCachedMeasurementsIndex; i++ {
			if exactCacheMatch(&l.CachedMeasurements[i], availW, availH, wMode, hMode) {
				cached = &l.CachedMeasurements[i]
				break
			}
		}
	}

	if !needToVisit && cached != nil {
		l.MeasuredDimensions[DimensionWidth] = cached.ComputedWidth
		l.MeasuredDimensions[DimensionHeight] = cached.ComputedHeight
		p.config.stats.CacheHits++

		if p.log.IsTrace() {
			p.log.Trace("skipped", "depth", p.depth, "reason", reason,
				"width", availW, "widthMode", wMode, "height", availH, "heightMode", hMode,
				"measuredWidth", cached.ComputedWidth, "measuredHeight", cached.ComputedHeight)
		}
	} else {
		p.config.stats.Visits++
		if p.log.IsTrace() {
			p.log.Trace("visit", "depth", p.depth, "reason", reason, "layout", performLayout,
				"width", availW, "widthMode", wMode, "height", availH, "heightMode", hMode)
		}

		p.layoutImpl(n, availW, availH, ownerDirection, wMode, hMode, ownerW, ownerH, performLayout)

		if p.log.IsTrace() {
			p.log.Trace("visited", "depth", p.depth, "reason", reason,
				"measuredWidth", l.MeasuredDimensions[DimensionWidth],
				"measuredHeight", l.MeasuredDimensions[DimensionHeight])
		}

		l.SetLastOwnerDirection(ownerDirection)

		if cached == nil {
			if l.NextCachedMeasurementsIndex == layout.MaxCachedMeasurements {
				p.log.Trace("out of cache entries", "depth", p.depth)
				l.NextCachedMeasurementsIndex = 0
			}

			var entry *layout.CachedMeasurement
			if performLayout {
				entry = &l.CachedLayout
			} else {
				entry = &l.CachedMeasurements[l.NextCachedMeasurementsIndex]
				l.NextCachedMeasurementsIndex++
			}

			entry.AvailableWidth = availW
			entry.AvailableHeight = availH
			entry.WidthMeasureMode = wMode
			entry.HeightMeasureMode = hMode
			entry.ComputedWidth = l.MeasuredDimensions[DimensionWidth]
			entry.ComputedHeight = l.MeasuredDimensions[DimensionHeight]
		}
	}

	if performLayout {
		l.Dimensions[DimensionWidth] = l.MeasuredDimensions[DimensionWidth]
		l.Dimensions[DimensionHeight] = l.MeasuredDimensions[DimensionHeight]
		n.hasNewLayout = true
		n.setDirty(false)
	}

	l.GenerationCount = p.generation
	return needToVisit || cached == nil
}
