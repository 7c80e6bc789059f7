package layout

// MaxCachedMeasurements is the capacity of the per-node measurement ring.
const MaxCachedMeasurements = 16

// CachedMeasurement records the inputs and outputs of one layout or
// measurement of a node.
type CachedMeasurement struct {
	AvailableWidth    float64
	AvailableHeight   float64
	WidthMeasureMode  MeasureMode
	HeightMeasureMode MeasureMode

	ComputedWidth  float64
	ComputedHeight float64
}

// EmptyCachedMeasurement returns a slot that never matches a lookup.
func EmptyCachedMeasurement() CachedMeasurement {
	return CachedMeasurement{
		AvailableWidth:    0,
		AvailableHeight:   0,
		WidthMeasureMode:  MeasureModeUnset,
		HeightMeasureMode: MeasureModeUnset,
		ComputedWidth:     -1,
		ComputedHeight:    -1,
	}
}

// Result holds everything the engine computes for a node. Positions are
// relative to the owner's border box.
type Result struct {
	// Position is indexed by EdgeLeft, EdgeTop, EdgeRight, EdgeBottom.
	Position [4]float64
	// Dimensions is the final size after a full layout.
	Dimensions [2]float64

	// Resolved box edges, indexed by EdgeLeft through EdgeEnd.
	Margin  [6]float64
	Border  [6]float64
	Padding [6]float64

	Direction   Direction
	HadOverflow bool

	ComputedFlexBasis           float64
	ComputedFlexBasisGeneration uint64

	LineIndex int

	// GenerationCount is the layout pass that last visited the node; 0 means
	// never.
	GenerationCount    uint64
	LastOwnerDirection Direction
	lastOwnerValid     bool

	// MeasuredDimensions is the size produced by the most recent measure or
	// layout, used by the owner while it positions the node.
	MeasuredDimensions [2]float64

	CachedLayout                CachedMeasurement
	CachedMeasurements          [MaxCachedMeasurements]CachedMeasurement
	NextCachedMeasurementsIndex int
}

// NewResult returns a Result with every size undefined and empty caches.
func NewResult() Result {
	r := Result{
		Dimensions:         [2]float64{Undefined, Undefined},
		MeasuredDimensions: [2]float64{Undefined, Undefined},
		ComputedFlexBasis:  Undefined,
		CachedLayout:       EmptyCachedMeasurement(),
	}
	for i := range r.CachedMeasurements {
		r.CachedMeasurements[i] = EmptyCachedMeasurement()
	}
	return r
}

// SetLastOwnerDirection records the direction the owner laid this node out
// with.
func (r *Result) SetLastOwnerDirection(d Direction) {
	r.LastOwnerDirection = d
	r.lastOwnerValid = true
}

// OwnerDirectionChanged reports whether d differs from the direction of the
// previous layout, or whether there was no previous layout.
func (r *Result) OwnerDirectionChanged(d Direction) bool {
	return !r.lastOwnerValid || r.LastOwnerDirection != d
}

// InvalidateCache empties the layout slot and the measurement ring.
func (r *Result) InvalidateCache() {
	r.NextCachedMeasurementsIndex = 0
	r.CachedLayout = EmptyCachedMeasurement()
}
