package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is returned when a name does not match any enum value.
var ErrUnknownValue = errors.New("unknown value")

// Direction is the text direction used to resolve start/end edges.
type Direction uint8

const (
	DirectionInherit Direction = iota // Use the owner's direction
	LTR                               // Left-to-right
	RTL                               // Right-to-left
)

var directionNames = []string{"inherit", "ltr", "rtl"}

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Column        FlexDirection = iota // Children laid out top-to-bottom
	ColumnReverse                      // Children laid out bottom-to-top
	Row                                // Children laid out start-to-end
	RowReverse                         // Children laid out end-to-start
)

var flexDirectionNames = []string{"column", "column-reverse", "row", "row-reverse"}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyEnd                         // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

var justifyNames = []string{"flex-start", "center", "flex-end", "space-between", "space-around", "space-evenly"}

// Align specifies how children or lines are positioned on the cross axis.
type Align uint8

const (
	AlignAuto         Align = iota // Defer to the owner's AlignItems
	AlignStart                     // Align to start of cross axis
	AlignCenter                    // Center on cross axis
	AlignEnd                       // Align to end of cross axis
	AlignStretch                   // Stretch to fill cross axis
	AlignBaseline                  // Align first baselines
	AlignSpaceBetween              // Lines only
	AlignSpaceAround               // Lines only
)

var alignNames = []string{"auto", "flex-start", "center", "flex-end", "stretch", "baseline", "space-between", "space-around"}

// PositionType controls whether a node takes part in flex flow.
type PositionType uint8

const (
	PositionRelative PositionType = iota // In flow, insets offset the box
	PositionAbsolute                     // Out of flow, placed by insets
	PositionStatic                       // In flow, insets ignored
)

var positionTypeNames = []string{"relative", "absolute", "static"}

// Wrap controls whether children may break into multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota
	WrapWrap         // Break onto new lines along the cross axis
	WrapReverse      // Break onto new lines, stacking lines in reverse
)

var wrapNames = []string{"nowrap", "wrap", "wrap-reverse"}

// Overflow controls how content larger than the node is measured.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // Children are measured without the owner's bound
)

var overflowNames = []string{"visible", "hidden", "scroll"}

// Display toggles whether a node participates in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

var displayNames = []string{"flex", "none"}

// MeasureMode describes how an available size constrains a measurement.
type MeasureMode uint8

const (
	MeasureModeUndefined MeasureMode = iota // Unconstrained, max content
	MeasureModeExactly                      // Fill the size exactly
	MeasureModeAtMost                       // Fit content, capped at the size

	// MeasureModeUnset marks an empty cache slot.
	MeasureModeUnset MeasureMode = 0xff
)

var measureModeNames = []string{"undefined", "exactly", "at-most"}

// NodeType distinguishes text leaves, which are rounded differently.
type NodeType uint8

const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)

var nodeTypeNames = []string{"default", "text"}

// Dimension indexes width/height pairs.
type Dimension uint8

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

var dimensionNames = []string{"width", "height"}

// Edge indexes the sides of a box. Start and End are direction relative.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal // Left and right (and start/end) when not set directly
	EdgeVertical   // Top and bottom when not set directly
	EdgeAll        // Every edge when nothing more specific is set
)

// EdgeCount is the number of addressable edges.
const EdgeCount = 9

var edgeNames = []string{"left", "top", "right", "bottom", "start", "end", "horizontal", "vertical", "all"}

// ExperimentalFeature names a toggleable behavior change.
type ExperimentalFeature uint8

const (
	// FeatureRounding snaps the final layout to the pixel grid of the
	// point scale factor. It is on by default.
	FeatureRounding ExperimentalFeature = iota
	// FeatureWebFlexBasis recomputes a child's explicit flex basis on
	// every layout pass instead of caching it until the child is dirtied.
	FeatureWebFlexBasis

	featureCount
)

// FeatureCount is the number of experimental features.
const FeatureCount = int(featureCount)

var featureNames = []string{"rounding", "web-flex-basis"}

func enumString[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("unknown(%d)", uint8(v))
}

func parseEnum[T ~uint8](kind string, names []string, s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownValue)
}

func (d Direction) String() string           { return enumString(directionNames, d) }
func (d FlexDirection) String() string       { return enumString(flexDirectionNames, d) }
func (j Justify) String() string             { return enumString(justifyNames, j) }
func (a Align) String() string               { return enumString(alignNames, a) }
func (p PositionType) String() string        { return enumString(positionTypeNames, p) }
func (w Wrap) String() string                { return enumString(wrapNames, w) }
func (o Overflow) String() string            { return enumString(overflowNames, o) }
func (d Display) String() string             { return enumString(displayNames, d) }
func (m MeasureMode) String() string         { return enumString(measureModeNames, m) }
func (t NodeType) String() string            { return enumString(nodeTypeNames, t) }
func (d Dimension) String() string           { return enumString(dimensionNames, d) }
func (e Edge) String() string                { return enumString(edgeNames, e) }
func (f ExperimentalFeature) String() string { return enumString(featureNames, f) }

// ParseDirection parses "inherit", "ltr" or "rtl".
func ParseDirection(s string) (Direction, error) {
	return parseEnum[Direction]("direction", directionNames, s)
}

// ParseFlexDirection parses a CSS flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, error) {
	return parseEnum[FlexDirection]("flex direction", flexDirectionNames, s)
}

// ParseJustify parses a CSS justify-content keyword.
func ParseJustify(s string) (Justify, error) {
	return parseEnum[Justify]("justify", justifyNames, s)
}

// ParseAlign parses a CSS align-items, align-self or align-content keyword.
func ParseAlign(s string) (Align, error) {
	return parseEnum[Align]("align", alignNames, s)
}

// ParsePositionType parses "relative", "absolute" or "static".
func ParsePositionType(s string) (PositionType, error) {
	return parseEnum[PositionType]("position type", positionTypeNames, s)
}

// ParseWrap parses a CSS flex-wrap keyword.
func ParseWrap(s string) (Wrap, error) {
	return parseEnum[Wrap]("wrap", wrapNames, s)
}

// ParseOverflow parses a CSS overflow keyword.
func ParseOverflow(s string) (Overflow, error) {
	return parseEnum[Overflow]("overflow", overflowNames, s)
}

// ParseDisplay parses "flex" or "none".
func ParseDisplay(s string) (Display, error) {
	return parseEnum[Display]("display", displayNames, s)
}

// ParseExperimentalFeature parses a feature name such as "web-flex-basis".
func ParseExperimentalFeature(s string) (ExperimentalFeature, error) {
	return parseEnum[ExperimentalFeature]("experimental feature", featureNames, s)
}
