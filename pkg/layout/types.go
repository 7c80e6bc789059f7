// types.go re-exports the data model from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package layout

import "github.com/grindlemire/go-flexbox/internal/layout"

// Types
type (
	Direction           = layout.Direction
	FlexDirection       = layout.FlexDirection
	Justify             = layout.Justify
	Align               = layout.Align
	PositionType        = layout.PositionType
	Wrap                = layout.Wrap
	Overflow            = layout.Overflow
	Display             = layout.Display
	MeasureMode         = layout.MeasureMode
	NodeType            = layout.NodeType
	Dimension           = layout.Dimension
	Edge                = layout.Edge
	ExperimentalFeature = layout.ExperimentalFeature
	Unit                = layout.Unit
	Value               = layout.Value
	Edges               = layout.Edges
	Style               = layout.Style
	Size                = layout.Size
)

// Direction constants
const (
	DirectionInherit = layout.DirectionInherit
	LTR              = layout.LTR
	RTL              = layout.RTL
)

// FlexDirection constants
const (
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
	Row           = layout.Row
	RowReverse    = layout.RowReverse
)

// Justify constants
const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align constants
const (
	AlignAuto         = layout.AlignAuto
	AlignStart        = layout.AlignStart
	AlignCenter       = layout.AlignCenter
	AlignEnd          = layout.AlignEnd
	AlignStretch      = layout.AlignStretch
	AlignBaseline     = layout.AlignBaseline
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
)

// PositionType constants
const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
	PositionStatic   = layout.PositionStatic
)

// Wrap constants
const (
	NoWrap      = layout.NoWrap
	WrapWrap    = layout.WrapWrap
	WrapReverse = layout.WrapReverse
)

// Overflow constants
const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// Display constants
const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// MeasureMode constants
const (
	MeasureModeUndefined = layout.MeasureModeUndefined
	MeasureModeExactly   = layout.MeasureModeExactly
	MeasureModeAtMost    = layout.MeasureModeAtMost
)

// NodeType constants
const (
	NodeTypeDefault = layout.NodeTypeDefault
	NodeTypeText    = layout.NodeTypeText
)

// Dimension constants
const (
	DimensionWidth  = layout.DimensionWidth
	DimensionHeight = layout.DimensionHeight
)

// Edge constants
const (
	EdgeLeft       = layout.EdgeLeft
	EdgeTop        = layout.EdgeTop
	EdgeRight      = layout.EdgeRight
	EdgeBottom     = layout.EdgeBottom
	EdgeStart      = layout.EdgeStart
	EdgeEnd        = layout.EdgeEnd
	EdgeHorizontal = layout.EdgeHorizontal
	EdgeVertical   = layout.EdgeVertical
	EdgeAll        = layout.EdgeAll
)

// Unit constants
const (
	UnitUndefined = layout.UnitUndefined
	UnitPoint     = layout.UnitPoint
	UnitPercent   = layout.UnitPercent
	UnitAuto      = layout.UnitAuto
)

// Experimental features
const (
	FeatureRounding     = layout.FeatureRounding
	FeatureWebFlexBasis = layout.FeatureWebFlexBasis
)

// Undefined is the NaN sentinel for unset or unresolvable sizes.
var Undefined = layout.Undefined

// Functions
var (
	IsUndefined     = layout.IsUndefined
	FloatsEqual     = layout.FloatsEqual
	UndefinedValue  = layout.UndefinedValue
	Auto            = layout.Auto
	Point           = layout.Point
	Percent         = layout.Percent
	ParseValue      = layout.ParseValue
	DefaultStyle    = layout.DefaultStyle
	WebDefaultStyle = layout.WebDefaultStyle
	DecodeStyle     = layout.DecodeStyle
)

// Undefined-aware min and max used throughout the engine.
var (
	maxOrDefined = layout.MaxOrDefined
	minOrDefined = layout.MinOrDefined
)

// ErrUnknownValue is returned when a keyword or value cannot be parsed.
var ErrUnknownValue = layout.ErrUnknownValue
