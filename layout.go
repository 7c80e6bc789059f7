// layout.go re-exports the node API from pkg/layout.
// Any changes to the pkg/layout surface must be mirrored here.
package flexbox

import "github.com/grindlemire/go-flexbox/pkg/layout"

// Node is a box in the layout tree.
type Node = layout.Node

// Config holds settings shared by the nodes of a tree.
type Config = layout.Config

// ConfigOption configures a Config.
type ConfigOption = layout.ConfigOption

// Style holds the layout properties of a node.
type Style = layout.Style

// Value is a length in points or percent, auto, or unset.
type Value = layout.Value

// Size is a measured width and height.
type Size = layout.Size

// Callbacks a host can attach to nodes and configs.
type (
	MeasureFunc   = layout.MeasureFunc
	BaselineFunc  = layout.BaselineFunc
	PrintFunc     = layout.PrintFunc
	DirtiedFunc   = layout.DirtiedFunc
	CloneNodeFunc = layout.CloneNodeFunc
)

// Direction is the inline text direction.
type Direction = layout.Direction

const (
	DirectionInherit = layout.DirectionInherit
	LTR              = layout.LTR
	RTL              = layout.RTL
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection = layout.FlexDirection

const (
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
	Row           = layout.Row
	RowReverse    = layout.RowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children and lines are aligned along the cross axis.
type Align = layout.Align

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

// PositionType selects in-flow or absolute placement.
type PositionType = layout.PositionType

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
	PositionStatic   = layout.PositionStatic
)

// Wrap controls whether children may flow onto several lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapWrap    = layout.WrapWrap
	WrapReverse = layout.WrapReverse
)

type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// MeasureMode tells a measure callback how to treat an available size.
type MeasureMode = layout.MeasureMode

const (
	MeasureModeUndefined = layout.MeasureModeUndefined
	MeasureModeExactly   = layout.MeasureModeExactly
	MeasureModeAtMost    = layout.MeasureModeAtMost
)

// Edge names one side of a box, or a shorthand for several.
type Edge = layout.Edge

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

// PrintOptions selects what Node.Print writes.
type PrintOptions = layout.PrintOptions

const (
	PrintLayout   = layout.PrintLayout
	PrintStyle    = layout.PrintStyle
	PrintChildren = layout.PrintChildren
)

// ExperimentalFeature names a toggleable behavior change.
type ExperimentalFeature = layout.ExperimentalFeature

const (
	FeatureRounding     = layout.FeatureRounding
	FeatureWebFlexBasis = layout.FeatureWebFlexBasis
)

// Undefined is the NaN sentinel for unset or unresolvable sizes.
var Undefined = layout.Undefined

// NewNode creates a node with its own default config.
func NewNode() *Node {
	return layout.NewNode()
}

// NewNodeWithConfig creates a node that shares cfg with the rest of its tree.
func NewNodeWithConfig(cfg *Config) *Node {
	return layout.NewNodeWithConfig(cfg)
}

// NewConfig creates a config and applies opts.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	return layout.NewConfig(opts...)
}

// WithPointScaleFactor sets the physical pixels per point used by rounding.
func WithPointScaleFactor(scale float64) ConfigOption {
	return layout.WithPointScaleFactor(scale)
}

// WithExperimentalFeature enables an experimental feature.
func WithExperimentalFeature(f ExperimentalFeature) ConfigOption {
	return layout.WithExperimentalFeature(f)
}

// DecodeConfig builds a config from a generic settings map.
func DecodeConfig(input map[string]any, opts ...ConfigOption) (*Config, error) {
	return layout.DecodeConfig(input, opts...)
}

// DecodeStyle applies a CSS-like property map on top of base.
func DecodeStyle(input map[string]any, base Style) (Style, error) {
	return layout.DecodeStyle(input, base)
}

// IsUndefined reports whether f is the Undefined sentinel.
func IsUndefined(f float64) bool {
	return layout.IsUndefined(f)
}

// Point creates a Value in points.
func Point(v float64) Value {
	return layout.Point(v)
}

// Percent creates a Value on a 0-100 scale of the owner's size.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes from content or flex.
func Auto() Value {
	return layout.Auto()
}
