package layout

// Style contains all layout properties for a node.
type Style struct {
	// Container properties
	Direction      Direction
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignContent   Align
	AlignItems     Align
	FlexWrap       Wrap
	Overflow       Overflow

	// Item properties
	AlignSelf    Align // AlignAuto defers to the owner's AlignItems
	PositionType PositionType
	Display      Display
	Flex         float64 // Shorthand, Undefined when unset
	FlexGrow     float64 // Undefined when unset
	FlexShrink   float64 // Undefined when unset
	FlexBasis    Value

	// Box edges
	Margin   Edges
	Position Edges
	Padding  Edges
	Border   Edges

	// Sizing, indexed by Dimension
	Dimensions    [2]Value
	MinDimensions [2]Value
	MaxDimensions [2]Value
	AspectRatio   float64 // Width divided by height, Undefined when unset
}

// DefaultStyle returns the style every new node starts with.
func DefaultStyle() Style {
	return Style{
		FlexDirection: Column,
		AlignContent:  AlignStart,
		AlignItems:    AlignStretch,
		Flex:          Undefined,
		FlexGrow:      Undefined,
		FlexShrink:    Undefined,
		FlexBasis:     Auto(),
		Margin:        UndefinedEdges(),
		Position:      UndefinedEdges(),
		Padding:       UndefinedEdges(),
		Border:        UndefinedEdges(),
		Dimensions:    [2]Value{Auto(), Auto()},
		MinDimensions: [2]Value{UndefinedValue(), UndefinedValue()},
		MaxDimensions: [2]Value{UndefinedValue(), UndefinedValue()},
		AspectRatio:   Undefined,
	}
}

// WebDefaultStyle returns the defaults used when a config asks for
// browser-compatible behavior: row direction and stretched lines.
func WebDefaultStyle() Style {
	s := DefaultStyle()
	s.FlexDirection = Row
	s.AlignContent = AlignStretch
	return s
}

// Equal compares two styles, treating unset floats as equal to each other
// and values within the float tolerance as equal.
func (s *Style) Equal(o *Style) bool {
	if s.Direction != o.Direction ||
		s.FlexDirection != o.FlexDirection ||
		s.JustifyContent != o.JustifyContent ||
		s.AlignContent != o.AlignContent ||
		s.AlignItems != o.AlignItems ||
		s.AlignSelf != o.AlignSelf ||
		s.PositionType != o.PositionType ||
		s.FlexWrap != o.FlexWrap ||
		s.Overflow != o.Overflow ||
		s.Display != o.Display {
		return false
	}

	if !FloatsEqual(s.Flex, o.Flex) ||
		!FloatsEqual(s.FlexGrow, o.FlexGrow) ||
		!FloatsEqual(s.FlexShrink, o.FlexShrink) ||
		!FloatsEqual(s.AspectRatio, o.AspectRatio) ||
		!s.FlexBasis.Equal(o.FlexBasis) {
		return false
	}

	if !s.Margin.Equal(&o.Margin) ||
		!s.Position.Equal(&o.Position) ||
		!s.Padding.Equal(&o.Padding) ||
		!s.Border.Equal(&o.Border) {
		return false
	}

	for i := range s.Dimensions {
		if !s.Dimensions[i].Equal(o.Dimensions[i]) ||
			!s.MinDimensions[i].Equal(o.MinDimensions[i]) ||
			!s.MaxDimensions[i].Equal(o.MaxDimensions[i]) {
			return false
		}
	}
	return true
}
