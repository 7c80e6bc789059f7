package layout

import (
	"errors"
	"testing"

	"github.com/shoenig/test/must"
)

func TestDecodeStyle(t *testing.T) {
	input := map[string]any{
		"flexDirection":   "row-reverse",
		"justifyContent":  "space-between",
		"alignItems":      "center",
		"position":        "absolute",
		"flexWrap":        "wrap",
		"flexGrow":        2,
		"flexBasis":       "50%",
		"width":           100,
		"height":          "auto",
		"maxWidth":        "200pt",
		"aspectRatio":     1.5,
		"margin":          4,
		"marginLeft":      "auto",
		"paddingVertical": 3,
		"borderTopWidth":  1,
		"left":            10,
		"end":             "5%",
	}

	s, err := DecodeStyle(input, DefaultStyle())
	must.NoError(t, err)

	must.Eq(t, RowReverse, s.FlexDirection)
	must.Eq(t, JustifySpaceBetween, s.JustifyContent)
	must.Eq(t, AlignCenter, s.AlignItems)
	must.Eq(t, PositionAbsolute, s.PositionType)
	must.Eq(t, WrapWrap, s.FlexWrap)
	must.Eq(t, 2.0, s.FlexGrow)
	must.True(t, s.FlexBasis.Equal(Percent(50)))
	must.True(t, s.Dimensions[DimensionWidth].Equal(Point(100)))
	must.True(t, s.Dimensions[DimensionHeight].IsAuto())
	must.True(t, s.MaxDimensions[DimensionWidth].Equal(Point(200)))
	must.Eq(t, 1.5, s.AspectRatio)
	must.True(t, s.Margin[EdgeAll].Equal(Point(4)))
	must.True(t, s.Margin[EdgeLeft].IsAuto())
	must.True(t, s.Padding[EdgeVertical].Equal(Point(3)))
	must.True(t, s.Border[EdgeTop].Equal(Point(1)))
	must.True(t, s.Position[EdgeLeft].Equal(Point(10)))
	must.True(t, s.Position[EdgeEnd].Equal(Percent(5)))

	// untouched keys keep the base value
	must.Eq(t, AlignStart, s.AlignContent)
	must.True(t, IsUndefined(s.FlexShrink))
}

func TestDecodeStyle_Errors(t *testing.T) {
	type tc struct {
		input map[string]any
	}

	tests := map[string]tc{
		"unknown enum keyword": {
			input: map[string]any{"flexDirection": "diagonal"},
		},
		"unknown edge key": {
			input: map[string]any{"marginMiddle": 4},
		},
		"bad dimension": {
			input: map[string]any{"paddingLeft": "wide"},
		},
		"unrelated key": {
			input: map[string]any{"color": "red"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			base := DefaultStyle()
			got, err := DecodeStyle(tt.input, base)
			must.Error(t, err)
			must.True(t, got.Equal(&base))
		})
	}
}

func TestDecodeStyle_AggregatesEdgeErrors(t *testing.T) {
	_, err := DecodeStyle(map[string]any{
		"marginMiddle": 1,
		"paddingTop":   "wide",
	}, DefaultStyle())
	must.Error(t, err)
	must.True(t, errors.Is(err, ErrUnknownValue))
	must.StrContains(t, err.Error(), "marginMiddle")
	must.StrContains(t, err.Error(), "paddingTop")
}

func TestDecodeStyle_AggregatesFieldAndEdgeErrors(t *testing.T) {
	base := DefaultStyle()
	got, err := DecodeStyle(map[string]any{
		"flexDirection": "diagonal",
		"marginMiddle":  1,
	}, base)
	must.Error(t, err)
	must.True(t, got.Equal(&base))
	must.StrContains(t, err.Error(), "diagonal")
	must.StrContains(t, err.Error(), "marginMiddle")
}
