package layout

import "testing"

func TestEdges_Computed(t *testing.T) {
	type tc struct {
		set      map[Edge]Value
		edge     Edge
		def      Value
		expected Value
	}

	tests := map[string]tc{
		"exact edge wins": {
			set:      map[Edge]Value{EdgeLeft: Point(1), EdgeHorizontal: Point(2), EdgeAll: Point(3)},
			edge:     EdgeLeft,
			def:      Point(0),
			expected: Point(1),
		},
		"vertical for top": {
			set:      map[Edge]Value{EdgeVertical: Point(2), EdgeAll: Point(3)},
			edge:     EdgeTop,
			def:      Point(0),
			expected: Point(2),
		},
		"vertical ignored for left": {
			set:      map[Edge]Value{EdgeVertical: Point(2), EdgeAll: Point(3)},
			edge:     EdgeLeft,
			def:      Point(0),
			expected: Point(3),
		},
		"horizontal for start": {
			set:      map[Edge]Value{EdgeHorizontal: Point(4)},
			edge:     EdgeStart,
			def:      Point(0),
			expected: Point(4),
		},
		"all for bottom": {
			set:      map[Edge]Value{EdgeAll: Percent(10)},
			edge:     EdgeBottom,
			def:      Point(0),
			expected: Percent(10),
		},
		"default when nothing set": {
			edge:     EdgeRight,
			def:      Point(7),
			expected: Point(7),
		},
		"start never takes default": {
			edge:     EdgeStart,
			def:      Point(7),
			expected: UndefinedValue(),
		},
		"end never takes default": {
			edge:     EdgeEnd,
			def:      Point(7),
			expected: UndefinedValue(),
		},
		"auto counts as set": {
			set:      map[Edge]Value{EdgeTop: Auto(), EdgeAll: Point(3)},
			edge:     EdgeTop,
			def:      Point(0),
			expected: Auto(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := UndefinedEdges()
			for edge, v := range tt.set {
				e[edge] = v
			}
			got := e.Computed(tt.edge, tt.def)
			if !got.Equal(tt.expected) {
				t.Errorf("Computed(%v) = %v, want %v", tt.edge, got, tt.expected)
			}
		})
	}
}

func TestStyle_Defaults(t *testing.T) {
	s := DefaultStyle()
	if s.FlexDirection != Column {
		t.Errorf("FlexDirection = %v, want column", s.FlexDirection)
	}
	if s.AlignItems != AlignStretch {
		t.Errorf("AlignItems = %v, want stretch", s.AlignItems)
	}
	if s.AlignContent != AlignStart {
		t.Errorf("AlignContent = %v, want flex-start", s.AlignContent)
	}
	if !IsUndefined(s.FlexGrow) || !IsUndefined(s.FlexShrink) || !IsUndefined(s.Flex) {
		t.Errorf("flex factors should be unset, got grow=%v shrink=%v flex=%v", s.FlexGrow, s.FlexShrink, s.Flex)
	}
	if !s.Dimensions[DimensionWidth].IsAuto() || !s.Dimensions[DimensionHeight].IsAuto() {
		t.Errorf("Dimensions = %v, want auto", s.Dimensions)
	}
	if s.MaxDimensions[DimensionWidth].IsDefined() {
		t.Errorf("MaxWidth = %v, want undefined", s.MaxDimensions[DimensionWidth])
	}

	w := WebDefaultStyle()
	if w.FlexDirection != Row || w.AlignContent != AlignStretch {
		t.Errorf("web defaults = %v/%v, want row/stretch", w.FlexDirection, w.AlignContent)
	}
}

func TestStyle_Equal(t *testing.T) {
	a := DefaultStyle()
	b := DefaultStyle()
	if !a.Equal(&b) {
		t.Fatal("two default styles should be equal")
	}

	b.Margin[EdgeLeft] = Point(1)
	if a.Equal(&b) {
		t.Error("styles with different margins should not be equal")
	}

	b = DefaultStyle()
	b.FlexGrow = 0
	if a.Equal(&b) {
		t.Error("unset flex grow should differ from zero")
	}
}

func TestEnums_RoundTripNames(t *testing.T) {
	for _, name := range flexDirectionNames {
		d, err := ParseFlexDirection(name)
		if err != nil {
			t.Fatalf("ParseFlexDirection(%q): %v", name, err)
		}
		if d.String() != name {
			t.Errorf("String() = %q, want %q", d.String(), name)
		}
	}

	if _, err := ParseAlign("middle"); err == nil {
		t.Error("ParseAlign(middle) should fail")
	}
	if got := Align(42).String(); got != "unknown(42)" {
		t.Errorf("String() = %q, want unknown(42)", got)
	}
}
