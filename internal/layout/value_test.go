package layout

import (
	"math"
	"testing"
)

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value   Value
		isAuto  bool
		defined bool
		unit    Unit
	}

	tests := map[string]tc{
		"Auto": {
			value:   Auto(),
			isAuto:  true,
			defined: true,
			unit:    UnitAuto,
		},
		"Point": {
			value:   Point(100),
			defined: true,
			unit:    UnitPoint,
		},
		"Percent": {
			value:   Percent(50),
			defined: true,
			unit:    UnitPercent,
		},
		"Undefined": {
			value: UndefinedValue(),
			unit:  UnitUndefined,
		},
		"Point NaN is undefined": {
			value: Point(math.NaN()),
			unit:  UnitUndefined,
		},
		"Percent NaN is undefined": {
			value: Percent(math.NaN()),
			unit:  UnitUndefined,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if got := tt.value.IsDefined(); got != tt.defined {
				t.Errorf("IsDefined() = %v, want %v", got, tt.defined)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		ownerSize float64
		expected  float64
	}

	tests := map[string]tc{
		"point ignores owner": {
			value:     Point(50),
			ownerSize: 100,
			expected:  50,
		},
		"point with undefined owner": {
			value:     Point(50),
			ownerSize: Undefined,
			expected:  50,
		},
		"negative point": {
			value:     Point(-10),
			ownerSize: 100,
			expected:  -10,
		},
		"50 percent of 100": {
			value:     Percent(50),
			ownerSize: 100,
			expected:  50,
		},
		"25 percent of 200": {
			value:     Percent(25),
			ownerSize: 200,
			expected:  50,
		},
		"fractional percent keeps fraction": {
			value:     Percent(33.5),
			ownerSize: 100,
			expected:  33.5,
		},
		"percent over 100": {
			value:     Percent(150),
			ownerSize: 100,
			expected:  150,
		},
		"percent of undefined owner": {
			value:     Percent(50),
			ownerSize: Undefined,
			expected:  Undefined,
		},
		"auto is undefined": {
			value:     Auto(),
			ownerSize: 100,
			expected:  Undefined,
		},
		"undefined is undefined": {
			value:     UndefinedValue(),
			ownerSize: 100,
			expected:  Undefined,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.ownerSize)
			if !FloatsEqual(got, tt.expected) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.ownerSize, got, tt.expected)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	type tc struct {
		a, b     Value
		expected bool
	}

	tests := map[string]tc{
		"same point":              {a: Point(10), b: Point(10), expected: true},
		"point within tolerance":  {a: Point(10), b: Point(10.00001), expected: true},
		"different points":        {a: Point(10), b: Point(11), expected: false},
		"point vs percent":        {a: Point(10), b: Percent(10), expected: false},
		"auto vs auto":            {a: Auto(), b: Auto(), expected: true},
		"undefined vs undefined":  {a: UndefinedValue(), b: UndefinedValue(), expected: true},
		"auto vs undefined":       {a: Auto(), b: UndefinedValue(), expected: false},
		"zero point vs undefined": {a: Point(0), b: UndefinedValue(), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	type tc struct {
		input    any
		expected Value
		wantErr  bool
	}

	tests := map[string]tc{
		"int":           {input: 12, expected: Point(12)},
		"float":         {input: 12.5, expected: Point(12.5)},
		"bare string":   {input: "12", expected: Point(12)},
		"pt suffix":     {input: "12pt", expected: Point(12)},
		"percent":       {input: "50%", expected: Percent(50)},
		"auto":          {input: "auto", expected: Auto()},
		"upper auto":    {input: " AUTO ", expected: Auto()},
		"undefined":     {input: "undefined", expected: UndefinedValue()},
		"nil":           {input: nil, expected: UndefinedValue()},
		"garbage":       {input: "wide", wantErr: true},
		"infinite":      {input: "inf", wantErr: true},
		"unknown type":  {input: []int{1}, wantErr: true},
		"value as-is":   {input: Percent(5), expected: Percent(5)},
		"negative":      {input: "-4pt", expected: Point(-4)},
		"empty string":  {input: "", expected: UndefinedValue()},
		"percent float": {input: "12.5%", expected: Percent(12.5)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(%v) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%v) error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParseValue(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := map[string]Value{
		"10pt":      Point(10),
		"12.5%":     Percent(12.5),
		"auto":      Auto(),
		"undefined": UndefinedValue(),
	}
	for want, v := range tests {
		if got := v.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
