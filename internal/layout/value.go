package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // Not set
	UnitPoint                 // Absolute points
	UnitPercent               // Percentage of the owner's size on the same axis
	UnitAuto                  // Size determined by content/flex
)

var unitNames = []string{"undefined", "point", "percent", "auto"}

func (u Unit) String() string { return enumString(unitNames, u) }

// Value represents a dimension or edge that can be points, a percentage,
// auto, or unset.
type Value struct {
	Amount float64
	Unit   Unit
}

// UndefinedValue returns the unset Value.
func UndefinedValue() Value {
	return Value{Amount: Undefined, Unit: UnitUndefined}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Amount: Undefined, Unit: UnitAuto}
}

// Point returns a Value representing an absolute number of points.
// A NaN amount yields the undefined value.
func Point(v float64) Value {
	if IsUndefined(v) {
		return UndefinedValue()
	}
	return Value{Amount: v, Unit: UnitPoint}
}

// Percent returns a Value representing a percentage of the owner's size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	if IsUndefined(p) {
		return UndefinedValue()
	}
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value in points against the owner's size on the same
// axis. Auto and undefined values resolve to Undefined, as does a percentage
// of an undefined owner size.
func (v Value) Resolve(ownerSize float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Amount
	case UnitPercent:
		return v.Amount * ownerSize * 0.01
	default:
		return Undefined
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined reports whether the value has been set to something other than
// the undefined value.
func (v Value) IsDefined() bool {
	return v.Unit != UnitUndefined
}

// Equal compares units and, for points and percentages, amounts within
// the float tolerance.
func (v Value) Equal(o Value) bool {
	if v.Unit != o.Unit {
		return false
	}
	if v.Unit == UnitUndefined || v.Unit == UnitAuto {
		return true
	}
	return FloatsEqual(v.Amount, o.Amount)
}

func (v Value) String() string {
	switch v.Unit {
	case UnitPoint:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "pt"
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	case UnitAuto:
		return "auto"
	default:
		return "undefined"
	}
}

// ParseValue converts a number or a string such as "12", "12pt", "50%",
// "auto" or "undefined" into a Value.
func ParseValue(in any) (Value, error) {
	switch v := in.(type) {
	case Value:
		return v, nil
	case float64:
		return Point(v), nil
	case float32:
		return Point(float64(v)), nil
	case int:
		return Point(float64(v)), nil
	case int64:
		return Point(float64(v)), nil
	case string:
		return parseValueString(v)
	case nil:
		return UndefinedValue(), nil
	default:
		return Value{}, fmt.Errorf("value of type %T: %w", in, ErrUnknownValue)
	}
}

func parseValueString(s string) (Value, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "", "undefined":
		return UndefinedValue(), nil
	}

	unit := UnitPoint
	switch {
	case strings.HasSuffix(s, "%"):
		unit = UnitPercent
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("value %q: %w", s, ErrUnknownValue)
	}
	if unit == UnitPercent {
		return Percent(f), nil
	}
	return Point(f), nil
}
