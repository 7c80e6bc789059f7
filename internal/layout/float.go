package layout

import "math"

// Undefined is the sentinel for a size or factor that has not been set or
// cannot be resolved. It is distinct from zero.
var Undefined = math.NaN()

// epsilon is the tolerance used by FloatsEqual.
const epsilon = 0.0001

// IsUndefined reports whether f is the Undefined sentinel.
func IsUndefined(f float64) bool {
	return math.IsNaN(f)
}

// FloatsEqual compares two floats within a small tolerance. Two undefined
// values are equal; an undefined and a defined value are not.
func FloatsEqual(a, b float64) bool {
	if IsUndefined(a) || IsUndefined(b) {
		return IsUndefined(a) && IsUndefined(b)
	}
	return math.Abs(a-b) < epsilon
}

// MaxOrDefined returns the larger of a and b, ignoring an undefined operand.
func MaxOrDefined(a, b float64) float64 {
	switch {
	case !IsUndefined(a) && !IsUndefined(b):
		return math.Max(a, b)
	case IsUndefined(a):
		return b
	default:
		return a
	}
}

// MinOrDefined returns the smaller of a and b, ignoring an undefined operand.
func MinOrDefined(a, b float64) float64 {
	switch {
	case !IsUndefined(a) && !IsUndefined(b):
		return math.Min(a, b)
	case IsUndefined(a):
		return b
	default:
		return a
	}
}

// Size is a width/height pair returned by measure callbacks.
type Size struct {
	Width  float64
	Height float64
}
