package slider

import "math"

// Clamp restricts x to [lo, hi]. NaN is passed through unchanged; callers
// that must never see NaN check with math.IsNaN first.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ValueToPercent maps value onto [0, 1] relative to [min, max].
func ValueToPercent(value, min, max float64) (float64, error) {
	if max == min {
		return 0, &InvalidRangeError{Min: min, Max: max, Reason: "empty span"}
	}
	return (value - min) / (max - min), nil
}

// PercentToValue is the inverse of ValueToPercent.
func PercentToValue(percent, min, max float64) float64 {
	return min + percent*(max-min)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
