// Package core holds small numeric helpers shared by the dsp packages.
package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max]. NaN maps to min.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero, +Inf for +Inf and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	switch {
	case power < 0 || math.IsNaN(power):
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	case math.IsInf(power, 1):
		return math.Inf(1)
	}

	return 10 * mathLog10(power)
}
