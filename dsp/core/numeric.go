package core

import "math"

const defaultEpsilon = 1e-12

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

// IsClose reports whether |actual - desired| <= atol + rtol*|desired|.
// Equal infinities are close; NaN is never close to anything.
func IsClose(actual, desired, rtol, atol float64) bool {
	if actual == desired {
		return true
	}
	if math.IsNaN(actual) || math.IsNaN(desired) || math.IsInf(actual, 0) || math.IsInf(desired, 0) {
		return false
	}
	return math.Abs(actual-desired) <= atol+rtol*math.Abs(desired)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
