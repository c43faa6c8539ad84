package util

import (
	"math"
	"strconv"
)

// SafeDiv returns n/d, or 0 when d is (numerically) zero.
func SafeDiv(n, d float64) float64 {
	const eps = 1e-12
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// Clamp01 limits x to [0,1]; NaN maps to 0.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	// guard against NaN
	if math.IsNaN(x) {
		return 0
	}
	return x
}

// RoundCount rounds x half-to-even and clamps the result at zero.
// NaN and negative inputs yield 0. Values above math.MaxInt32 saturate;
// callers that must not saturate bound x themselves.
func RoundCount(x float64) int {
	r := math.RoundToEven(x)
	if !(r > 0) {
		return 0
	}
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(r)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FirstNonFinite returns the index of the first non-finite value in xs, or -1.
func FirstNonFinite(xs []float64) int {
	for i, x := range xs {
		if !IsFinite(x) {
			return i
		}
	}
	return -1
}

// ArgMax returns the index and value of the largest element of xs.
// Ties resolve to the earliest index; an empty slice yields (-1, NaN).
func ArgMax(xs []float64) (int, float64) {
	if len(xs) == 0 {
		return -1, math.NaN()
	}
	idx, best := 0, xs[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] > best {
			idx, best = i, xs[i]
		}
	}
	return idx, best
}

// FmtFloat formats v with the shortest representation that round-trips.
func FmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
