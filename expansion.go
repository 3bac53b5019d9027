package robust

import "math"

// Estimate returns a float64 approximation of the value represented by the
// expansion e. Components are added from smallest to largest, so the result
// is within one rounding of the exact value for a nonoverlapping expansion.
// An empty expansion estimates to zero.
func Estimate(e []float64) float64 {
	var s float64
	for _, v := range e {
		s += v
	}
	return s
}

// Sign returns -1, 0 or +1 according to the sign of the exact value of e.
//
// In a nonoverlapping expansion the largest component outweighs all the
// others combined, so its sign is the sign of the whole.
func Sign(e []float64) int {
	if len(e) == 0 {
		return 0
	}
	top := e[len(e)-1]
	switch {
	case top > 0:
		return 1
	case top < 0:
		return -1
	default:
		return 0
	}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
