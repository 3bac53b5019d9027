// Package validate checks the structural invariants of floating-point
// expansions. It is used by the robust test suites; the robust package
// itself never validates its inputs this way.
package validate

import (
	"math"
	"math/bits"
)

// mantissaBits is the significand width of float64, hidden bit included.
const mantissaBits = 53

// Sequence reports whether seq is a valid expansion: non-empty, finite,
// free of zero components unless it is exactly []float64{0}, and pairwise
// nonoverlapping in increasing order of magnitude.
func Sequence(seq []float64) bool {
	if len(seq) == 0 {
		return false
	}
	for _, v := range seq {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if len(seq) == 1 {
		return true
	}
	for _, v := range seq {
		if v == 0 {
			return false
		}
	}
	for i := 1; i < len(seq); i++ {
		if !Nonoverlapping(seq[i-1], seq[i]) {
			return false
		}
	}
	return true
}

// Nonoverlapping reports whether the highest set bit of a lies strictly
// below the lowest set bit of b. Zero overlaps nothing.
func Nonoverlapping(a, b float64) bool {
	if a == 0 || b == 0 {
		return true
	}
	return HighBit(a) < LowBit(b)
}

// HighBit returns the exponent of the most significant set bit of x,
// so that 2^HighBit(x) <= |x| < 2^(HighBit(x)+1). x must be finite and
// nonzero.
func HighBit(x float64) int {
	_, exp := math.Frexp(x)
	return exp - 1
}

// LowBit returns the exponent of the least significant set bit of x.
// x must be finite and nonzero.
func LowBit(x float64) int {
	frac, exp := math.Frexp(math.Abs(x))
	// frac in [0.5, 1) has at most 53 significant bits, so scaling it to
	// an integer is exact, subnormals included.
	m := uint64(math.Ldexp(frac, mantissaBits))
	return exp - mantissaBits + bits.TrailingZeros64(m)
}
