package robust

import "golang.org/x/image/math/fixed"

// Fixed-point coordinates, as produced by font rasterizers and glyph outline
// loaders, converted to expansions without rounding.

const (
	scale26_6  = 1.0 / (1 << 6)
	scale52_12 = 1.0 / (1 << 12)
)

// FromInt26_6 returns the single-component expansion equal to v.
// Every 26.6 value fits a float64 mantissa, so no splitting is needed.
func FromInt26_6(v fixed.Int26_6) []float64 {
	return []float64{float64(v) * scale26_6}
}

// FromInt52_12 returns an expansion exactly equal to v.
//
// A 52.12 value carries up to 64 significant bits, more than a float64
// holds, so it is split into 32-bit halves that are each exact in float64
// and then combined with an error-free sum. The result has one or two
// components.
func FromInt52_12(v fixed.Int52_12) []float64 {
	// hi is zero or a multiple of 2^20 and lo lies in [0, 2^20), so
	// |hi| >= |lo| unless hi == 0.
	hi := float64(int64(v)>>32) * (1 << 32) * scale52_12
	lo := float64(int64(v)&0xffffffff) * scale52_12
	x, y := fastTwoSum(hi, lo)
	if y != 0 {
		return []float64{y, x}
	}
	return []float64{x}
}

// SumInt52_12 returns the exact sum of vs as an expansion. Unlike integer
// addition of the raw values it cannot overflow. The sum of no values is
// the zero expansion.
func SumInt52_12(vs ...fixed.Int52_12) []float64 {
	s := []float64{0}
	for _, v := range vs {
		s = sum(s, FromInt52_12(v))
	}
	return s
}
