// Package robust computes exact sums of floating-point expansions.
//
// # Overview
//
// An expansion is a []float64 whose components, added in infinite
// precision, equal some real value exactly. Components are ordered by
// increasing magnitude and are nonoverlapping: the lowest set bit of each
// component lies above the highest set bit of the one before it. The zero
// value is written []float64{0}; no other expansion contains a zero.
//
// Expansions are the arithmetic kernel of robust geometric predicates
// (orientation, in-circle) where the rounding error of ordinary addition
// could flip a decision.
//
// # Quick Start
//
//	import "github.com/gogpu/robust"
//
//	s, err := robust.Sum([]float64{1, 64}, []float64{-1e-64, 1e64})
//	// s == []float64{-1e-64, 65, 1e64}, err == nil
//
//	robust.Estimate(s) // 1e64, nearest float64
//	robust.Sign(s)     // 1
//
// # Algorithm
//
// [Sum] implements linear expansion summation after J. R. Shewchuk,
// "Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates" (1997). The two inputs are merged by magnitude and fed
// through a two-word accumulator renormalized by error-free two-sum at
// every step. Time and space are linear in the input length.
//
// # Fixed Point
//
// Coordinates from golang.org/x/image/math/fixed convert to expansions
// without rounding via [FromInt26_6] and [FromInt52_12]; [SumInt52_12]
// adds any number of 52.12 values exactly.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Results are always
// freshly allocated and inputs are never modified.
package robust
