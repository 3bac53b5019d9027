package robust

// Error-free transformations.
//
// Each function returns the rounded result x together with the exact
// rounding error y, so that a + b == x + y holds in infinite precision.
// Both are written without comparisons so the merge loop stays branch-free.

// twoSum computes x = fl(a+b) and its exact error y for any a, b.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bv := x - a
	av := x - bv
	br := b - bv
	ar := a - av
	y = ar + br
	return x, y
}

// fastTwoSum computes x = fl(a+b) and its exact error y.
// Requires |a| >= |b| (or a == 0).
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bv := x - a
	y = b - bv
	return x, y
}

// scalarSum is the one-term plus one-term base case.
func scalarSum(a, b float64) []float64 {
	x, y := twoSum(a, b)
	if y != 0 {
		return []float64{y, x}
	}
	return []float64{x}
}
