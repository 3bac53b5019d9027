package robust

import (
	"fmt"
	"math"
	"slices"
)

// Sum returns the exact sum of the expansions e and f as a new expansion.
//
// Both arguments must be non-empty expansions: components ordered by
// non-decreasing magnitude and pairwise nonoverlapping. The ordering and
// nonoverlapping properties are not checked; violating them yields a result
// that is not guaranteed to be exact. Sum never modifies e or f.
//
// The result is nonoverlapping, ordered by increasing magnitude, and contains
// no zero components unless it is the zero expansion []float64{0}. It holds
// at most len(e)+len(f) components.
//
// Sum returns an error wrapping [ErrEmptyExpansion] if either argument is
// empty, [ErrNonFinite] if any component is NaN or infinite, and
// [ErrOverflow] if an intermediate sum overflows float64. This can happen
// even when the exact sum could be held by finite components.
//
// Example:
//
//	s, _ := robust.Sum([]float64{1, 64}, []float64{-1e-64, 1e64})
//	// s == []float64{-1e-64, 65, 1e64}
func Sum(e, f []float64) ([]float64, error) {
	if err := checkExpansion("e", e); err != nil {
		return nil, err
	}
	if err := checkExpansion("f", f); err != nil {
		return nil, err
	}

	g := sum(e, f)
	for _, v := range g {
		if !isFinite(v) {
			Logger().Debug("robust: sum overflows float64",
				"len_e", len(e), "len_f", len(f), "estimate", Estimate(g))
			return nil, ErrOverflow
		}
	}
	return g, nil
}

// checkExpansion rejects inputs the merge cannot handle.
func checkExpansion(name string, seq []float64) error {
	if len(seq) == 0 {
		Logger().Debug("robust: empty expansion", "arg", name)
		return fmt.Errorf("%s: %w", name, ErrEmptyExpansion)
	}
	for i, v := range seq {
		if !isFinite(v) {
			Logger().Debug("robust: non-finite component",
				"arg", name, "index", i, "value", v)
			return fmt.Errorf("%s[%d] = %v: %w", name, i, v, ErrNonFinite)
		}
	}
	return nil
}

// sum dispatches between the scalar base case and the linear merge.
// Both inputs must be non-empty.
func sum(e, f []float64) []float64 {
	if len(e) == 1 && len(f) == 1 {
		return scalarSum(e[0], f[0])
	}
	return linearExpansionSum(e, f)
}

// cursor reads an expansion from its smallest component upwards.
// val and abs keep the last loaded element once the cursor is exhausted.
type cursor struct {
	seq []float64
	pos int
	val float64
	abs float64
}

func newCursor(seq []float64) cursor {
	c := cursor{seq: seq}
	c.load()
	return c
}

func (c *cursor) load() {
	if c.pos < len(c.seq) {
		c.val = c.seq[c.pos]
		c.abs = math.Abs(c.val)
	}
}

func (c *cursor) exhausted() bool {
	return c.pos >= len(c.seq)
}

// advance consumes the current element and reports whether more remain.
func (c *cursor) advance() bool {
	c.pos++
	c.load()
	return !c.exhausted()
}

// next returns the smaller-magnitude head of e and f and advances that cursor.
//
// e wins only when its head is strictly smaller or f is exhausted; ties go
// to f. The rule decides which of several valid decompositions is produced,
// so changing it changes output bit patterns.
func next(e, f *cursor) float64 {
	if f.exhausted() || (!e.exhausted() && e.abs < f.abs) {
		v := e.val
		e.advance()
		return v
	}
	v := f.val
	f.advance()
	return v
}

// accumulator is the two-word running partial sum of the merge.
// q1 approximates the sum so far; q0 is its pending error.
type accumulator struct {
	q0, q1 float64
}

// add folds a into the accumulator and returns the component that can no
// longer change. The returned value may be zero.
func (acc *accumulator) add(a float64) float64 {
	x, y := twoSum(a, acc.q0)
	acc.q1, acc.q0 = twoSum(acc.q1, x)
	return y
}

// linearExpansionSum merges e and f by magnitude and accumulates the
// merged sequence with a two-word accumulator, emitting nonzero
// low-order components as they become final.
func linearExpansionSum(e, f []float64) []float64 {
	g := make([]float64, 0, len(e)+len(f))

	ec, fc := newCursor(e), newCursor(f)

	// Seed the accumulator with the two smallest components.
	b := next(&ec, &fc)
	a := next(&ec, &fc)
	var acc accumulator
	acc.q1, acc.q0 = twoSum(a, b)

	// Once one side runs dry, next drains the other in order.
	for !ec.exhausted() || !fc.exhausted() {
		if y := acc.add(next(&ec, &fc)); y != 0 {
			g = append(g, y)
		}
	}

	if acc.q0 != 0 {
		g = append(g, acc.q0)
	}
	if acc.q1 != 0 {
		g = append(g, acc.q1)
	}
	if len(g) == 0 {
		g = append(g, 0)
	}
	return slices.Clip(g)
}
