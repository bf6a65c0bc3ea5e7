// SPDX-License-Identifier: MIT

package cf

import "math"

// Equal reports whether c and o hold the same coefficient sequence,
// periodic markers included. It is structural: [1; 2] and the value-equal
// result of an arithmetic round trip may differ.
func (c *ContinuedFraction) Equal(o *ContinuedFraction) bool {
	a, b := c.terms(), o.terms()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// NotEqual is !Equal.
func (c *ContinuedFraction) NotEqual(o *ContinuedFraction) bool { return !c.Equal(o) }

// Less compares by Float64.
func (c *ContinuedFraction) Less(o *ContinuedFraction) bool { return c.Float64() < o.Float64() }

// LessEqual compares by Float64.
func (c *ContinuedFraction) LessEqual(o *ContinuedFraction) bool { return c.Float64() <= o.Float64() }

// Greater compares by Float64.
func (c *ContinuedFraction) Greater(o *ContinuedFraction) bool { return c.Float64() > o.Float64() }

// GreaterEqual compares by Float64.
func (c *ContinuedFraction) GreaterEqual(o *ContinuedFraction) bool {
	return c.Float64() >= o.Float64()
}

// Cmp returns -1, 0 or +1 as c is numerically less than, equal to or greater
// than o. It is suitable for slices.SortFunc.
func (c *ContinuedFraction) Cmp(o *ContinuedFraction) int {
	x, y := c.Float64(), o.Float64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// ApproxEqual reports whether |a - b| < eps on the float64 values.
func ApproxEqual(a, b *ContinuedFraction, eps float64) bool {
	return math.Abs(a.Float64()-b.Float64()) < eps
}

// ApproxEqualDefault is ApproxEqual with DefaultApproxEpsilon.
func ApproxEqualDefault(a, b *ContinuedFraction) bool {
	return ApproxEqual(a, b, DefaultApproxEpsilon)
}
