// SPDX-License-Identifier: MIT

package cf

// Float64 returns the float64 value of c.
//
// The expansion is evaluated back to front: start from the last coefficient
// and fold each preceding one in as aᵢ + 1/acc. While acc is 0 the reciprocal
// is skipped and acc restarts at aᵢ, so a tail that sums to zero (as in
// [2; -1, 1]) never yields ±Inf; [2; -1, 1] evaluates to 2.
//
// A periodic fraction is first unfolded through its period to
// PeriodicEvalDepth terms instead of being truncated to the stored
// coefficients, so that Sqrt(2, n) squares to 2 within 1e-6. The evaluation
// is still a finite truncation.
//
// The result is memoized until the next mutation.
// Complexity: O(k) on a cache miss, O(1) otherwise.
func (c *ContinuedFraction) Float64() float64 {
	if c.cache.valid {
		return c.cache.value
	}

	n := c.Len()
	if c.periodic && n < PeriodicEvalDepth {
		n = PeriodicEvalDepth
	}

	var acc float64
	for i := n - 1; i >= 0; i-- {
		a := float64(c.unfoldedTermAt(i))
		if acc == 0 {
			acc = a
			continue
		}
		acc = a + 1/acc
	}
	c.cache = valueCache{value: acc, valid: true}

	return acc
}
