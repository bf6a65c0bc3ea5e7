// SPDX-License-Identifier: MIT

package cf

// normalize canonicalizes the coefficient sequence.
//
// Algorithm Outline:
//  1. Drop every coefficient at index ≥ 1 whose value is 0. The leading
//     coefficient is kept even when it is 0.
//  2. Scan left to right; while aᵢ₊₁ == 1 and aᵢ₊₁ carries no marker,
//     replace (aᵢ, aᵢ₊₁, aᵢ₊₂) by aᵢ+aᵢ₊₂ and look at index i again.
//  3. Steps 1–2 repeat until neither changes anything: a fold can produce
//     a fresh zero (e.g. [5; -3, 1, 3]) that step 1 then removes.
//  4. Refresh the periodic flag and drop the cached value.
//
// Marker bookkeeping:
//   - a dropped zero hands its marker to the coefficient that follows it;
//   - a fold keeps the marker of aᵢ, and inherits the one of aᵢ₊₂ unless
//     i == 0, in which case the marker moves to the new a₁ (if any).
//
// Complexity: O(k²) worst case, O(k) for sequences with few unit terms.
func (c *ContinuedFraction) normalize() {
	if len(c.coeffs) == 0 {
		c.coeffs = []Coefficient{{}}
	}

	for {
		pruned := c.pruneZeros()
		folded := c.foldUnits()
		if !pruned && !folded {
			break
		}
	}

	c.periodic = false
	for _, k := range c.coeffs {
		if k.Periodic {
			c.periodic = true
			break
		}
	}
	c.cache = valueCache{}
}

// pruneZeros removes zero coefficients past index 0 and reports whether it
// removed anything.
func (c *ContinuedFraction) pruneZeros() bool {
	kept := c.coeffs[:1]
	carry := false
	for _, k := range c.coeffs[1:] {
		if k.Value == 0 {
			carry = carry || k.Periodic
			continue
		}
		if carry {
			k.Periodic = true
			carry = false
		}
		kept = append(kept, k)
	}
	changed := len(kept) != len(c.coeffs)
	c.coeffs = kept

	return changed
}

// foldUnits collapses [.., a, 1, b, ..] into [.., a+b, ..] and reports
// whether any fold happened.
func (c *ContinuedFraction) foldUnits() bool {
	changed := false
	for i := 0; i+2 < len(c.coeffs); {
		mid := c.coeffs[i+1]
		if mid.Signed() != 1 || mid.Periodic {
			i++
			continue
		}

		left, right := c.coeffs[i], c.coeffs[i+2]
		c.coeffs[i] = newCoefficient(left.Signed()+right.Signed(), left.Periodic || (right.Periodic && i > 0))
		c.coeffs = append(c.coeffs[:i+1], c.coeffs[i+3:]...)
		if right.Periodic && i == 0 && len(c.coeffs) > 1 {
			c.coeffs[1].Periodic = true
		}
		changed = true
	}

	return changed
}
