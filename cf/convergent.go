// SPDX-License-Identifier: MIT

package cf

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Convergent returns the n-th convergent p/q of c.
//
// Recurrence:
//
//	p(-1) = 1, p(0) = a0, p(i) = a(i)·p(i-1) + p(i-2)
//	q(-1) = 0, q(0) = 1,  q(i) = a(i)·q(i-1) + q(i-2)
//
// For a finite fraction n must satisfy 0 ≤ n < Len(). A periodic fraction
// accepts any n ≥ 0: past the stored sequence the coefficient index wraps
// modulo Len(), starting over at a0. For √2 = [1; (2)] this gives 1/1, 3/2,
// 4/3, 11/8, …; use UnfoldedConvergentRat for the convergents of the
// repeating expansion itself.
//
// The result is not reduced and keeps the sign produced by the recurrence.
//
// Errors:
//   - ErrOutOfRange: n < 0, or n ≥ Len() on a finite fraction.
//   - ErrOverflow: p or q does not fit in an int64.
//
// Complexity: O(n).
func (c *ContinuedFraction) Convergent(n int) (p, q int64, err error) {
	if err = c.checkIndex(n); err != nil {
		return 0, 0, err
	}

	pPrev, qPrev := int64(1), int64(0)
	p, q = c.termAt(0), 1
	for i := 1; i <= n; i++ {
		a := c.termAt(i)
		np, ok1 := mulAdd(a, p, pPrev)
		nq, ok2 := mulAdd(a, q, qPrev)
		if !ok1 || !ok2 {
			return 0, 0, fmt.Errorf("convergent %d: %w", i, ErrOverflow)
		}
		pPrev, qPrev, p, q = p, q, np, nq
	}

	return p, q, nil
}

// Convergents returns the convergents 0..n inclusive as [2]int64{p, q} pairs.
// Errors are those of Convergent.
func (c *ContinuedFraction) Convergents(n int) ([][2]int64, error) {
	if err := c.checkIndex(n); err != nil {
		return nil, err
	}

	out := make([][2]int64, 0, n+1)
	pPrev, qPrev := int64(1), int64(0)
	p, q := c.termAt(0), int64(1)
	out = append(out, [2]int64{p, q})
	for i := 1; i <= n; i++ {
		a := c.termAt(i)
		np, ok1 := mulAdd(a, p, pPrev)
		nq, ok2 := mulAdd(a, q, qPrev)
		if !ok1 || !ok2 {
			return out, fmt.Errorf("convergent %d: %w", i, ErrOverflow)
		}
		pPrev, qPrev, p, q = p, q, np, nq
		out = append(out, [2]int64{p, q})
	}

	return out, nil
}

// ConvergentRat is Convergent computed with math/big; it never overflows.
// The returned *big.Rat is reduced to lowest terms.
func (c *ContinuedFraction) ConvergentRat(n int) (*big.Rat, error) {
	if err := c.checkIndex(n); err != nil {
		return nil, err
	}

	return convergentRat(n, c.termAt)
}

// UnfoldedConvergentRat returns the n-th convergent of the infinite
// expansion of c: past the stored sequence the periodic tail (from the
// marked coefficient on) repeats, so √2 = [1; (2)] yields 1/1, 3/2, 7/5,
// 17/12, …. On a finite fraction it equals ConvergentRat.
//
// Errors:
//   - ErrOutOfRange: n < 0, or n ≥ Len() on a finite fraction.
func (c *ContinuedFraction) UnfoldedConvergentRat(n int) (*big.Rat, error) {
	if err := c.checkIndex(n); err != nil {
		return nil, err
	}

	return convergentRat(n, c.unfoldedTermAt)
}

// convergentRat runs the convergent recurrence over term(0..n) in math/big.
func convergentRat(n int, term func(int) int64) (*big.Rat, error) {
	pPrev, qPrev := big.NewInt(1), big.NewInt(0)
	p, q := big.NewInt(term(0)), big.NewInt(1)
	a := new(big.Int)
	for i := 1; i <= n; i++ {
		a.SetInt64(term(i))
		np := new(big.Int).Mul(a, p)
		np.Add(np, pPrev)
		nq := new(big.Int).Mul(a, q)
		nq.Add(nq, qPrev)
		pPrev, qPrev, p, q = p, q, np, nq
	}
	if q.Sign() == 0 {
		return nil, fmt.Errorf("convergent %d has zero denominator: %w", n, ErrDivisionByZero)
	}

	return new(big.Rat).SetFrac(p, q), nil
}

// checkIndex validates a convergent index against c.
func (c *ContinuedFraction) checkIndex(n int) error {
	if n < 0 || (!c.periodic && n >= c.Len()) {
		return fmt.Errorf("index %d with %d coefficients: %w", n, c.Len(), ErrOutOfRange)
	}

	return nil
}

// mulAdd returns a·x + y and false when the result overflows int64.
func mulAdd(a, x, y int64) (int64, bool) {
	m, ok := mulInt64(a, x)
	if !ok {
		return 0, false
	}

	return addInt64(m, y)
}

// mulInt64 multiplies with a 128-bit intermediate and reports overflow.
func mulInt64(a, b int64) (int64, bool) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

// addInt64 adds and reports overflow.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// absU64 returns |x| as uint64; MinInt64 maps to 1<<63.
func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}
