// SPDX-License-Identifier: MIT

package cf

import (
	"fmt"
	"math"
)

// Sqrt returns the continued fraction of √n.
//
// Algorithm (quadratic irrationals):
//  1. a0 = ⌊√n⌋; if a0² == n return [a0].
//  2. (m, d, a) = (0, 1, a0); repeat at most maxTerms times:
//     m = d·a − m, d = (n − m²)/d, a = (a0 + m)/d, emit a;
//     stop after emitting a == 2·a0, which closes the period.
//  3. Return CreatePeriodic([a0], emitted).
//
// maxTerms < 1 is treated as 1, so a non-square n always yields a periodic
// fraction.
//
// Errors:
//   - ErrInvalidArgument: n < 0.
//
// Complexity: O(min(maxTerms, period)).
func Sqrt(n int64, maxTerms int) (*ContinuedFraction, error) {
	if n < 0 {
		return nil, fmt.Errorf("sqrt(%d): %w", n, ErrInvalidArgument)
	}
	a0 := isqrt(n)
	if a0*a0 == n {
		return New(a0), nil
	}
	if maxTerms < 1 {
		maxTerms = 1
	}

	period := make([]int64, 0, maxTerms)
	m, d, a := int64(0), int64(1), a0
	for i := 0; i < maxTerms; i++ {
		m = d*a - m
		d = (n - m*m) / d
		a = (a0 + m) / d
		period = append(period, a)
		if a == 2*a0 {
			break
		}
	}

	return CreatePeriodic([]int64{a0}, period), nil
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting the float64 estimate.
func isqrt(n int64) int64 {
	r := uint64(math.Sqrt(float64(n)))
	u := uint64(n)
	for r*r > u {
		r--
	}
	for (r+1)*(r+1) <= u {
		r++
	}

	return int64(r)
}

// ETerms returns the first maxTerms coefficients of e in their raw form
// [2; 1, 2, 1, 1, 4, 1, 1, 6, …]: term i (i ≥ 1) is 2·((i+1)/3) when
// i mod 3 == 2 and 1 otherwise. maxTerms < 1 is treated as 1.
func ETerms(maxTerms int) []int64 {
	if maxTerms < 1 {
		maxTerms = 1
	}
	terms := make([]int64, 0, maxTerms)
	terms = append(terms, 2)
	for i := 1; i < maxTerms; i++ {
		if i%3 == 2 {
			terms = append(terms, int64(2*((i+1)/3)))
		} else {
			terms = append(terms, 1)
		}
	}

	return terms
}

// E returns FromCoefficients(ETerms(maxTerms)). Normalization folds the unit
// terms of the pattern, so the stored coefficients differ from ETerms.
func E(maxTerms int) *ContinuedFraction {
	return FromCoefficients(ETerms(maxTerms))
}

// Pi returns FromFloat64(math.Pi, maxTerms).
//
// This is the expansion of the float64 closest to π, not the canonical
// simple continued fraction of π; only the first few terms agree.
func Pi(maxTerms int) *ContinuedFraction {
	c, err := FromFloat64(math.Pi, maxTerms)
	if err != nil {
		// math.Pi is finite and small.
		panic(err)
	}

	return c
}

// GCD returns the greatest common divisor of a and b, always ≥ 0
// (except for GCD(MinInt64, 0), whose magnitude is not representable).
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}
