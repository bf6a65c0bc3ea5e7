// SPDX-License-Identifier: MIT

package cf

import (
	"fmt"
	"math"
	"math/big"
)

// FromFloat64 expands x into at most maxTerms coefficients.
//
// Each step takes ⌊x⌋ as the next coefficient and continues with the
// reciprocal of the fractional part; the loop stops once that part is below
// FloatEpsilon or maxTerms coefficients were produced. maxTerms < 1 is
// treated as 1. The result is always finite: periodicity is never inferred
// from a float64.
//
// Errors:
//   - ErrInvalidArgument: x is NaN or ±Inf.
//   - ErrOverflow: ⌊x⌋ does not fit in an int64.
//
// Complexity: O(maxTerms).
func FromFloat64(x float64, maxTerms int) (*ContinuedFraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("from float %v: %w", x, ErrInvalidArgument)
	}
	if maxTerms < 1 {
		maxTerms = 1
	}

	terms := make([]int64, 0, maxTerms)
	for i := 0; i < maxTerms; i++ {
		whole := math.Floor(x)
		if whole < math.MinInt64 || whole >= math.MaxInt64 {
			return nil, fmt.Errorf("from float %v: %w", x, ErrOverflow)
		}
		terms = append(terms, int64(whole))

		frac := x - whole
		if math.Abs(frac) < FloatEpsilon {
			break
		}
		x = 1 / frac
	}

	return FromCoefficients(terms), nil
}

// FromRational expands num/den with the Euclidean algorithm.
//
// Every step appends the truncated quotient num/den and continues with
// (den, num mod den) until the remainder is zero, so negative inputs follow
// Go's truncated division (-7/3 → [-2; -3]).
//
// Errors:
//   - ErrInvalidArgument: den == 0.
//
// Complexity: O(log(min(|num|, |den|))).
func FromRational(num, den int64) (*ContinuedFraction, error) {
	if den == 0 {
		return nil, fmt.Errorf("from rational %d/0: %w", num, ErrInvalidArgument)
	}

	var terms []int64
	for den != 0 {
		terms = append(terms, num/den)
		num, den = den, num%den
	}

	return FromCoefficients(terms), nil
}

// FromRat expands a *big.Rat whose numerator and denominator fit in int64.
//
// Errors:
//   - ErrInvalidArgument: r is nil.
//   - ErrOverflow: numerator or denominator exceed int64.
func FromRat(r *big.Rat) (*ContinuedFraction, error) {
	if r == nil {
		return nil, fmt.Errorf("from rat <nil>: %w", ErrInvalidArgument)
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return nil, fmt.Errorf("from rat %s: %w", r.String(), ErrOverflow)
	}

	return FromRational(r.Num().Int64(), r.Denom().Int64())
}

// CreatePeriodic concatenates prefix and period, marks the first coefficient
// of a non-empty period and normalizes.
//
// A purely periodic expansion (empty prefix) is rewritten as
// [p0; (p1, …, pk, p0)], which is the same number and keeps the marker off
// the leading coefficient.
//
// Complexity: O(len(prefix) + len(period)).
func CreatePeriodic(prefix, period []int64) *ContinuedFraction {
	if len(prefix) == 0 && len(period) > 0 {
		prefix = period[:1]
		rotated := make([]int64, 0, len(period))
		rotated = append(rotated, period[1:]...)
		period = append(rotated, period[0])
	}

	coeffs := make([]Coefficient, 0, len(prefix)+len(period))
	for _, v := range prefix {
		coeffs = append(coeffs, newCoefficient(v, false))
	}
	for i, v := range period {
		coeffs = append(coeffs, newCoefficient(v, i == 0))
	}

	c := &ContinuedFraction{coeffs: coeffs}
	c.normalize()

	return c
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(s string) *ContinuedFraction {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}
