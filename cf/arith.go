// SPDX-License-Identifier: MIT

package cf

import (
	"fmt"
	"math"
)

// Arithmetic
//
// Description:
//
//	Each operator evaluates both operands with Float64, applies the float64
//	operation and rebuilds a fraction with FromFloat64(result, DefaultMaxTerms).
//	The result is therefore an approximation: exact continued-fraction
//	arithmetic needs homographic/bihomographic transforms, which this package
//	does not implement.
//
// Errors:
//   - ErrDivisionByZero: Quo with |divisor| < DivisionEpsilon.
//   - ErrInvalidArgument: the float64 result is NaN or ±Inf.
//   - ErrOverflow: the integer part of the result exceeds int64.

// Add returns c + o.
func (c *ContinuedFraction) Add(o *ContinuedFraction) (*ContinuedFraction, error) {
	return rebuild("add", c.Float64()+o.Float64())
}

// Sub returns c - o.
func (c *ContinuedFraction) Sub(o *ContinuedFraction) (*ContinuedFraction, error) {
	return rebuild("sub", c.Float64()-o.Float64())
}

// Mul returns c · o.
func (c *ContinuedFraction) Mul(o *ContinuedFraction) (*ContinuedFraction, error) {
	return rebuild("mul", c.Float64()*o.Float64())
}

// Quo returns c / o.
func (c *ContinuedFraction) Quo(o *ContinuedFraction) (*ContinuedFraction, error) {
	d := o.Float64()
	if math.Abs(d) < DivisionEpsilon {
		return nil, fmt.Errorf("quo by %s: %w", o, ErrDivisionByZero)
	}

	return rebuild("quo", c.Float64()/d)
}

// AddAssign sets c to c + o. On error c is left untouched.
func (c *ContinuedFraction) AddAssign(o *ContinuedFraction) error {
	return c.assignResult(c.Add(o))
}

// SubAssign sets c to c - o. On error c is left untouched.
func (c *ContinuedFraction) SubAssign(o *ContinuedFraction) error {
	return c.assignResult(c.Sub(o))
}

// MulAssign sets c to c · o. On error c is left untouched.
func (c *ContinuedFraction) MulAssign(o *ContinuedFraction) error {
	return c.assignResult(c.Mul(o))
}

// QuoAssign sets c to c / o. On error c is left untouched.
func (c *ContinuedFraction) QuoAssign(o *ContinuedFraction) error {
	return c.assignResult(c.Quo(o))
}

func (c *ContinuedFraction) assignResult(r *ContinuedFraction, err error) error {
	if err != nil {
		return err
	}
	c.assign(r)

	return nil
}

// rebuild converts an operator result back into a fraction.
func rebuild(op string, v float64) (*ContinuedFraction, error) {
	r, err := FromFloat64(v, DefaultMaxTerms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}
