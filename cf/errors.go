// SPDX-License-Identifier: MIT

package cf

import "errors"

// Every message is prefixed with "cf: ". Callers match with errors.Is; when
// context is added it is wrapped as fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidFormat is returned by Parse for malformed text.
	ErrInvalidFormat = errors.New("cf: invalid continued fraction format")

	// ErrOutOfRange is returned by Convergent when the index lies beyond a
	// finite fraction (or is negative).
	ErrOutOfRange = errors.New("cf: convergent index out of range")

	// ErrInvalidArgument covers a zero denominator in FromRational, a
	// negative radicand in Sqrt and non-finite input to FromFloat64.
	ErrInvalidArgument = errors.New("cf: invalid argument")

	// ErrDivisionByZero is returned by Quo when |divisor| < DivisionEpsilon.
	ErrDivisionByZero = errors.New("cf: division by zero")

	// ErrOverflow signals that a convergent or a coefficient no longer fits
	// in an int64.
	ErrOverflow = errors.New("cf: int64 overflow")
)
