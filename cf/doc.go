// SPDX-License-Identifier: MIT

// Package cf represents numbers as simple continued fractions
//
//	a0 + 1/(a1 + 1/(a2 + 1/(a3 + …)))
//
// where every aᵢ is a signed 64-bit integer coefficient.
//
// 🚀 What is in the box?
//
//   - ContinuedFraction: an ordered, never-empty sequence of coefficients
//     with finiteness/periodicity flags and a memoized float64 value.
//   - Constructors: New (integer), FromCoefficients, Parse, FromFloat64,
//     FromRational, FromRat, CreatePeriodic.
//   - Convergents: Convergent, Convergents, the exact ConvergentRat and
//     UnfoldedConvergentRat for the infinite expansion of a periodic value.
//   - Arithmetic: Add, Sub, Mul, Quo and the *Assign forms.
//   - Comparisons: Equal, Less, LessEqual, Greater, GreaterEqual, Cmp, ApproxEqual.
//   - Generators: Sqrt, E, Pi and the GCD helper.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/contfrac/cf"
//
//	x, err := cf.FromRational(355, 113) // [3; 7, 16]
//	if err != nil {
//	  // handle ErrInvalidArgument
//	}
//	p, q, _ := x.Convergent(1)          // 22/7
//	fmt.Println(x, x.Float64(), p, q)
//
// Normalization:
//
// Every constructor and mutator canonicalizes the sequence: zero
// coefficients after the leading one are dropped, and a unit coefficient
// sitting between two others is folded into its neighbours
// ([a; 1, b] → [a+b]). The fold is structural and does not preserve the
// numeric value; it is applied exactly as described, on every mutation.
//
// Limitations:
//
//   - Add/Sub/Mul/Quo go through float64 and rebuild the result with
//     FromFloat64(x, DefaultMaxTerms). They are approximations, not exact
//     continued-fraction arithmetic (no homographic transformations here).
//   - Coefficients are int64. Convergent detects overflow and returns
//     ErrOverflow; use ConvergentRat for unbounded precision. The coefficient
//     math.MinInt64 keeps its signed value but has no positive magnitude.
//   - Convergent indices past the stored sequence of a periodic fraction wrap
//     modulo Len(), so [1; (2)] yields 1/1, 3/2, 4/3, 11/8, …. The
//     convergents of the repeating expansion (1/1, 3/2, 7/5, 17/12, …) come
//     from UnfoldedConvergentRat.
//   - String prints periodic fractions as "[a0; (p1, p2)]" but Parse does not
//     accept the parenthesized form; it is rejected with ErrInvalidFormat.
//     YAML (un)marshalling carries the period explicitly instead.
//
// Concurrency:
//
//	A ContinuedFraction caches its float64 value on first read. Values are
//	not safe for concurrent use when any goroutine mutates or reads them for
//	the first time; use Clone to hand independent copies to other goroutines.
//
// Copying:
//
//	Copy a value with Clone, never with a struct copy (y := *x). A struct
//	copy shares the coefficient array, and the next normalization of either
//	value rewrites it in place for both.
package cf
