// SPDX-License-Identifier: MIT

package cf

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxTerms bounds FromFloat64 when it rebuilds arithmetic results,
	// and is the default term budget of the generators.
	DefaultMaxTerms = 20

	// FloatEpsilon stops FromFloat64 once the remaining fractional part is
	// smaller than this.
	FloatEpsilon = 1e-12

	// DivisionEpsilon is the smallest |divisor| Quo accepts.
	DivisionEpsilon = 1e-15

	// DefaultApproxEpsilon is the tolerance used by ApproxEqualDefault.
	DefaultApproxEpsilon = 1e-12

	// PeriodicEvalDepth is the number of terms Float64 unfolds a periodic
	// fraction to before evaluating it.
	PeriodicEvalDepth = 64
)

// Coefficient is one term aᵢ of the expansion.
//
// Value holds the magnitude (except for math.MinInt64, see newCoefficient)
// and Negative the sign. Periodic marks the first
// coefficient of the repeating block; at most one coefficient of a fraction
// carries it, and never the leading one.
type Coefficient struct {
	Value    int64
	Negative bool
	Periodic bool
}

// newCoefficient splits v into magnitude and sign. math.MinInt64 has no
// positive magnitude: its Value wraps to math.MinInt64 while Signed still
// returns the original v. This is part of the fixed-width int64 limitation.
func newCoefficient(v int64, periodic bool) Coefficient {
	if v < 0 {
		return Coefficient{Value: -v, Negative: true, Periodic: periodic}
	}
	return Coefficient{Value: v, Periodic: periodic}
}

// Signed returns the coefficient with its sign applied.
func (k Coefficient) Signed() int64 {
	if k.Negative {
		return -k.Value
	}
	return k.Value
}

// Equal reports whether k and o have the same signed value and the same
// periodic marker.
func (k Coefficient) Equal(o Coefficient) bool {
	return k.Signed() == o.Signed() && k.Periodic == o.Periodic
}

// valueCache memoizes Float64. valid is reset by every mutation.
type valueCache struct {
	value float64
	valid bool
}

// ContinuedFraction is a normalized sequence of coefficients.
//
// The zero value is the fraction [0]. A ContinuedFraction is a plain value:
// Clone gives an independent copy, while copying the struct shares the
// backing coefficient slice and must be avoided.
type ContinuedFraction struct {
	coeffs   []Coefficient
	periodic bool
	cache    valueCache
}

// New returns the single-term fraction [v].
// Complexity: O(1).
func New(v int64) *ContinuedFraction {
	return &ContinuedFraction{
		coeffs: []Coefficient{newCoefficient(v, false)},
		cache:  valueCache{value: float64(v), valid: true},
	}
}

// FromCoefficients builds a fraction from raw coefficients and normalizes it.
// An empty slice yields [0].
// Complexity: O(k).
func FromCoefficients(terms []int64) *ContinuedFraction {
	c := &ContinuedFraction{}
	c.SetCoefficients(terms)

	return c
}

// terms returns the stored coefficients, materializing [0] for the zero value.
func (c *ContinuedFraction) terms() []Coefficient {
	if len(c.coeffs) == 0 {
		c.coeffs = []Coefficient{{}}
	}

	return c.coeffs
}

// Coefficients returns a copy of the signed coefficients.
func (c *ContinuedFraction) Coefficients() []int64 {
	ts := c.terms()
	out := make([]int64, len(ts))
	for i, k := range ts {
		out[i] = k.Signed()
	}

	return out
}

// Terms returns a copy of the coefficients including their periodic markers.
func (c *ContinuedFraction) Terms() []Coefficient {
	ts := c.terms()
	out := make([]Coefficient, len(ts))
	copy(out, ts)

	return out
}

// SetCoefficients replaces the sequence with terms (no periodic marker) and
// normalizes it. An empty slice yields [0].
func (c *ContinuedFraction) SetCoefficients(terms []int64) {
	c.coeffs = make([]Coefficient, 0, len(terms))
	for _, v := range terms {
		c.coeffs = append(c.coeffs, newCoefficient(v, false))
	}
	c.normalize()
}

// AddCoefficient appends v and normalizes.
func (c *ContinuedFraction) AddCoefficient(v int64) {
	c.coeffs = append(c.terms(), newCoefficient(v, false))
	c.normalize()
}

// Clear resets the fraction to [0].
func (c *ContinuedFraction) Clear() {
	c.coeffs = []Coefficient{{}}
	c.normalize()
}

// Simplify re-runs normalization. It is a no-op on an already normalized
// fraction apart from dropping the cached value.
func (c *ContinuedFraction) Simplify() {
	c.terms()
	c.normalize()
}

// Clone returns an independent deep copy of c, cache included.
func (c *ContinuedFraction) Clone() *ContinuedFraction {
	ts := c.terms()
	out := &ContinuedFraction{
		coeffs:   make([]Coefficient, len(ts)),
		periodic: c.periodic,
		cache:    c.cache,
	}
	copy(out.coeffs, ts)

	return out
}

// assign moves the state of src into c.
func (c *ContinuedFraction) assign(src *ContinuedFraction) {
	c.coeffs = src.coeffs
	c.periodic = src.periodic
	c.cache = valueCache{}
}

// Len returns the number of stored coefficients (≥ 1).
func (c *ContinuedFraction) Len() int { return len(c.terms()) }

// IsPeriodic reports whether a coefficient carries the periodic marker.
func (c *ContinuedFraction) IsPeriodic() bool { return c.periodic }

// IsFinite is the negation of IsPeriodic.
func (c *ContinuedFraction) IsFinite() bool { return !c.periodic }

// IsInteger reports whether the fraction consists of a single coefficient.
func (c *ContinuedFraction) IsInteger() bool { return len(c.terms()) == 1 }

// PeriodStart returns the index of the marked coefficient, or -1 for a
// finite fraction.
func (c *ContinuedFraction) PeriodStart() int {
	for i, k := range c.terms() {
		if k.Periodic {
			return i
		}
	}

	return -1
}

// termAt returns the signed coefficient at i. Past the stored sequence the
// index wraps modulo Len(); callers guarantee i < Len() for finite fractions.
func (c *ContinuedFraction) termAt(i int) int64 {
	ts := c.terms()

	return ts[i%len(ts)].Signed()
}

// unfoldedTermAt returns the signed coefficient at i of the infinite
// expansion: past the stored sequence the periodic tail, from the marked
// coefficient on, repeats.
func (c *ContinuedFraction) unfoldedTermAt(i int) int64 {
	ts := c.terms()
	if i < len(ts) {
		return ts[i].Signed()
	}
	start := c.PeriodStart()
	period := len(ts) - start

	return ts[start+(i-start)%period].Signed()
}
