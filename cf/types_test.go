// SPDX-License-Identifier: MIT

package cf_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Integer verifies that an integer fraction has one coefficient and
// evaluates to exactly that integer.
func TestNew_Integer(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -987654321, math.MaxInt32} {
		c := cf.New(v)
		assert.Equal(t, float64(v), c.Float64(), "value of [%d]", v)
		assert.Equal(t, 1, c.Len(), "length of [%d]", v)
		assert.True(t, c.IsInteger(), "[%d] must be an integer", v)
		assert.True(t, c.IsFinite())
		assert.False(t, c.IsPeriodic())
	}
}

// TestZeroValue ensures the zero ContinuedFraction behaves as [0].
func TestZeroValue(t *testing.T) {
	var c cf.ContinuedFraction
	assert.Equal(t, []int64{0}, c.Coefficients())
	assert.Equal(t, 0.0, c.Float64())
	assert.Equal(t, "[0]", c.String())
	assert.True(t, c.Equal(cf.New(0)))
}

// TestFromCoefficients_Empty checks the canonical empty state.
func TestFromCoefficients_Empty(t *testing.T) {
	c := cf.FromCoefficients(nil)
	assert.Equal(t, []int64{0}, c.Coefficients())
	assert.True(t, c.IsInteger())
}

// TestCoefficient_Equal covers the marker-sensitive coefficient equality.
func TestCoefficient_Equal(t *testing.T) {
	plain := cf.Coefficient{Value: 2}
	marked := cf.Coefficient{Value: 2, Periodic: true}
	neg := cf.Coefficient{Value: 2, Negative: true}

	assert.True(t, plain.Equal(cf.Coefficient{Value: 2}))
	assert.False(t, plain.Equal(marked), "marker must take part in equality")
	assert.False(t, plain.Equal(neg), "sign must take part in equality")
	assert.Equal(t, int64(-2), neg.Signed())
}

// TestMutators_InvalidateCache verifies that every mutator drops the memoized
// value before the next read.
func TestMutators_InvalidateCache(t *testing.T) {
	c := cf.FromCoefficients([]int64{1, 2})
	require.Equal(t, 1.5, c.Float64())

	c.SetCoefficients([]int64{2})
	assert.Equal(t, 2.0, c.Float64(), "SetCoefficients")

	c.AddCoefficient(2)
	assert.Equal(t, []int64{2, 2}, c.Coefficients())
	assert.Equal(t, 2.5, c.Float64(), "AddCoefficient")

	c.Clear()
	assert.Equal(t, []int64{0}, c.Coefficients())
	assert.Equal(t, 0.0, c.Float64(), "Clear")

	c.SetCoefficients([]int64{3, 4})
	assert.Equal(t, 3.25, c.Float64())
	c.Simplify()
	assert.Equal(t, 3.25, c.Float64(), "Simplify")

	n := cf.New(7)
	require.Equal(t, 7.0, n.Float64())
	n.AddCoefficient(2)
	assert.Equal(t, 7.5, n.Float64(), "AddCoefficient after New")
}

// TestClone_Independent ensures a clone does not share coefficients.
func TestClone_Independent(t *testing.T) {
	a := cf.FromCoefficients([]int64{3, 7, 16})
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.AddCoefficient(5)
	assert.Equal(t, []int64{3, 7, 16}, a.Coefficients(), "original must be untouched")
	assert.Equal(t, []int64{3, 7, 16, 5}, b.Coefficients())
}

// TestNew_MinInt64 pins the signed round trip of the one coefficient without
// a positive magnitude.
func TestNew_MinInt64(t *testing.T) {
	c := cf.New(math.MinInt64)
	assert.Equal(t, []int64{math.MinInt64}, c.Coefficients())

	k := c.Terms()[0]
	assert.True(t, k.Negative)
	assert.Equal(t, int64(math.MinInt64), k.Signed())
}

// TestTerms_CopyAndMarker checks Terms exposes markers without aliasing.
func TestTerms_CopyAndMarker(t *testing.T) {
	c := cf.CreatePeriodic([]int64{1}, []int64{2})
	ts := c.Terms()
	require.Len(t, ts, 2)
	assert.False(t, ts[0].Periodic)
	assert.True(t, ts[1].Periodic)

	ts[1].Value = 99
	assert.Equal(t, []int64{1, 2}, c.Coefficients())
}
