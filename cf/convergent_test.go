// SPDX-License-Identifier: MIT

package cf_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvergent_Finite walks the convergents of 355/113.
func TestConvergent_Finite(t *testing.T) {
	c, err := cf.FromRational(355, 113)
	require.NoError(t, err)

	want := [][2]int64{{3, 1}, {22, 7}, {355, 113}}
	for n, w := range want {
		p, q, err := c.Convergent(n)
		require.NoError(t, err, "convergent %d", n)
		assert.Equal(t, w, [2]int64{p, q}, "convergent %d", n)
	}

	all, err := c.Convergents(2)
	require.NoError(t, err)
	assert.Equal(t, want, all)
}

// TestConvergent_OutOfRange covers both bounds on a finite fraction.
func TestConvergent_OutOfRange(t *testing.T) {
	c := cf.FromCoefficients([]int64{3, 7, 16})

	_, _, err := c.Convergent(3)
	assert.ErrorIs(t, err, cf.ErrOutOfRange)

	_, _, err = c.Convergent(-1)
	assert.ErrorIs(t, err, cf.ErrOutOfRange)

	_, err = c.Convergents(10)
	assert.ErrorIs(t, err, cf.ErrOutOfRange)

	_, err = c.ConvergentRat(3)
	assert.ErrorIs(t, err, cf.ErrOutOfRange)
}

// TestConvergent_PeriodicWraps checks that a periodic fraction accepts any
// index and wraps it modulo the stored length.
func TestConvergent_PeriodicWraps(t *testing.T) {
	sqrt2, err := cf.Sqrt(2, 10)
	require.NoError(t, err)
	require.True(t, sqrt2.IsPeriodic())
	require.Equal(t, []int64{1, 2}, sqrt2.Coefficients())

	// a = 1, 2, 1, 2, 1, 2
	want := [][2]int64{{1, 1}, {3, 2}, {4, 3}, {11, 8}, {15, 11}, {41, 30}}
	got, err := sqrt2.Convergents(len(want) - 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	p, q, err := sqrt2.Convergent(2)
	require.NoError(t, err)
	assert.Equal(t, [2]int64{4, 3}, [2]int64{p, q})

	r, err := sqrt2.ConvergentRat(2)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(4, 3)))

	sqrt3, err := cf.Sqrt(3, 10)
	require.NoError(t, err)
	// stored [1, 1, 2]; a = 1, 1, 2, 1, 1
	p, q, err = sqrt3.Convergent(4)
	require.NoError(t, err)
	assert.Equal(t, [2]int64{12, 7}, [2]int64{p, q})

	_, _, err = sqrt3.Convergent(40)
	assert.NoError(t, err, "periodic fractions accept indices past the stored terms")
}

// TestUnfoldedConvergentRat follows the repeating expansion instead.
func TestUnfoldedConvergentRat(t *testing.T) {
	sqrt2, err := cf.Sqrt(2, 10)
	require.NoError(t, err)

	want := [][2]int64{{1, 1}, {3, 2}, {7, 5}, {17, 12}, {41, 29}, {99, 70}}
	for n, w := range want {
		r, err := sqrt2.UnfoldedConvergentRat(n)
		require.NoError(t, err, "convergent %d", n)
		assert.Equal(t, 0, r.Cmp(big.NewRat(w[0], w[1])), "convergent %d: got %s", n, r)
	}

	sqrt3, err := cf.Sqrt(3, 10)
	require.NoError(t, err)
	r, err := sqrt3.UnfoldedConvergentRat(4)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(19, 11)))

	finite := cf.FromCoefficients([]int64{3, 7, 16})
	r, err = finite.UnfoldedConvergentRat(2)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(355, 113)))

	_, err = finite.UnfoldedConvergentRat(3)
	assert.ErrorIs(t, err, cf.ErrOutOfRange)
}

// TestConvergent_RationalRecovered verifies that the last convergent of
// FromRational reproduces p/q for expansions without interior unit terms.
func TestConvergent_RationalRecovered(t *testing.T) {
	cases := [][2]int64{{355, 113}, {17, 5}, {13, 30}, {7, 3}, {5, 1}, {-7, 3}}
	for _, pq := range cases {
		c, err := cf.FromRational(pq[0], pq[1])
		require.NoError(t, err)

		p, q, err := c.Convergent(c.Len() - 1)
		require.NoError(t, err)
		assert.Equal(t, pq[0]*q, p*pq[1], "%d/%d vs %d/%d", pq[0], pq[1], p, q)
	}
}

// TestConvergent_Overflow verifies that int64 overflow is reported and that
// ConvergentRat computes the exact value instead.
func TestConvergent_Overflow(t *testing.T) {
	c := cf.FromCoefficients([]int64{1_000_000_000, 1_000_000_000, 1_000_000_000, 1_000_000_000})

	_, _, err := c.Convergent(1)
	require.NoError(t, err)

	_, _, err = c.Convergent(3)
	assert.ErrorIs(t, err, cf.ErrOverflow)

	r, err := c.ConvergentRat(3)
	require.NoError(t, err)
	e := big.NewInt(1_000_000_000)
	// p3 = a^4 + 3a^2 + 1, q3 = a^3 + 2a for a = 1e9
	p := new(big.Int).Exp(e, big.NewInt(4), nil)
	p.Add(p, new(big.Int).Mul(big.NewInt(3), new(big.Int).Mul(e, e)))
	p.Add(p, big.NewInt(1))
	q := new(big.Int).Exp(e, big.NewInt(3), nil)
	q.Add(q, new(big.Int).Mul(big.NewInt(2), e))
	assert.Equal(t, 0, r.Cmp(new(big.Rat).SetFrac(p, q)))
}

// TestConvergentRat_MatchesConvergent compares both paths on small input.
func TestConvergentRat_MatchesConvergent(t *testing.T) {
	c := cf.FromCoefficients([]int64{0, 2, 3, 4})
	for n := 0; n < c.Len(); n++ {
		p, q, err := c.Convergent(n)
		require.NoError(t, err)
		r, err := c.ConvergentRat(n)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Cmp(big.NewRat(p, q)), "convergent %d", n)
	}
}
