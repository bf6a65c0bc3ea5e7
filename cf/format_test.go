// SPDX-License-Identifier: MIT

package cf_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestString_Forms covers the integer, finite and periodic layouts.
func TestString_Forms(t *testing.T) {
	assert.Equal(t, "[42]", cf.New(42).String())
	assert.Equal(t, "[-3]", cf.New(-3).String())
	assert.Equal(t, "[3; 7, 16]", cf.FromCoefficients([]int64{3, 7, 16}).String())
	assert.Equal(t, "[0; 2]", cf.FromCoefficients([]int64{0, 2}).String())
	assert.Equal(t, "[1; (2)]", cf.CreatePeriodic([]int64{1}, []int64{2}).String())
	assert.Equal(t, "[4; 2, (3, 8)]", cf.CreatePeriodic([]int64{4, 2}, []int64{3, 8}).String())
}

// TestParse_Valid accepts ';' and ',' separators and surrounding spaces.
func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want []int64
	}{
		{"[5]", []int64{5}},
		{"[1; 2; 3]", []int64{1, 2, 3}},
		{"[1; 2, 3]", []int64{1, 2, 3}},
		{"[1;2;3]", []int64{1, 2, 3}},
		{"  [ -4 ; 5 ]  ", []int64{-4, 5}},
		{"[1; 1; 2]", []int64{3}},
	}
	for _, tc := range cases {
		c, err := cf.Parse(tc.in)
		require.NoError(t, err, "parse %q", tc.in)
		assert.Equal(t, tc.want, c.Coefficients(), "parse %q", tc.in)
		assert.True(t, c.IsFinite())
	}
}

// TestParse_Invalid ensures malformed text yields ErrInvalidFormat.
func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"1; 2",
		"[]",
		"[ ]",
		"[1;;2]",
		"[1; x]",
		"[1.5]",
		"[[1]]",
		"[1; 2",
		"[99999999999999999999]",
		"[1; (2)]",
	} {
		_, err := cf.Parse(in)
		assert.ErrorIs(t, err, cf.ErrInvalidFormat, "parse %q", in)
	}
}

// TestParse_RoundTripFinite verifies Parse(String(x)) == x for finite x.
func TestParse_RoundTripFinite(t *testing.T) {
	for _, terms := range [][]int64{{0}, {7}, {3, 7, 16}, {-2, -3}, {0, 2, 3, 4}, {2, 3, 1}} {
		x := cf.FromCoefficients(terms)
		y, err := cf.Parse(x.String())
		require.NoError(t, err, "parse %s", x)
		assert.True(t, x.Equal(y), "%s round trip", x)
	}
}

// TestParse_PeriodicNotConsumed documents that the printed periodic form
// does not parse back.
func TestParse_PeriodicNotConsumed(t *testing.T) {
	sqrt2, err := cf.Sqrt(2, 10)
	require.NoError(t, err)

	_, err = cf.Parse(sqrt2.String())
	assert.ErrorIs(t, err, cf.ErrInvalidFormat)
}

// TestText_JSON round-trips a finite fraction through encoding/json.
func TestText_JSON(t *testing.T) {
	type doc struct {
		X *cf.ContinuedFraction `json:"x"`
	}
	in := doc{X: cf.FromCoefficients([]int64{3, 7, 16})}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":"[3; 7, 16]"}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.X.Equal(out.X))

	err = json.Unmarshal([]byte(`{"x":"[1; (2)]"}`), &out)
	assert.ErrorIs(t, err, cf.ErrInvalidFormat)
}

// TestYAML_RoundTripPeriodic verifies the YAML mapping keeps the period.
func TestYAML_RoundTripPeriodic(t *testing.T) {
	for _, x := range []*cf.ContinuedFraction{
		cf.CreatePeriodic([]int64{1}, []int64{1, 2}),
		cf.CreatePeriodic([]int64{4, 2}, []int64{3, 8}),
		cf.FromCoefficients([]int64{3, 7, 16}),
	} {
		data, err := yaml.Marshal(x)
		require.NoError(t, err)

		var y cf.ContinuedFraction
		require.NoError(t, yaml.Unmarshal(data, &y), "yaml:\n%s", data)
		assert.True(t, x.Equal(&y), "%s vs %s", x, &y)
	}
}

// TestYAML_Scalar accepts the text form as a YAML scalar.
func TestYAML_Scalar(t *testing.T) {
	var y cf.ContinuedFraction
	require.NoError(t, yaml.Unmarshal([]byte(`"[3; 7, 16]"`), &y))
	assert.Equal(t, []int64{3, 7, 16}, y.Coefficients())

	err := yaml.Unmarshal([]byte(`{terms: [1, 2], period: 5}`), &y)
	assert.ErrorIs(t, err, cf.ErrInvalidArgument)
}

// TestFromParts mirrors Coefficients/PeriodStart.
func TestFromParts(t *testing.T) {
	x := cf.CreatePeriodic([]int64{4, 2}, []int64{3, 8})
	y, err := cf.FromParts(x.Coefficients(), x.PeriodStart())
	require.NoError(t, err)
	assert.True(t, x.Equal(y))

	f, err := cf.FromParts([]int64{3, 7}, -1)
	require.NoError(t, err)
	assert.True(t, f.IsFinite())

	_, err = cf.FromParts(nil, 0)
	assert.ErrorIs(t, err, cf.ErrInvalidArgument)
}
