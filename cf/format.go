// SPDX-License-Identifier: MIT

package cf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// bracketed matches "[...]" with no nested brackets.
var bracketed = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

// separators splits the bracket content into coefficients.
var separators = regexp.MustCompile(`[;,]`)

// String formats c as "[a0]", "[a0; a1, a2]" or, for a periodic fraction,
// "[a0; a1, (p1, p2)]" with "(" right before the marked coefficient.
func (c *ContinuedFraction) String() string {
	ts := c.terms()

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strconv.FormatInt(ts[0].Signed(), 10))
	for i := 1; i < len(ts); i++ {
		if i == 1 {
			b.WriteString("; ")
		} else {
			b.WriteString(", ")
		}
		if ts[i].Periodic {
			b.WriteByte('(')
		}
		b.WriteString(strconv.FormatInt(ts[i].Signed(), 10))
	}
	if c.periodic {
		b.WriteString(")]")
	} else {
		b.WriteByte(']')
	}

	return b.String()
}

// Parse reads the bracketed form "[n1; n2; n3]". Coefficients may be
// separated by ';' or ',' with optional spaces, so everything String prints
// for a finite fraction parses back to the same coefficients.
//
// The periodic form "[a0; (p1, p2)]" is NOT accepted: parentheses are
// rejected with ErrInvalidFormat. Use YAML or CreatePeriodic to carry a
// period.
//
// Errors:
//   - ErrInvalidFormat: missing brackets, empty content, parentheses,
//     empty or non-integer coefficient.
func Parse(s string) (*ContinuedFraction, error) {
	c := &ContinuedFraction{}
	if err := c.parse(s); err != nil {
		return nil, err
	}

	return c, nil
}

// parse replaces c's coefficients with those read from s. On error c is
// left untouched.
func (c *ContinuedFraction) parse(s string) error {
	m := bracketed.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}
	if strings.ContainsAny(m[1], "()") {
		return fmt.Errorf("%q: periodic notation is not parsed: %w", s, ErrInvalidFormat)
	}

	fields := separators.Split(m[1], -1)
	terms := make([]int64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return fmt.Errorf("%q: empty coefficient %d: %w", s, i, ErrInvalidFormat)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return fmt.Errorf("%q: coefficient %d: %v: %w", s, i, err, ErrInvalidFormat)
		}
		terms = append(terms, v)
	}
	c.SetCoefficients(terms)

	return nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (c *ContinuedFraction) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse, so the
// periodic form is rejected exactly as in Parse.
func (c *ContinuedFraction) UnmarshalText(text []byte) error {
	return c.parse(string(text))
}

// yamlForm is the YAML mapping of a fraction. Period is the index of the
// marked coefficient; 0 means finite, as index 0 is never marked.
type yamlForm struct {
	Terms  []int64 `yaml:"terms,flow"`
	Period int     `yaml:"period,omitempty"`
}

// MarshalYAML implements yaml.Marshaler. Unlike the text form it preserves
// periodicity.
func (c *ContinuedFraction) MarshalYAML() (interface{}, error) {
	f := yamlForm{Terms: c.Coefficients()}
	if p := c.PeriodStart(); p > 0 {
		f.Period = p
	}

	return f, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts either a scalar in
// the text form or a {terms, period} mapping.
func (c *ContinuedFraction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return c.parse(node.Value)
	}

	var f yamlForm
	if err := node.Decode(&f); err != nil {
		return err
	}
	r, err := FromParts(f.Terms, f.Period)
	if err != nil {
		return err
	}
	c.assign(r)

	return nil
}

// FromParts rebuilds a fraction from its coefficients and the index of the
// marked coefficient (0 or negative for a finite fraction). It is the
// inverse of (Coefficients, PeriodStart).
//
// Errors:
//   - ErrInvalidArgument: terms is empty or period ≥ len(terms).
func FromParts(terms []int64, period int) (*ContinuedFraction, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("from parts: no terms: %w", ErrInvalidArgument)
	}
	if period >= len(terms) {
		return nil, fmt.Errorf("from parts: period %d with %d terms: %w", period, len(terms), ErrInvalidArgument)
	}
	if period <= 0 {
		return FromCoefficients(terms), nil
	}

	return CreatePeriodic(terms[:period], terms[period:]), nil
}
