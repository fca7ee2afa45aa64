// SPDX-License-Identifier: MIT
package formula_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/exact"
	"github.com/katalvlaran/stoich/formula"
)

// TestParse covers the accepted grammar, including repeated symbols.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want map[string]int64
	}{
		{"single atom", "Na", map[string]int64{"Na": 1}},
		{"water", "H2O", map[string]int64{"H": 2, "O": 1}},
		{"sulfuric acid", "H2SO4", map[string]int64{"H": 2, "S": 1, "O": 4}},
		{"aluminium hydroxide flat", "AlO3H3", map[string]int64{"Al": 1, "O": 3, "H": 3}},
		{"repeated symbols sum", "CH3COOH", map[string]int64{"C": 2, "H": 4, "O": 2}},
		{"multi-digit count", "C12H22O11", map[string]int64{"C": 12, "H": 22, "O": 11}},
		{"long lowercase tail", "Uuo2", map[string]int64{"Uuo": 2}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ec, err := formula.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, len(tc.want), ec.Len())
			for sym, n := range tc.want {
				assert.Equalf(t, n, ec.Count(sym), "count of %s", sym)
				assert.True(t, ec.Has(sym))
			}
		})
	}
}

// TestParseErrors checks every rejection path maps to its sentinel.
func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", formula.ErrEmpty},
		{"lowercase start", "h2o", formula.ErrUnexpectedChar},
		{"space inside", "H2 O", formula.ErrUnexpectedChar},
		{"charge", "SO4-", formula.ErrUnexpectedChar},
		{"caret charge", "Fe^3", formula.ErrUnexpectedChar},
		{"lowercase after count", "H2o", formula.ErrUnexpectedChar},
		{"parenthesized group", "Ca(OH)2", formula.ErrUnsupported},
		{"bracket group", "K4[Fe]", formula.ErrUnsupported},
		{"hydrate dot", "CuSO4.H2O", formula.ErrUnsupported},
		{"leading coefficient", "2H2O", formula.ErrLeadingCoefficient},
		{"zero count", "H0", formula.ErrBadCount},
		{"count too large", "H99999999999999999999", formula.ErrBadCount},
		{"sum overflows", "H9223372036854775807H", exact.ErrOverflow},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := formula.Parse(tc.in)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestElementCountsOrder asserts sorted, encounter-independent iteration.
func TestElementCountsOrder(t *testing.T) {
	t.Parallel()

	a, err := formula.Parse("OSH2O3")
	require.NoError(t, err)
	b, err := formula.Parse("H2SO4")
	require.NoError(t, err)

	assert.Equal(t, []string{"H", "O", "S"}, a.Symbols())
	assert.True(t, a.Equal(b))
	assert.Equal(t, "H2 O4 S1", a.String())

	var seen []string
	for sym, n := range a.All() {
		seen = append(seen, sym)
		assert.Positive(t, n)
	}
	assert.Equal(t, a.Symbols(), seen)

	entries := a.Entries()
	entries[0].Count = 100 // copies must not alias
	assert.Equal(t, int64(2), a.Count("H"))

	assert.Equal(t, int64(0), a.Count("Xe"))
	assert.False(t, a.Has("Xe"))
}

// TestParseDeterministic re-parses the same string and expects identical counts.
func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Al2S3O12", "C6H12O6", "NaCl", "Fe2O3"} {
		first, err := formula.Parse(in)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := formula.Parse(in)
			require.NoError(t, err)
			require.True(t, first.Equal(again), in)
		}
	}
}

func TestCompound(t *testing.T) {
	t.Parallel()

	c, err := formula.NewCompound("Al2S3O12")
	require.NoError(t, err)
	assert.Equal(t, "Al2S3O12", c.Formula())
	assert.Equal(t, "Al2S3O12", c.String())
	assert.Equal(t, int64(12), c.Counts().Count("O"))

	_, err = formula.NewCompound("(")
	require.ErrorIs(t, err, formula.ErrUnsupported)

	assert.Panics(t, func() { formula.MustCompound("") })
	assert.NotPanics(t, func() { formula.MustCompound("He") })
}
