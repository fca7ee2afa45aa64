// SPDX-License-Identifier: MIT
package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/formula"
)

// TestScannerTokens checks token boundaries and byte offsets.
func TestScannerTokens(t *testing.T) {
	t.Parallel()

	s := formula.NewScanner("Al2SO12H")
	var got []formula.Token
	for s.Scan() {
		got = append(got, s.Token())
	}
	require.NoError(t, s.Err())
	require.Equal(t, []formula.Token{
		{Symbol: "Al", Count: 2, Pos: 0},
		{Symbol: "S", Count: 1, Pos: 3},
		{Symbol: "O", Count: 12, Pos: 4},
		{Symbol: "H", Count: 1, Pos: 7},
	}, got)
}

// TestScannerStopsOnError verifies no tokens are emitted after the first error.
func TestScannerStopsOnError(t *testing.T) {
	t.Parallel()

	s := formula.NewScanner("H2#O")
	require.False(t, s.Scan())
	require.ErrorIs(t, s.Err(), formula.ErrUnexpectedChar)
	require.ErrorContains(t, s.Err(), "at 2")
	require.False(t, s.Scan())
}

func TestScannerEmpty(t *testing.T) {
	t.Parallel()

	s := formula.NewScanner("")
	require.False(t, s.Scan())
	require.NoError(t, s.Err())
}
