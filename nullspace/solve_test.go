// SPDX-License-Identifier: MIT
package nullspace_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/exact"
	"github.com/katalvlaran/stoich/nullspace"
)

// TestSolve runs the solver on hand-built stoichiometric matrices
// (rows sorted by element symbol, products negated).
func TestSolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
		want []int64
	}{
		{
			name: "H2 + O2 = H2O",
			rows: [][]int64{{2, 0, -2}, {0, 2, -1}},
			want: []int64{2, 1, 2},
		},
		{
			name: "CH4 + O2 = CO2 + H2O",
			rows: [][]int64{{1, 0, -1, 0}, {4, 0, 0, -2}, {0, 2, -2, -1}},
			want: []int64{1, 2, 1, 2},
		},
		{
			name: "AlO3H3 + H2SO4 = Al2S3O12 + H2O",
			rows: [][]int64{
				{1, 0, -2, 0},   // Al
				{3, 2, 0, -2},   // H
				{3, 4, -12, -1}, // O
				{0, 1, -3, 0},   // S
			},
			want: []int64{2, 3, 1, 6},
		},
		{
			name: "Na + Cl = NaCl2",
			rows: [][]int64{{0, 1, -2}, {1, 0, -1}},
			want: []int64{1, 2, 1},
		},
		{
			name: "all products side flipped",
			rows: [][]int64{{-2, 0, 2}, {0, -2, 1}},
			want: []int64{2, 1, 2},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustFrom(t, tc.rows)
			x, err := nullspace.Solve(m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, x)
			require.NoError(t, nullspace.Verify(m, x))

			g, err := exact.GCDSlice(x)
			require.NoError(t, err)
			assert.Equal(t, int64(1), g, "solution must be minimal")
			for _, v := range x {
				assert.Positive(t, v)
			}
		})
	}
}

// TestSolveErrors maps each failure mode to its sentinel.
func TestSolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
		want error
		msg  string
	}{
		{"trivial null space: Na + Cl = NaO", [][]int64{{0, 1, 0}, {1, 0, -1}, {0, 0, -1}}, nullspace.ErrInfeasible, "trivial"},
		{"mixed signs: H2 + H2O = O2", [][]int64{{2, 2, 0}, {0, 1, -2}}, nullspace.ErrInfeasible, "coefficient"},
		{"zero coefficient: H2 + O2 + Ne = H2O", [][]int64{{2, 0, 0, -2}, {0, 0, 1, 0}, {0, 2, 0, -1}}, nullspace.ErrInfeasible, "coefficient 2 is 0"},
		{"underdetermined: H2 + O2 = H2O2 + H2O", [][]int64{{2, 0, -2, -2}, {0, 2, -2, -1}}, nullspace.ErrUnderdetermined, "dimension 2"},
		{"overflow during elimination", [][]int64{{1 << 40, 1, 0}, {1, 1 << 40, -1}}, exact.ErrOverflow, "Reduce"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := nullspace.Solve(mustFrom(t, tc.rows))
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			require.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	x, err := nullspace.Normalize([]int64{-4, -2, -6})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 3}, x)

	in := []int64{3, 6}
	x, err = nullspace.Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, x)
	assert.Equal(t, []int64{3, 6}, in, "input must not be modified")

	_, err = nullspace.Normalize([]int64{0, 0})
	require.ErrorIs(t, err, nullspace.ErrInfeasible)
	_, err = nullspace.Normalize([]int64{1, -1})
	require.ErrorIs(t, err, nullspace.ErrInfeasible)
	_, err = nullspace.Normalize([]int64{math.MinInt64, 2})
	require.ErrorIs(t, err, exact.ErrOverflow)
}

func TestIntegerize(t *testing.T) {
	t.Parallel()

	half, err := exact.NewRat(1, 2)
	require.NoError(t, err)
	third, err := exact.NewRat(-2, 3)
	require.NoError(t, err)

	x, err := nullspace.Integerize([]exact.Rat{half, third, exact.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -4, 6}, x)

	tiny, err := exact.NewRat(1, math.MaxInt64)
	require.NoError(t, err)
	_, err = nullspace.Integerize([]exact.Rat{tiny, half})
	require.ErrorIs(t, err, exact.ErrOverflow)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	m := mustFrom(t, [][]int64{{2, 0, -2}, {0, 2, -1}})
	require.NoError(t, nullspace.Verify(m, []int64{2, 1, 2}))

	err := nullspace.Verify(m, []int64{1, 1, 1})
	require.ErrorIs(t, err, nullspace.ErrNotInNullSpace)
	require.ErrorContains(t, err, "row 1 sums to 1")
}
