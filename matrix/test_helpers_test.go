// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface (non-*Dense) path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	return m
}

// mustFrom builds a *Dense from literal rows or fails the test.
func mustFrom(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}
