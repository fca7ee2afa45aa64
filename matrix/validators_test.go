// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoich/matrix"
)

// TestValidateNotNil covers untyped and typed nil inputs.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense(t, 1, 1)))
}

// TestValidateMatVec covers nil inputs, matching and mismatched lengths.
func TestValidateMatVec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		x       []int64
		wantErr error
	}{
		{"nil matrix", nil, []int64{1}, matrix.ErrNilMatrix},
		{"nil vector", mustDense(t, 2, 3), nil, matrix.ErrNilMatrix},
		{"short vector", mustDense(t, 2, 3), []int64{1, 2}, matrix.ErrDimensionMismatch},
		{"long vector", mustDense(t, 2, 3), []int64{1, 2, 3, 4}, matrix.ErrDimensionMismatch},
		{"ok", mustDense(t, 2, 3), []int64{1, 2, 3}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMatVec(tc.m, tc.x)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}
