// SPDX-License-Identifier: MIT
// Package matrix: exact integer kernels.
//
// Purpose:
//   - MatVec for null-space verification (y = m·x, every product checked).
//   - ToRows to hand a working copy to elimination kernels outside the package.
//
// Notes:
//   - Kernels use the central validators and wrap with matrixErrorf(op*, err).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/stoich/exact"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opToRows = "ToRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x for a column vector x with overflow-checked
// int64 arithmetic.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense reads the flat buffer directly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - exact.ErrOverflow if any product or partial sum leaves int64.
//
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []int64) ([]int64, error) {
	if err := ValidateMatVec(m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]int64, rows)

	var (
		i, j   int
		mv, p  int64
		acc    int64
		err    error
		d, isD = m.(*Dense)
	)
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			if x[j] == 0 {
				continue // skip zero multiplications
			}
			if isD {
				mv = d.data[i*d.c+j]
			} else if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			if p, err = exact.Mul(mv, x[j]); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d col %d: %w", i, j, err))
			}
			if acc, err = exact.Add(acc, p); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d: %w", i, err))
			}
		}
		y[i] = acc
	}

	return y, nil
}

// IsZeroVec reports whether every entry of y is zero.
func IsZeroVec(y []int64) bool {
	for _, v := range y {
		if v != 0 {
			return false
		}
	}

	return true
}

// ToRows returns an independent [][]int64 copy of m, row by row.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	out := make([][]int64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := range out {
			out[i] = append([]int64(nil), d.data[i*d.c:(i+1)*d.c]...)
		}
		return out, nil
	}
	var err error
	for i := range out {
		out[i] = make([]int64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
		}
	}

	return out, nil
}
