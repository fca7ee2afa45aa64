// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/katalvlaran/stoich/matrix"
)

// Verify checks exactly that m·x is the zero vector.
//
// Errors:
//   - ErrNotInNullSpace naming the first non-zero row.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, exact.ErrOverflow from MatVec.
func Verify(m matrix.Matrix, x []int64) error {
	y, err := matrix.MatVec(m, x)
	if err != nil {
		return nsErrorf(opVerify, err)
	}
	for i, v := range y {
		if v != 0 {
			return nsErrorf(opVerify, fmt.Errorf("%w: row %d sums to %d", ErrNotInNullSpace, i, v))
		}
	}

	return nil
}
