// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/katalvlaran/stoich/exact"
)

// Basis returns one rational null-space vector per free column, in the order
// of FreeColumns. Vector k has 1 at free column k, 0 at the other free columns,
// and pivot entries solved by back-substitution:
//
//	x[p_i] = -(Σ_{j>p_i} a[i][j]·x[j]) / a[i][p_i],  i = rank-1 … 0
//
// An empty result means the null space is trivial.
//
// Errors: exact.ErrOverflow from the rational arithmetic.
// Complexity: O(k · r · n) rational operations for nullity k.
func (e *Echelon) Basis() ([][]exact.Rat, error) {
	free := e.FreeColumns()
	out := make([][]exact.Rat, 0, len(free))
	for _, f := range free {
		v, err := e.backSubstitute(f)
		if err != nil {
			return nil, nsErrorf(opBasis, fmt.Errorf("free column %d: %w", f, err))
		}
		out = append(out, v)
	}

	return out, nil
}

// backSubstitute solves the pivot variables with x[free] = 1.
func (e *Echelon) backSubstitute(free int) ([]exact.Rat, error) {
	x := make([]exact.Rat, e.cols)
	for j := range x {
		x[j] = exact.Int(0)
	}
	x[free] = exact.Int(1)

	var (
		sum, term exact.Rat
		err       error
	)
	for i := len(e.pivots) - 1; i >= 0; i-- {
		p := e.pivots[i]
		row := e.rows[i]
		sum = exact.Int(0)
		for j := p + 1; j < e.cols; j++ {
			if row[j] == 0 || x[j].Sign() == 0 {
				continue
			}
			if term, err = x[j].Mul(exact.Int(row[j])); err != nil {
				return nil, err
			}
			if sum, err = sum.Add(term); err != nil {
				return nil, err
			}
		}
		if sum, err = sum.Neg(); err != nil {
			return nil, err
		}
		if x[p], err = sum.Quo(exact.Int(row[p])); err != nil {
			return nil, err
		}
	}

	return x, nil
}
