// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/katalvlaran/stoich/exact"
	"github.com/katalvlaran/stoich/matrix"
)

// Operation tags for error wrapping.
const (
	opReduce = "Reduce"
	opBasis  = "Basis"
	opSolve  = "Solve"
	opVerify = "Verify"
)

// nsErrorf wraps err with an operation tag, preserving it for errors.Is.
func nsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Echelon is the fraction-free row echelon form of a matrix.
// Rows past Rank are zero. Pivots[i] is the pivot column of row i.
type Echelon struct {
	rows   [][]int64 // echelon form, len == original Rows()
	cols   int       // original Cols()
	pivots []int     // strictly increasing, len == rank
}

// Reduce runs Bareiss fraction-free Gaussian elimination on a copy of m.
//
// Implementation:
//   - Stage 1: copy m into a [][]int64 working buffer (m is never mutated).
//   - Stage 2: for each column c, take the first row >= rank with a non-zero
//     entry as pivot, swap it up, then for every row below
//     a[i][j] = (a[r][c]*a[i][j] - a[i][c]*a[r][j]) / prev for j > c,
//     where prev is the previous pivot (1 initially). The division is exact.
//   - Stage 3: record pivot columns; rank == len(pivots).
//
// Determinism: first-non-zero pivot rule, fixed i→j loop order.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//   - exact.ErrOverflow if any product or difference leaves int64.
//
// Complexity: O(m·n·min(m,n)) checked operations, O(m·n) space.
func Reduce(m matrix.Matrix) (*Echelon, error) {
	a, err := matrix.ToRows(m)
	if err != nil {
		return nil, nsErrorf(opReduce, err)
	}
	nr, nc := m.Rows(), m.Cols()

	var (
		prev   = int64(1)
		rank   int
		pivots = make([]int, 0, min(nr, nc))
		t1, t2 int64
	)
	for c := 0; c < nc && rank < nr; c++ {
		p := -1
		for i := rank; i < nr; i++ {
			if a[i][c] != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		a[p], a[rank] = a[rank], a[p]

		piv := a[rank][c]
		for i := rank + 1; i < nr; i++ {
			lead := a[i][c]
			for j := c + 1; j < nc; j++ {
				if t1, err = exact.Mul(piv, a[i][j]); err != nil {
					return nil, nsErrorf(opReduce, err)
				}
				if t2, err = exact.Mul(lead, a[rank][j]); err != nil {
					return nil, nsErrorf(opReduce, err)
				}
				if t1, err = exact.Sub(t1, t2); err != nil {
					return nil, nsErrorf(opReduce, err)
				}
				if a[i][j], err = exact.Quo(t1, prev); err != nil {
					return nil, nsErrorf(opReduce, fmt.Errorf("row %d col %d: %w", i, j, err))
				}
			}
			a[i][c] = 0
		}
		prev = piv
		pivots = append(pivots, c)
		rank++
	}

	return &Echelon{rows: a, cols: nc, pivots: pivots}, nil
}

// Rank returns the number of pivots.
func (e *Echelon) Rank() int { return len(e.pivots) }

// Nullity returns Cols - Rank, the dimension of the null space.
func (e *Echelon) Nullity() int { return e.cols - len(e.pivots) }

// Pivots returns a copy of the pivot column indices.
func (e *Echelon) Pivots() []int { return append([]int(nil), e.pivots...) }

// FreeColumns returns the non-pivot column indices in increasing order.
func (e *Echelon) FreeColumns() []int {
	free := make([]int, 0, e.Nullity())
	k := 0
	for c := 0; c < e.cols; c++ {
		if k < len(e.pivots) && e.pivots[k] == c {
			k++
			continue
		}
		free = append(free, c)
	}

	return free
}

// Matrix returns the echelon form as a new *matrix.Dense.
func (e *Echelon) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFrom(e.rows)
}
