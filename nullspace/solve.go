// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/katalvlaran/stoich/exact"
	"github.com/katalvlaran/stoich/matrix"
)

// Solve returns the minimal strictly positive integer vector x with m·x = 0.
// It is Reduce followed by Echelon.Solve.
//
// Returns:
//   - []int64 aligned with the columns of m; every entry >= 1 and
//     gcd(entries) == 1.
//
// Errors:
//   - ErrInfeasible, ErrUnderdetermined, exact.ErrOverflow, matrix.ErrNilMatrix.
func Solve(m matrix.Matrix) ([]int64, error) {
	e, err := Reduce(m)
	if err != nil {
		return nil, nsErrorf(opSolve, err)
	}

	return e.Solve()
}

// Solve extracts the minimal positive solution from an already reduced matrix.
//
// Implementation:
//   - Stage 1: nullity k == 0 → ErrInfeasible; k > 1 → ErrUnderdetermined.
//   - Stage 2: Basis()[0], then Integerize and Normalize.
func (e *Echelon) Solve() ([]int64, error) {
	switch k := e.Nullity(); {
	case k == 0:
		return nil, nsErrorf(opSolve, fmt.Errorf("%w: null space is trivial (rank %d of %d columns)", ErrInfeasible, e.Rank(), e.cols))
	case k > 1:
		return nil, nsErrorf(opSolve, fmt.Errorf("%w: null space has dimension %d", ErrUnderdetermined, k))
	}

	basis, err := e.Basis()
	if err != nil {
		return nil, nsErrorf(opSolve, err)
	}
	x, err := Integerize(basis[0])
	if err != nil {
		return nil, nsErrorf(opSolve, err)
	}
	if x, err = Normalize(x); err != nil {
		return nil, nsErrorf(opSolve, err)
	}

	return x, nil
}

// Integerize scales a rational vector by the LCM of its denominators.
// The result is integral and parallel to v.
//
// Errors: exact.ErrOverflow.
// Complexity: O(n · log) for the LCM fold and the products.
func Integerize(v []exact.Rat) ([]int64, error) {
	l := int64(1)
	var err error
	for _, r := range v {
		if l, err = exact.LCM(l, r.Den()); err != nil {
			return nil, err
		}
	}
	out := make([]int64, len(v))
	for i, r := range v {
		if out[i], err = r.MulInt(l); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Normalize divides x by the GCD of its entries, flips the sign when every
// entry is non-positive, and then requires every entry to be >= 1.
// x is not modified.
//
// Errors:
//   - ErrInfeasible if x is all zero, has mixed signs, or contains a zero.
//   - exact.ErrOverflow (math.MinInt64 entries).
func Normalize(x []int64) ([]int64, error) {
	g, err := exact.GCDSlice(x)
	if err != nil {
		return nil, err
	}
	if g == 0 {
		return nil, fmt.Errorf("%w: zero vector", ErrInfeasible)
	}

	out := make([]int64, len(x))
	nonPositive := true
	for i, v := range x {
		out[i] = v / g // exact: g divides every entry
		if out[i] > 0 {
			nonPositive = false
		}
	}
	if nonPositive {
		for i := range out {
			out[i] = -out[i] // GCDSlice rejected math.MinInt64, so this cannot wrap
		}
	}
	for i, v := range out {
		if v <= 0 {
			return nil, fmt.Errorf("%w: coefficient %d is %d in %v", ErrInfeasible, i, v, out)
		}
	}

	return out, nil
}
