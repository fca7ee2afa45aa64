// SPDX-License-Identifier: MIT
// Package nullspace: sentinel error set.
// Kernels wrap these with their operation tag ("Solve: ...") and a short
// diagnostic; match with errors.Is.

package nullspace

import "errors"

var (
	// ErrInfeasible: no strictly positive integer vector lies in the null space.
	ErrInfeasible = errors.New("nullspace: no positive integer solution")

	// ErrUnderdetermined: the null space has dimension > 1, so the minimal
	// solution is not unique up to scale.
	ErrUnderdetermined = errors.New("nullspace: solution space is underdetermined")

	// ErrNotInNullSpace is returned by Verify when A·x is not the zero vector.
	ErrNotInNullSpace = errors.New("nullspace: vector is not in the null space")
)
