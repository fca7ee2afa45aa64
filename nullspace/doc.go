// SPDX-License-Identifier: MIT

// Package nullspace finds the minimal positive integer vector x with A·x = 0
// for an integer matrix A, using exact arithmetic only.
//
// Pipeline:
//
//	Reduce  — fraction-free (Bareiss) elimination to row echelon form; rank r,
//	          pivot columns, free columns. Every intermediate is an exact int64
//	          (each division is exact by Sylvester's identity).
//	Basis   — one rational basis vector per free column by back-substitution
//	          (free variable = 1, other free variables = 0).
//	Solve   — requires nullity k == 1, then scales the basis vector by the LCM
//	          of its denominators, divides by the GCD of its entries, flips the
//	          sign if every entry is non-positive, and rejects any entry <= 0.
//	Verify  — recomputes A·x with checked arithmetic and demands the zero vector.
//
// Failure modes (errors.Is):
//
//	ErrInfeasible       k == 0, or the normalized vector has a zero or mixed-sign entry.
//	ErrUnderdetermined  k > 1; the message carries k.
//	exact.ErrOverflow   any intermediate leaves int64.
//
// No floating point is used anywhere, so a returned solution is always an
// exact member of the null space.
//
// Complexity: O(m·n·min(m,n)) checked multiplications for an m×n matrix.
package nullspace
