// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No function panics on user-triggered
// error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Arithmetic overflow is NOT redeclared here: kernels return exact.ErrOverflow
// wrapped with their operation tag.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/SwapRows) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MatVec with len(x) != Cols, or ragged rows in NewDenseFrom.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
