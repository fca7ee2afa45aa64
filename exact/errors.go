// SPDX-License-Identifier: MIT
// Package exact: sentinel error set.
// All checked operations return these sentinels unwrapped; callers wrap with
// their own operation tag and match with errors.Is.

package exact

import "errors"

var (
	// ErrOverflow is returned when a result does not fit in int64.
	ErrOverflow = errors.New("exact: integer overflow")

	// ErrDivByZero is returned by Quo and by Rat constructors/operations
	// whenever a zero divisor is encountered.
	ErrDivByZero = errors.New("exact: division by zero")

	// ErrInexact is returned by Quo when the dividend is not a multiple of the
	// divisor. Fraction-free kernels rely on exact division; a remainder means
	// an invariant was broken upstream.
	ErrInexact = errors.New("exact: inexact division")
)
