// SPDX-License-Identifier: MIT
// Package equation: sentinel error set.
// Compound-level failures are not redeclared: Build wraps the formula error,
// so errors.Is(err, formula.ErrUnexpectedChar) and friends keep working.

package equation

import "errors"

var (
	// ErrSeparator: the string does not contain exactly one " = ".
	ErrSeparator = errors.New(`equation: want exactly one " = " separator`)

	// ErrEmptyCompound: a side, or a slot between " + " separators, is empty.
	ErrEmptyCompound = errors.New("equation: empty compound")
)
