// SPDX-License-Identifier: MIT
// Package balance: the public error taxonomy.
// Callers branch on these four sentinels; the wrapped chain still carries the
// precise cause for logs.

package balance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoich/exact"
	"github.com/katalvlaran/stoich/nullspace"
)

var (
	// ErrParse: malformed equation or compound string.
	ErrParse = errors.New("balance: parse error")

	// ErrInfeasible: no assignment of positive coefficients balances the equation.
	ErrInfeasible = errors.New("balance: equation cannot be balanced")

	// ErrUnderdetermined: several independent balancings exist; more constraints are needed.
	ErrUnderdetermined = errors.New("balance: equation is underdetermined")

	// ErrOverflow: exact arithmetic would leave the int64 range.
	ErrOverflow = errors.New("balance: arithmetic overflow")
)

// classify tags err with its taxonomy kind. parsing is true for errors raised
// while building the equation, where anything but overflow is a parse error.
func classify(err error, parsing bool) error {
	var kind error
	switch {
	case errors.Is(err, exact.ErrOverflow):
		kind = ErrOverflow
	case parsing:
		kind = ErrParse
	case errors.Is(err, nullspace.ErrUnderdetermined):
		kind = ErrUnderdetermined
	default:
		// ErrInfeasible, ErrNotInNullSpace and anything unexpected from the
		// solver: the equation as written has no trustworthy balancing.
		kind = ErrInfeasible
	}

	return fmt.Errorf("%w: %w", kind, err)
}
