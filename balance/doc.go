// SPDX-License-Identifier: MIT

// Package balance is the entry point for balancing chemical equations.
//
//	coeffs, err := balance.Balance("AlO3H3 + H2SO4 = Al2S3O12 + H2O")
//	// coeffs == []int64{2, 3, 1, 6}
//
// The coefficients are index-aligned to the compounds as written: reactants
// left to right, then products left to right. They are strictly positive and
// share no common divisor greater than one.
//
// Every error matches exactly one of ErrParse, ErrInfeasible,
// ErrUnderdetermined or ErrOverflow via errors.Is, and keeps the lower-level
// sentinel (formula.*, equation.*, nullspace.*, exact.*) in its chain.
//
// A Balancer is stateless apart from its options and safe for concurrent use;
// BalanceAll fans a batch out over a bounded worker pool.
package balance
