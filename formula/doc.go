// SPDX-License-Identifier: MIT

// Package formula turns a single chemical formula such as "AlO3H3" into
// per-element atom counts.
//
// Grammar (ASCII only):
//
//	compound := (element count?)+
//	element  := UPPER lower*
//	count    := DIGIT+          (>= 1; absent means 1)
//
// The Scanner is an explicit finite-state machine over this grammar, so the
// accepted language is exactly the one above: no parenthesized groups,
// hydrate dots, charges, isotope prefixes or leading coefficients. Those
// inputs fail with ErrUnsupported or ErrUnexpectedChar rather than being
// silently skipped.
//
// A symbol may appear more than once in a compound ("CH3COOH"); its counts
// are summed with overflow checks.
//
// ElementCounts keeps its entries sorted by symbol, so iteration order is
// stable across runs and platforms.
//
// Example:
//
//	c, err := formula.NewCompound("H2SO4")
//	// c.Counts().Count("O") == 4
package formula
