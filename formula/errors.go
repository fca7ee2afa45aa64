// SPDX-License-Identifier: MIT
// Package formula: sentinel error set.
// Parse wraps these with the offending input and byte offset:
//
//	Parse("H2x"): at 2: formula: unexpected character 'x'
//
// so callers match with errors.Is and humans get a position.

package formula

import "errors"

var (
	// ErrEmpty is returned for an empty compound string.
	ErrEmpty = errors.New("formula: empty compound")

	// ErrUnexpectedChar indicates a byte outside the grammar, or a lowercase
	// letter / digit where an element symbol must start.
	ErrUnexpectedChar = errors.New("formula: unexpected character")

	// ErrUnsupported marks notation recognized but deliberately not handled:
	// parenthesized groups, bracket groups and hydrate dots.
	ErrUnsupported = errors.New("formula: unsupported notation")

	// ErrLeadingCoefficient marks a compound that starts with a digit,
	// e.g. "2H2O". Coefficients are the balancer's output, never its input.
	ErrLeadingCoefficient = errors.New("formula: leading coefficient not allowed")

	// ErrBadCount indicates a zero count ("H0") or a count literal that does
	// not fit in int64.
	ErrBadCount = errors.New("formula: invalid atom count")
)
