// Package stoich balances chemical equations with exact integer arithmetic.
//
// What is stoich?
//
//	A small, zero-float library that turns "CH4 + O2 = CO2 + H2O" into the
//	minimal positive coefficients [1 2 1 2]:
//		• formula   — finite-state scanner for compounds ("Al2S3O12")
//		• equation  — reactant/product split + signed stoichiometric matrix
//		• matrix    — exact int64 Dense matrix with checked MatVec
//		• nullspace — Bareiss elimination, null-space basis, minimal solution
//		• exact     — overflow-checked int64 and rational arithmetic
//		• balance   — public entry point, error taxonomy, batch balancing
//
// Why exact?
//
//   - Atom counts are integers; rounding could yield a wrong "solution".
//   - Fraction-free elimination keeps every intermediate an int64.
//   - Overflow is reported as an error, never wrapped silently.
//
// Quick example:
//
//	coeffs, err := balance.Balance("AlO3H3 + H2SO4 = Al2S3O12 + H2O")
//	// coeffs == [2 3 1 6]
//
// Not supported: parenthesized groups, hydrates, charges, isotopes and
// coefficients embedded in the input.
//
//	go get github.com/katalvlaran/stoich
package stoich
