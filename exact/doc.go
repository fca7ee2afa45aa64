// SPDX-License-Identifier: MIT

// Package exact provides overflow-checked int64 arithmetic and a small exact
// rational type for the stoichiometry kernels.
//
// What is inside?
//
//   - Add, Sub, Mul, Neg, Abs, Quo: int64 operations that return ErrOverflow
//     instead of silently wrapping.
//   - GCD, LCM: non-negative divisors/multiples over absolute values.
//   - Rat: a reduced fraction num/den with den > 0 and checked arithmetic.
//
// Why not math/big?
//
//	Atom counts and balancing coefficients of human-authored equations are
//	small. Fixed-width integers keep the kernels allocation-free, and the
//	checked operations turn the rare pathological input into a clean
//	ErrOverflow rather than a wrong answer.
//
// Every function is pure and safe for concurrent use.
package exact
