// SPDX-License-Identifier: MIT

package exact

import "math"

// Add returns a+b or ErrOverflow.
// Complexity: O(1).
func Add(a, b int64) (int64, error) {
	s := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (s^a)&(s^b) < 0 {
		return 0, ErrOverflow
	}

	return s, nil
}

// Sub returns a-b or ErrOverflow.
// Complexity: O(1).
func Sub(a, b int64) (int64, error) {
	d := a - b
	// Overflow iff operands differ in sign and the result sign differs from a.
	if (a^b)&(a^d) < 0 {
		return 0, ErrOverflow
	}

	return d, nil
}

// Mul returns a*b or ErrOverflow.
// Complexity: O(1).
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 * -1 is the one product that wraps without failing the check below.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}

	return p, nil
}

// Neg returns -a or ErrOverflow (only for math.MinInt64).
func Neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrOverflow
	}

	return -a, nil
}

// Abs returns |a| or ErrOverflow (only for math.MinInt64).
func Abs(a int64) (int64, error) {
	if a < 0 {
		return Neg(a)
	}

	return a, nil
}

// Quo returns a/b when b divides a exactly.
//
// Errors:
//   - ErrDivByZero if b == 0.
//   - ErrOverflow for math.MinInt64 / -1.
//   - ErrInexact if a % b != 0.
//
// Complexity: O(1).
func Quo(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	if a%b != 0 {
		return 0, ErrInexact
	}

	return a / b, nil
}
