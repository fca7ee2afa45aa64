// SPDX-License-Identifier: MIT

package exact

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) is 0, and GCD(a, 0) is |a|.
//
// Errors: ErrOverflow when an operand is math.MinInt64.
// Complexity: O(log min(|a|,|b|)) (Euclid).
func GCD(a, b int64) (int64, error) {
	var err error
	if a, err = Abs(a); err != nil {
		return 0, err
	}
	if b, err = Abs(b); err != nil {
		return 0, err
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a, nil
}

// LCM returns the least common multiple of |a| and |b|.
// LCM(a, 0) is 0 by convention.
//
// Errors: ErrOverflow when the multiple does not fit in int64.
// Complexity: O(log min(|a|,|b|)).
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g, err := GCD(a, b)
	if err != nil {
		return 0, err
	}
	// Divide first to keep the intermediate inside the range whenever the result is.
	q := a / g
	l, err := Mul(q, b)
	if err != nil {
		return 0, err
	}

	return Abs(l)
}

// GCDSlice folds GCD over xs. It returns 0 for an empty or all-zero slice.
// Complexity: O(n · log max|x|).
func GCDSlice(xs []int64) (int64, error) {
	var (
		g   int64
		err error
	)
	for _, x := range xs {
		if g, err = GCD(g, x); err != nil {
			return 0, err
		}
		if g == 1 {
			break // cannot shrink further
		}
	}

	return g, nil
}
