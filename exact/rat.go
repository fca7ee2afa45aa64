// SPDX-License-Identifier: MIT
// Package exact - Rat: reduced fraction with checked int64 parts.
//
// Invariants (held by every constructor and operation):
//   - den > 0
//   - gcd(|num|, den) == 1
//   - zero is represented as 0/1
//
// Operations cross-reduce before multiplying so intermediates stay as small as
// the final result allows; ErrOverflow is returned only when the reduced
// result itself is out of range.

package exact

import "strconv"

// Rat is an exact rational number num/den. The zero value is 0/1 once
// normalized; prefer Int or NewRat to build values.
type Rat struct {
	num int64 // numerator, carries the sign
	den int64 // denominator, always > 0 after normalization
}

// Int returns the rational n/1.
func Int(n int64) Rat { return Rat{num: n, den: 1} }

// NewRat builds the reduced fraction num/den.
//
// Errors:
//   - ErrDivByZero if den == 0.
//   - ErrOverflow if normalizing the sign overflows (math.MinInt64 parts).
func NewRat(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrDivByZero
	}
	if num == 0 {
		return Rat{num: 0, den: 1}, nil
	}
	g, err := GCD(num, den)
	if err != nil {
		return Rat{}, err
	}
	num, den = num/g, den/g
	if den < 0 {
		if num, err = Neg(num); err != nil {
			return Rat{}, err
		}
		if den, err = Neg(den); err != nil {
			return Rat{}, err
		}
	}

	return Rat{num: num, den: den}, nil
}

// Num returns the (signed) numerator.
func (r Rat) Num() int64 { return r.num }

// Den returns the positive denominator (1 for the zero value).
func (r Rat) Den() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// IsInt reports whether the denominator is 1.
func (r Rat) IsInt() bool { return r.Den() == 1 }

// Add returns r+s.
// Complexity: O(log) for the reductions.
func (r Rat) Add(s Rat) (Rat, error) {
	// r.n/r.d + s.n/s.d = (r.n*(l/r.d) + s.n*(l/s.d)) / l with l = lcm(r.d, s.d).
	l, err := LCM(r.Den(), s.Den())
	if err != nil {
		return Rat{}, err
	}
	a, err := Mul(r.num, l/r.Den())
	if err != nil {
		return Rat{}, err
	}
	b, err := Mul(s.num, l/s.Den())
	if err != nil {
		return Rat{}, err
	}
	n, err := Add(a, b)
	if err != nil {
		return Rat{}, err
	}

	return NewRat(n, l)
}

// Neg returns -r.
func (r Rat) Neg() (Rat, error) {
	n, err := Neg(r.num)
	if err != nil {
		return Rat{}, err
	}

	return Rat{num: n, den: r.Den()}, nil
}

// Sub returns r-s.
func (r Rat) Sub(s Rat) (Rat, error) {
	ns, err := s.Neg()
	if err != nil {
		return Rat{}, err
	}

	return r.Add(ns)
}

// Mul returns r*s, cross-reducing before multiplying.
func (r Rat) Mul(s Rat) (Rat, error) {
	if r.num == 0 || s.num == 0 {
		return Int(0), nil
	}
	g1, err := GCD(r.num, s.Den())
	if err != nil {
		return Rat{}, err
	}
	g2, err := GCD(s.num, r.Den())
	if err != nil {
		return Rat{}, err
	}
	n, err := Mul(r.num/g1, s.num/g2)
	if err != nil {
		return Rat{}, err
	}
	d, err := Mul(r.Den()/g2, s.Den()/g1)
	if err != nil {
		return Rat{}, err
	}

	return NewRat(n, d)
}

// Quo returns r/s.
//
// Errors: ErrDivByZero if s is zero.
func (r Rat) Quo(s Rat) (Rat, error) {
	if s.num == 0 {
		return Rat{}, ErrDivByZero
	}
	inv, err := NewRat(s.Den(), s.num)
	if err != nil {
		return Rat{}, err
	}

	return r.Mul(inv)
}

// MulInt returns r*k as an integer when the product is integral.
//
// Errors: ErrInexact if r*k is not an integer; ErrOverflow as usual.
func (r Rat) MulInt(k int64) (int64, error) {
	p, err := r.Mul(Int(k))
	if err != nil {
		return 0, err
	}
	if !p.IsInt() {
		return 0, ErrInexact
	}

	return p.num, nil
}

// String renders "num" for integers and "num/den" otherwise.
func (r Rat) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}
