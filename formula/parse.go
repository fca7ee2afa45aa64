// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
)

// opParse tags errors produced by Parse.
const opParse = "Parse"

// Parse scans compound and accumulates per-element atom counts.
//
// Errors (all wrapped with the input and position):
//   - ErrEmpty, ErrUnexpectedChar, ErrUnsupported, ErrLeadingCoefficient, ErrBadCount.
//   - exact.ErrOverflow when repeated symbols sum past int64.
//
// Complexity: O(len(compound) · log k) for k distinct elements.
func Parse(compound string) (ElementCounts, error) {
	if compound == "" {
		return ElementCounts{}, fmt.Errorf("%s(%q): %w", opParse, compound, ErrEmpty)
	}

	var ec ElementCounts
	s := NewScanner(compound)
	for s.Scan() {
		tok := s.Token()
		if err := ec.add(tok.Symbol, tok.Count); err != nil {
			return ElementCounts{}, fmt.Errorf("%s(%q): at %d: %w", opParse, compound, tok.Pos, err)
		}
	}
	if err := s.Err(); err != nil {
		return ElementCounts{}, fmt.Errorf("%s(%q): %w", opParse, compound, err)
	}

	return ec, nil
}

// NewCompound parses formula and binds it to its counts.
func NewCompound(formula string) (Compound, error) {
	ec, err := Parse(formula)
	if err != nil {
		return Compound{}, err
	}

	return Compound{formula: formula, counts: ec}, nil
}

// MustCompound is like NewCompound but panics on error. Intended for tests and
// package-level fixtures with literal formulas.
func MustCompound(formula string) Compound {
	c, err := NewCompound(formula)
	if err != nil {
		panic(err)
	}
	return c
}
