// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/stoich/formula"
	"github.com/katalvlaran/stoich/matrix"
)

// opBuild tags errors produced by Build.
const opBuild = "Build"

// Build parses an equation string such as "H2 + O2 = H2O".
//
// Implementation:
//   - Stage 1: require exactly one " = "; split each side on " + ".
//   - Stage 2: parse every compound with formula.NewCompound.
//   - Stage 3: collect the sorted union of element symbols.
//
// Errors:
//   - ErrSeparator, ErrEmptyCompound.
//   - formula errors (and exact.ErrOverflow) wrapped with the compound index.
//
// Complexity: O(len(s) · log k) for k distinct elements.
func Build(s string) (*Equation, error) {
	if n := strings.Count(s, SideSeparator); n != 1 {
		return nil, fmt.Errorf("%s(%q): found %d: %w", opBuild, s, n, ErrSeparator)
	}
	lhs, rhs, _ := strings.Cut(s, SideSeparator)

	reactants, err := parseSide(lhs, 0)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", opBuild, s, err)
	}
	products, err := parseSide(rhs, len(reactants))
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", opBuild, s, err)
	}

	var elements []string
	for _, side := range [][]formula.Compound{reactants, products} {
		for _, c := range side {
			elements = append(elements, c.Counts().Symbols()...)
		}
	}
	slices.Sort(elements)
	elements = slices.Compact(elements)

	return &Equation{src: s, reactants: reactants, products: products, elements: elements}, nil
}

// parseSide splits one side on " + " and parses each compound. base is the
// column index of the first compound, used only for error messages.
func parseSide(side string, base int) ([]formula.Compound, error) {
	parts := strings.Split(side, CompoundSeparator)
	out := make([]formula.Compound, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("compound %d: %w", base+i, ErrEmptyCompound)
		}
		c, err := formula.NewCompound(p)
		if err != nil {
			return nil, fmt.Errorf("compound %d: %w", base+i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

// Matrix builds the signed stoichiometric matrix:
// rows = Elements(), columns = Compounds(), entry = Side.Sign() · count.
//
// Complexity: O(rows · cols · log k).
func (e *Equation) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(e.elements), e.Len())
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	for j, c := range e.Compounds() {
		sign := e.Side(j).Sign()
		for i, sym := range e.elements {
			if n := c.Counts().Count(sym); n != 0 {
				// counts are >= 1, so negation cannot wrap
				if err = m.Set(i, j, sign*n); err != nil {
					return nil, fmt.Errorf("Matrix: %w", err)
				}
			}
		}
	}

	return m, nil
}

// Describe renders the equation and its matrix in a stable text form:
//
//	equation: H2 + O2 = H2O
//	columns: H2 O2 | H2O
//	H: 2 0 -2
//	O: 0 2 -1
func (e *Equation) Describe() (string, error) {
	m, err := e.Matrix()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("equation: ")
	b.WriteString(e.src)
	b.WriteString("\ncolumns:")
	for j, c := range e.Compounds() {
		if j == len(e.reactants) {
			b.WriteString(" |")
		}
		b.WriteByte(' ')
		b.WriteString(c.Formula())
	}
	b.WriteByte('\n')

	for i, sym := range e.elements {
		row, err := m.Row(i)
		if err != nil {
			return "", err
		}
		b.WriteString(sym)
		b.WriteByte(':')
		for _, v := range row {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(v, 10))
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
