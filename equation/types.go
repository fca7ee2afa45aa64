// SPDX-License-Identifier: MIT

package equation

import (
	"github.com/katalvlaran/stoich/formula"
)

// Side tells whether a column belongs to the reactants or the products.
type Side int

const (
	// Reactant columns carry positive counts.
	Reactant Side = iota
	// Product columns carry negated counts.
	Product
)

// String returns "reactant" or "product".
func (s Side) String() string {
	if s == Product {
		return "product"
	}
	return "reactant"
}

// Sign returns +1 for reactants and -1 for products.
func (s Side) Sign() int64 {
	if s == Product {
		return -1
	}
	return 1
}

// Separators of the equation grammar.
const (
	SideSeparator     = " = "
	CompoundSeparator = " + "
)

// Equation is an immutable, parsed chemical equation.
type Equation struct {
	src       string
	reactants []formula.Compound
	products  []formula.Compound
	elements  []string // sorted union of all symbols
}

// String returns the source string the equation was built from.
func (e *Equation) String() string { return e.src }

// Reactants returns the left-hand compounds in input order (fresh slice).
func (e *Equation) Reactants() []formula.Compound {
	return append([]formula.Compound(nil), e.reactants...)
}

// Products returns the right-hand compounds in input order (fresh slice).
func (e *Equation) Products() []formula.Compound {
	return append([]formula.Compound(nil), e.products...)
}

// Compounds returns reactants then products: the column order of Matrix.
func (e *Equation) Compounds() []formula.Compound {
	out := make([]formula.Compound, 0, e.Len())
	out = append(out, e.reactants...)
	return append(out, e.products...)
}

// Len returns the total number of compounds (matrix columns).
func (e *Equation) Len() int { return len(e.reactants) + len(e.products) }

// Side reports which side column i belongs to. i must be in [0, Len()).
func (e *Equation) Side(i int) Side {
	if i < len(e.reactants) {
		return Reactant
	}
	return Product
}

// Elements returns the sorted element index: the row order of Matrix.
func (e *Equation) Elements() []string {
	return append([]string(nil), e.elements...)
}
