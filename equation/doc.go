// SPDX-License-Identifier: MIT

// Package equation splits a chemical equation string into ordered reactant and
// product compounds and derives its signed stoichiometric matrix.
//
// Grammar:
//
//	equation := side " = " side
//	side     := compound (" + " compound)*
//
// Column order is reactants left to right, then products left to right; it is
// the order of every coefficient vector computed from the matrix.
//
// Row order is the sorted union of element symbols (lexicographic on the
// symbol string), independent of where an element is first seen.
//
// Entry (e, c) is the count of element e in compound c, negated for products,
// so each row states Σ reactant·count − Σ product·count = 0.
package equation
