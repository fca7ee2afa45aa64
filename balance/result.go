// SPDX-License-Identifier: MIT

package balance

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/stoich/equation"
)

// Result is a balanced equation.
type Result struct {
	// Equation is the parsed input.
	Equation *equation.Equation
	// Coefficients are aligned to Equation.Compounds(); all >= 1, gcd == 1.
	Coefficients []int64
}

// String renders the balanced equation, omitting unit coefficients:
//
//	2H2 + O2 = 2H2O
func (r *Result) String() string {
	var b strings.Builder
	for i, c := range r.Equation.Compounds() {
		switch {
		case i == 0:
		case r.Equation.Side(i) != r.Equation.Side(i-1):
			b.WriteString(equation.SideSeparator)
		default:
			b.WriteString(equation.CompoundSeparator)
		}
		if k := r.Coefficients[i]; k != 1 {
			b.WriteString(strconv.FormatInt(k, 10))
		}
		b.WriteString(c.Formula())
	}

	return b.String()
}
