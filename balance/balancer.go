// SPDX-License-Identifier: MIT

package balance

import (
	"log/slog"

	"github.com/katalvlaran/stoich/equation"
	"github.com/katalvlaran/stoich/nullspace"
)

// Balancer balances equations under a fixed set of Options.
// The zero value is not usable; construct with New.
type Balancer struct {
	opts Options
}

// New returns a Balancer configured by opts over the package defaults.
func New(opts ...Option) *Balancer {
	return &Balancer{opts: gatherOptions(opts...)}
}

// defaultBalancer backs the package-level Balance function.
var defaultBalancer = New()

// Balance balances eq with the default options and returns only the
// coefficients, aligned to the compounds as written.
func Balance(eq string) ([]int64, error) {
	res, err := defaultBalancer.Balance(eq)
	if err != nil {
		return nil, err
	}

	return res.Coefficients, nil
}

// Balance parses eq, builds its stoichiometric matrix and solves for the
// minimal positive integer coefficients.
//
// Implementation:
//   - Stage 1: equation.Build and Equation.Matrix (parse errors → ErrParse).
//   - Stage 2: nullspace.Reduce, log rank/nullity, Echelon.Solve.
//   - Stage 3: optional nullspace.Verify.
//
// Errors: one of ErrParse, ErrInfeasible, ErrUnderdetermined, ErrOverflow.
func (b *Balancer) Balance(eq string) (*Result, error) {
	log := b.opts.logger.With(slog.String("equation", eq))

	e, err := equation.Build(eq)
	if err != nil {
		log.Debug("parse failed", slog.Any("error", err))
		return nil, classify(err, true)
	}
	m, err := e.Matrix()
	if err != nil {
		return nil, classify(err, true)
	}

	ech, err := nullspace.Reduce(m)
	if err != nil {
		log.Debug("elimination failed", slog.Any("error", err))
		return nil, classify(err, false)
	}
	log.Debug("reduced",
		slog.Int("elements", m.Rows()),
		slog.Int("compounds", m.Cols()),
		slog.Int("rank", ech.Rank()),
		slog.Int("nullity", ech.Nullity()),
	)

	x, err := ech.Solve()
	if err != nil {
		log.Debug("no solution", slog.Any("error", err))
		return nil, classify(err, false)
	}

	if b.opts.verify {
		if err = nullspace.Verify(m, x); err != nil {
			log.Warn("solution failed verification", slog.Any("coefficients", x), slog.Any("error", err))
			return nil, classify(err, false)
		}
	}

	return &Result{Equation: e, Coefficients: x}, nil
}
