// SPDX-License-Identifier: MIT

package balance

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the per-equation result of BalanceAll. Exactly one of Result and
// Err is set for equations that were attempted.
type Outcome struct {
	Equation string
	Result   *Result
	Err      error
}

// BalanceAll balances every equation in eqs, at most Options.concurrency at a
// time. Requests are independent, so a failing equation does not stop the
// others; its error is recorded in the matching Outcome.
//
// The returned slice is index-aligned with eqs. If ctx is cancelled, the
// equations not yet started keep a zero Outcome (besides Equation) and
// ctx.Err() is returned.
func (b *Balancer) BalanceAll(ctx context.Context, eqs []string) ([]Outcome, error) {
	out := make([]Outcome, len(eqs))
	for i, eq := range eqs {
		out[i].Equation = eq
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.concurrency)

	for i, eq := range eqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := b.Balance(eq)
			out[i].Result, out[i].Err = res, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, ctx.Err()
}

// BalanceAll runs the default Balancer over eqs.
func BalanceAll(ctx context.Context, eqs []string) ([]Outcome, error) {
	return defaultBalancer.BalanceAll(ctx, eqs)
}
