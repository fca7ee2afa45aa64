// SPDX-License-Identifier: MIT

// Package balance: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no global state besides the default Balancer.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package balance

import (
	"io"
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerify re-checks matrix·solution == 0 before returning a result.
	DefaultVerify = true
)

// DefaultConcurrency is the BalanceAll worker limit when none is configured.
func DefaultConcurrency() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger          = "balance: WithLogger: logger must not be nil"
	panicConcurrencyInvalid = "balance: WithConcurrency: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of a Balancer.
// Fields are unexported; use the With* constructors.
type Options struct {
	logger      *slog.Logger
	verify      bool
	concurrency int
}

// WithLogger routes diagnostics to l. Balancing logs at Debug (rank, nullity)
// and Warn (verification failure). Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// WithVerify toggles the exact post-solve check matrix·solution == 0.
func WithVerify(on bool) Option {
	return func(o *Options) { o.verify = on }
}

// WithConcurrency bounds the number of equations BalanceAll processes at
// once. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}
	return func(o *Options) { o.concurrency = n }
}

// defaultOptions returns a fresh Options populated from the Default* values.
func defaultOptions() Options {
	return Options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		verify:      DefaultVerify,
		concurrency: DefaultConcurrency(),
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
