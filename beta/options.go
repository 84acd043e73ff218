// SPDX-License-Identifier: MIT

// Package beta: functional configuration of the iterative evaluators.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a list of Option.
//
// Only Quantile (and Median, which falls back to it) and MGF iterate; every
// other formula is closed form and ignores Options.
package beta

import (
	"math"

	"github.com/katalvlaran/betadist/special"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the relative step size at which Newton iterations of
	// Quantile stop. The step is measured against min(x, 1−x) so the tolerance
	// stays meaningful for quantiles close to either end of the support.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations bounds Newton/bisection iterations in Quantile.
	// Bisection alone resolves the full float64 range of (0,1) in ~1100 halvings.
	DefaultMaxIterations = 1200

	// DefaultMaxSeriesTerms bounds the number of ₁F₁ terms summed by MGF.
	DefaultMaxSeriesTerms = special.DefaultMaxSeriesTerms
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "beta: WithTolerance: tol must be finite and in (0, 1)"
	panicMaxIterInvalid   = "beta: WithMaxIterations: n must be > 0"
	panicMaxTermsInvalid  = "beta: WithMaxSeriesTerms: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tol      float64 // (0,1); DefaultTolerance
	maxIter  int     // > 0; DefaultMaxIterations
	maxTerms int     // > 0; DefaultMaxSeriesTerms
}

// DefaultOptions returns Options populated with the documented defaults.
func DefaultOptions() Options {
	return Options{
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIterations,
		maxTerms: DefaultMaxSeriesTerms,
	}
}

// Tolerance returns the relative step tolerance used by Quantile.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations returns the iteration cap used by Quantile.
func (o Options) MaxIterations() int { return o.maxIter }

// MaxSeriesTerms returns the term cap used by MGF.
func (o Options) MaxSeriesTerms() int { return o.maxTerms }

// ---------- Constructors (WithX) ----------

// WithTolerance sets the relative Newton step tolerance of Quantile.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Notes:
//   - Tolerances looser than ~1e-8 may break CDF(Quantile(p)) ≈ p at 1e-9.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps Newton/bisection iterations of Quantile.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithMaxSeriesTerms caps the number of series terms summed by MGF.
// When the cap is hit the partial sum is returned.
func WithMaxSeriesTerms(n int) Option {
	if n <= 0 {
		panic(panicMaxTermsInvalid)
	}

	return func(o *Options) { o.maxTerms = n }
}

// gatherOptions applies opts over DefaultOptions in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
