// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Distribution owns the (alpha, beta) state of one Beta distribution,
//     validates every write and forwards reads to the package formulas.
//
// Invariants:
//   - alpha and beta are finite and > 0 at every observable instant.
//   - A failed SetAlpha/SetBeta leaves the previous value in place.
//   - Derived properties are recomputed on every call; nothing is cached.
//
// Concurrency:
//   - No internal locking. Concurrent reads are safe; writes racing with reads
//     need external synchronization.

package beta

import "fmt"

// Default shape parameters used by New() (the uniform distribution on [0,1]).
const (
	DefaultAlpha = 1.0
	DefaultBeta  = 1.0
)

// Distribution is a Beta(alpha, beta) distribution on [0,1].
//
// The zero value is not usable; construct with New or NewDistribution.
type Distribution struct {
	alpha float64
	beta  float64
	opts  Options
}

// New constructs a Distribution from zero or two shape parameters.
//
//   - New()                → Beta(1, 1)
//   - New(alpha, beta)     → validated Beta(alpha, beta)
//   - any other arity      → ErrInvalidArgument
//
// Errors:
//   - ErrInvalidArgument naming the offending parameter and value.
func New(shape ...float64) (*Distribution, error) {
	switch len(shape) {
	case 0:
		return &Distribution{alpha: DefaultAlpha, beta: DefaultBeta, opts: DefaultOptions()}, nil
	case 2:
		d, err := NewDistribution(shape[0], shape[1])
		if err != nil {
			return nil, betaErrorf(opNew, err)
		}
		return d, nil
	default:
		return nil, betaErrorf(opNew, fmt.Errorf("got %d shape parameters, want 0 or 2: %w", len(shape), ErrInvalidArgument))
	}
}

// NewDistribution constructs a validated Beta(alpha, beta) and applies opts to
// its iterative evaluators (Quantile, Median, MGF).
//
// Errors:
//   - ErrInvalidArgument when alpha or beta is NaN, ±Inf, zero or negative.
//
// Panics:
//   - only through Option constructors given nonsensical values.
func NewDistribution(alpha, beta float64, opts ...Option) (*Distribution, error) {
	if err := ValidateShapes(alpha, beta); err != nil {
		return nil, betaErrorf(opNewDistribution, err)
	}

	return &Distribution{alpha: alpha, beta: beta, opts: gatherOptions(opts...)}, nil
}

// Alpha returns the first shape parameter.
func (d *Distribution) Alpha() float64 { return d.alpha }

// Beta returns the second shape parameter.
func (d *Distribution) Beta() float64 { return d.beta }

// Options returns the numeric options of the iterative evaluators.
func (d *Distribution) Options() Options { return d.opts }

// SetAlpha replaces alpha after validation. On error alpha is unchanged.
func (d *Distribution) SetAlpha(v float64) error {
	if err := ValidateShape(paramAlpha, v); err != nil {
		return betaErrorf(opSetAlpha, err)
	}
	d.alpha = v

	return nil
}

// SetBeta replaces beta after validation. On error beta is unchanged.
func (d *Distribution) SetBeta(v float64) error {
	if err := ValidateShape(paramBeta, v); err != nil {
		return betaErrorf(opSetBeta, err)
	}
	d.beta = v

	return nil
}

// Entropy returns the differential entropy.
func (d *Distribution) Entropy() float64 { return Entropy(d.alpha, d.beta) }

// Kurtosis returns the excess kurtosis.
func (d *Distribution) Kurtosis() float64 { return Kurtosis(d.alpha, d.beta) }

// Mean returns the expected value.
func (d *Distribution) Mean() float64 { return Mean(d.alpha, d.beta) }

// Median returns the median.
func (d *Distribution) Median() float64 { return median(d.alpha, d.beta, d.opts) }

// Mode returns the mode, or NaN where it is not unique.
func (d *Distribution) Mode() float64 { return Mode(d.alpha, d.beta) }

// Skewness returns the skewness.
func (d *Distribution) Skewness() float64 { return Skewness(d.alpha, d.beta) }

// StdDev returns the standard deviation.
func (d *Distribution) StdDev() float64 { return StdDev(d.alpha, d.beta) }

// Variance returns the variance.
func (d *Distribution) Variance() float64 { return Variance(d.alpha, d.beta) }

// CDF returns P(X ≤ x).
func (d *Distribution) CDF(x float64) float64 { return CDF(x, d.alpha, d.beta) }

// LogCDF returns ln P(X ≤ x).
func (d *Distribution) LogCDF(x float64) float64 { return LogCDF(x, d.alpha, d.beta) }

// Survival returns P(X > x).
func (d *Distribution) Survival(x float64) float64 { return Survival(x, d.alpha, d.beta) }

// LogPDF returns the log density at x.
func (d *Distribution) LogPDF(x float64) float64 { return LogPDF(x, d.alpha, d.beta) }

// PDF returns the density at x.
func (d *Distribution) PDF(x float64) float64 { return PDF(x, d.alpha, d.beta) }

// MGF returns E[e^{tX}].
func (d *Distribution) MGF(t float64) float64 { return mgf(t, d.alpha, d.beta, d.opts) }

// Quantile returns the inverse CDF at p.
func (d *Distribution) Quantile(p float64) float64 { return quantile(p, d.alpha, d.beta, d.opts) }

// String implements fmt.Stringer, e.g. "Beta(α=2, β=4)".
func (d *Distribution) String() string {
	return fmt.Sprintf("Beta(α=%g, β=%g)", d.alpha, d.beta)
}
