// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Quantile (inverse CDF) of Beta(a, b).
//
// Algorithm Outline:
//  1. p = 0 → 0, p = 1 → 1 exactly; p ∉ [0,1] or NaN → NaN.
//  2. Seed x₀ = special.InvRegIncBeta(a, b, p).
//  3. Keep a bracket [lo, hi] with CDF(lo) ≤ p ≤ CDF(hi), starting at [0, 1].
//  4. Newton step x − (CDF(x) − p)/PDF(x); when the density is zero or
//     non-finite, or the step leaves (lo, hi), bisect instead.
//  5. Stop when the step is below tol·min(x, 1−x), the residual is exactly
//     zero, or the iteration cap is reached.
//
// Determinism & Performance:
//   - Quadratic convergence from a good seed; bisection guarantees progress.
//   - At most Options.MaxIterations CDF/PDF evaluations.

package beta

import (
	"math"

	"github.com/katalvlaran/betadist/special"
)

// minStepScale keeps the stopping threshold positive when x reaches 0 or 1.
const minStepScale = math.SmallestNonzeroFloat64

// Quantile returns x in [0,1] with CDF(x, a, b) = p.
//
// Inputs:
//   - p: probability in [0,1].
//   - a, b: shape parameters.
//   - opts: WithTolerance / WithMaxIterations.
//
// Returns:
//   - 0 for p = 0 and 1 for p = 1, without iterating.
//   - NaN for p outside [0,1], NaN arguments or invalid a/b.
func Quantile(p, a, b float64, opts ...Option) float64 {
	return quantile(p, a, b, gatherOptions(opts...))
}

func quantile(p, a, b float64, o Options) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 || !validShapes(a, b) {
		return math.NaN()
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 1
	}
	if a == 1 && b == 1 {
		return p
	}

	var (
		lo, hi = 0.0, 1.0
		x      = special.InvRegIncBeta(a, b, p)
		xn     float64
		f      float64
		dens   float64
	)
	if !(x > lo && x < hi) {
		x = 0.5
	}

	for i := 0; i < o.maxIter; i++ {
		f = CDF(x, a, b) - p
		if f == 0 {
			return x
		}
		// Shrink the bracket on the side the residual rules out.
		if f < 0 {
			lo = x
		} else {
			hi = x
		}

		dens = PDF(x, a, b)
		xn = x - f/dens
		if dens <= 0 || math.IsInf(dens, 0) || math.IsNaN(xn) || xn <= lo || xn >= hi {
			xn = lo + (hi-lo)/2
		}

		if math.Abs(xn-x) <= o.tol*math.Max(math.Min(xn, 1-xn), minStepScale) {
			return xn
		}
		x = xn
	}

	return x
}
