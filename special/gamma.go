// SPDX-License-Identifier: MIT
// Package: special
//
// Purpose:
//   - Gamma-family kernels reused by every beta formula: lnΓ, ln B, B and ψ.
//
// Determinism & Performance:
//   - O(1) per call; no allocations.
//
// AI-Hints:
//   - Prefer LogBeta over Beta: B(a,b) underflows long before ln B(a,b) loses precision.

package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// LogGamma returns ln|Γ(x)|. The sign of Γ(x) is discarded; every caller in
// this module evaluates it at strictly positive arguments where Γ(x) > 0.
func LogGamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// LogBeta returns ln B(a,b) = lnΓ(a) + lnΓ(b) − lnΓ(a+b).
//
// Returns NaN when either argument is NaN or non-positive.
func LogBeta(a, b float64) float64 {
	if !positive(a) || !positive(b) {
		return math.NaN()
	}

	return LogGamma(a) + LogGamma(b) - LogGamma(a+b)
}

// Beta returns the complete beta function B(a,b) = Γ(a)Γ(b)/Γ(a+b).
func Beta(a, b float64) float64 {
	return math.Exp(LogBeta(a, b))
}

// digammaAsymptoticMin is the argument above which mathext.Digamma's
// asymptotic expansion is accurate to float64 round-off. Below it gonum's own
// recurrence only reaches 7, where the truncated series is off by ~5e-11.
const digammaAsymptoticMin = 20

// Digamma returns ψ(x), the logarithmic derivative of Γ(x).
//
// For 0 < x < 20 the argument is first raised with the recurrence
// ψ(x) = ψ(x+n) − Σₖ₌₀ⁿ⁻¹ 1/(x+k), so the value is accurate to ~1e-15.
// Non-positive arguments are passed to mathext.Digamma unchanged.
func Digamma(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x <= 0 || x >= digammaAsymptoticMin {
		return mathext.Digamma(x)
	}

	var shift float64
	for ; x < digammaAsymptoticMin; x++ {
		shift += 1 / x
	}

	return mathext.Digamma(x) - shift
}

// positive reports whether v is a strictly positive number (NaN excluded).
func positive(v float64) bool {
	return v > 0
}
