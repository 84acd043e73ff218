// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Cumulative distribution of Beta(a, b): CDF, LogCDF and the upper tail.
//
// All three delegate to special.RegIncBeta / special.LogRegIncBeta; the upper
// tail uses 1 − Iₓ(a,b) = I₁₋ₓ(b,a) so no subtraction from 1 happens here.

package beta

import (
	"math"

	"github.com/katalvlaran/betadist/special"
)

// CDF returns P(X ≤ x) = Iₓ(a,b).
//
// Returns 0 for x ≤ 0, 1 for x ≥ 1 and NaN for NaN arguments or invalid a/b.
func CDF(x, a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}

	return special.RegIncBeta(a, b, x)
}

// LogCDF returns ln P(X ≤ x), evaluated in log space so that values far
// below the smallest float64 remain finite.
//
// Returns −Inf for x ≤ 0, 0 for x ≥ 1 and NaN for NaN arguments or invalid a/b.
func LogCDF(x, a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}

	return special.LogRegIncBeta(a, b, x)
}

// Survival returns P(X > x) = 1 − CDF(x, a, b), computed as I₁₋ₓ(b,a).
//
// Returns 1 for x ≤ 0, 0 for x ≥ 1 and NaN for NaN arguments or invalid a/b.
func Survival(x, a, b float64) float64 {
	if math.IsNaN(x) || !validShapes(a, b) {
		return math.NaN()
	}

	return special.RegIncBeta(b, a, 1-x)
}
