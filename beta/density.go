// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Probability density of Beta(a, b) in linear and log space.
//
// Boundary policy (x = 0, mirrored at x = 1 with b):
//   - a = 1: finite, ln f(0) = −ln B(1,b) = ln b
//   - a < 1: +Inf
//   - a > 1: −Inf (density 0)

package beta

import (
	"math"

	"github.com/katalvlaran/betadist/special"
)

// LogPDF returns ln f(x; a, b) = (a−1)ln x + (b−1)ln(1−x) − ln B(a,b).
//
// Returns:
//   - −Inf for x outside [0,1].
//   - the limiting value at x = 0 and x = 1 (see boundary policy above).
//   - NaN when any argument is NaN or a/b are invalid.
func LogPDF(x, a, b float64) float64 {
	if math.IsNaN(x) || !validShapes(a, b) {
		return math.NaN()
	}
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}

	lnB := special.LogBeta(a, b)
	switch x {
	case 0:
		return boundaryLogDensity(a, lnB)
	case 1:
		return boundaryLogDensity(b, lnB)
	}

	return logPower(a-1, math.Log(x)) + logPower(b-1, math.Log1p(-x)) - lnB
}

// PDF returns f(x; a, b) = exp(LogPDF(x, a, b)).
//
// The uniform case a = b = 1 is answered directly without transcendental calls.
func PDF(x, a, b float64) float64 {
	if math.IsNaN(x) || !validShapes(a, b) {
		return math.NaN()
	}
	if a == 1 && b == 1 {
		if x < 0 || x > 1 {
			return 0
		}
		return 1
	}

	return math.Exp(LogPDF(x, a, b))
}

// boundaryLogDensity resolves the 0·ln 0 form of (s−1)·ln t at t = 0, where s
// is the shape parameter attached to that end of the support.
func boundaryLogDensity(s, lnB float64) float64 {
	switch {
	case s == 1:
		return -lnB
	case s < 1:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}
}

// logPower returns k·lnT, treating a zero exponent as contributing nothing even
// when lnT is infinite.
func logPower(k, lnT float64) float64 {
	if k == 0 {
		return 0
	}
	return k * lnT
}
