// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Closed-form moment and shape formulas of Beta(a, b).
//
// Exposed API:
//   - Mean, Variance, StdDev, Mode, Skewness, Kurtosis (excess), Median, Entropy
//
// Conventions:
//   - Every function returns NaN when a or b is not a finite positive number.
//   - Mode returns NaN where the mode is not unique (a = b = 1, or a < 1 and b < 1).

package beta

import (
	"math"

	"github.com/katalvlaran/betadist/special"
)

// Mean returns a / (a + b).
func Mean(a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}

	return a / (a + b)
}

// Variance returns ab / ((a+b)²(a+b+1)).
func Variance(a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}
	s := a + b

	return a * b / (s * s * (s + 1))
}

// StdDev returns the standard deviation √Variance(a,b).
func StdDev(a, b float64) float64 {
	return math.Sqrt(Variance(a, b))
}

// Mode returns the mode of Beta(a, b).
//
// Table:
//   - a > 1, b > 1: (a−1)/(a+b−2)
//   - a = b = 1:    NaN (every point of [0,1] is a mode)
//   - a < 1, b < 1: NaN (bimodal at 0 and 1)
//   - a ≤ 1, b ≥ 1: 0
//   - a ≥ 1, b ≤ 1: 1
func Mode(a, b float64) float64 {
	switch {
	case !validShapes(a, b):
		return math.NaN()
	case a > 1 && b > 1:
		return (a - 1) / (a + b - 2)
	case a == 1 && b == 1:
		return math.NaN()
	case a < 1 && b < 1:
		return math.NaN()
	case a <= 1 && b >= 1:
		return 0
	default: // a >= 1 && b <= 1
		return 1
	}
}

// Skewness returns 2(b−a)√(a+b+1) / ((a+b+2)√(ab)).
func Skewness(a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}
	s := a + b

	return 2 * (b - a) * math.Sqrt(s+1) / ((s + 2) * math.Sqrt(a*b))
}

// Kurtosis returns the excess kurtosis
// 6[(a−b)²(a+b+1) − ab(a+b+2)] / (ab(a+b+2)(a+b+3)).
func Kurtosis(a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}
	s := a + b
	d := a - b
	ab := a * b

	return 6 * (d*d*(s+1) - ab*(s+2)) / (ab * (s + 2) * (s + 3))
}

// Median returns the median of Beta(a, b).
//
// Closed forms cover a = b (0.5), a = 1 (1 − 2^(−1/b)) and b = 1 (2^(−1/a));
// every other case is Quantile(0.5, a, b, opts...).
func Median(a, b float64, opts ...Option) float64 {
	return median(a, b, gatherOptions(opts...))
}

func median(a, b float64, o Options) float64 {
	switch {
	case !validShapes(a, b):
		return math.NaN()
	case a == b:
		return 0.5
	case a == 1:
		return 1 - math.Pow(2, -1/b)
	case b == 1:
		return math.Pow(2, -1/a)
	default:
		return quantile(0.5, a, b, o)
	}
}

// Entropy returns the differential entropy
// ln B(a,b) − (a−1)ψ(a) − (b−1)ψ(b) + (a+b−2)ψ(a+b).
//
// The value is ≤ 0 for every Beta distribution and 0 for the uniform case.
func Entropy(a, b float64) float64 {
	if !validShapes(a, b) {
		return math.NaN()
	}

	return special.LogBeta(a, b) -
		(a-1)*special.Digamma(a) -
		(b-1)*special.Digamma(b) +
		(a+b-2)*special.Digamma(a+b)
}
