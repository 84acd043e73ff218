// SPDX-License-Identifier: MIT
// Package: special
//
// Purpose:
//   - Kummer's confluent hypergeometric function ₁F₁(a; c; z) as a power series.
//
// Algorithm:
//
//	₁F₁(a; c; z) = Σₖ (a)ₖ/(c)ₖ · zᵏ/k!
//	tₖ₊₁ = tₖ · (a+k)/(c+k) · z/(k+1)
//
//	For z < 0 Kummer's transformation ₁F₁(a; c; z) = eᶻ·₁F₁(c−a; c; −z) is
//	applied so that, for c > a > 0, every term is positive.
//	The running sum is rescaled in steps of 1e300 to stay finite, and the
//	final value is assembled as exp(z + scale + ln(sum)).

package special

import "math"

// DefaultMaxSeriesTerms is the term cap applied when Hyp1F1 receives maxTerms ≤ 0.
const DefaultMaxSeriesTerms = 100000

const (
	// seriesEpsilon is the relative size below which a term no longer changes the sum.
	seriesEpsilon = 2.220446049250313e-16

	// rescaleAt bounds the running sum before it is rescaled.
	rescaleAt = 1e300
)

// Hyp1F1 returns the confluent hypergeometric function ₁F₁(a; c; z).
//
// Inputs:
//   - a, c: series parameters; c must not be zero or a negative integer.
//   - z: argument.
//   - maxTerms: safeguard cap on the number of series terms; ≤ 0 selects
//     DefaultMaxSeriesTerms. At the cap the accumulated sum is returned.
//
// Returns:
//   - 1 for z == 0.
//   - NaN for NaN inputs or a pole in c.
//
// Complexity:
//   - Time O(|z| + k) where k is the number of terms past the peak, bounded by maxTerms.
func Hyp1F1(a, c, z float64, maxTerms int) float64 {
	if math.IsNaN(a) || math.IsNaN(c) || math.IsNaN(z) {
		return math.NaN()
	}
	if c <= 0 && c == math.Floor(c) {
		return math.NaN()
	}
	if z == 0 {
		return 1
	}
	if maxTerms <= 0 {
		maxTerms = DefaultMaxSeriesTerms
	}

	if z < 0 {
		sum, scale := kummerSeries(c-a, c, -z, maxTerms)
		return assemble(z+scale, sum)
	}

	sum, scale := kummerSeries(a, c, z, maxTerms)
	return assemble(scale, sum)
}

// assemble returns exp(logScale)·sum without overflowing intermediate products.
func assemble(logScale, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	if sum < 0 {
		return -math.Exp(logScale + math.Log(-sum))
	}
	return math.Exp(logScale + math.Log(sum))
}

// kummerSeries sums the ₁F₁ power series and returns (sum, logScale) such
// that the series value is sum·exp(logScale).
//
// The loop stops once a term is below seriesEpsilon relative to the sum AND the
// term ratio has dropped under one; checking only the term size would stop
// early when a is tiny and the terms are still growing.
func kummerSeries(a, c, z float64, maxTerms int) (float64, float64) {
	var (
		sum      = 1.0
		term     = 1.0
		logScale = 0.0
		ratio    float64
		k        float64
	)

	for i := 0; i < maxTerms; i++ {
		k = float64(i)
		ratio = (a + k) / (c + k) * z / (k + 1)
		term *= ratio
		sum += term

		if math.IsInf(z, 0) || math.IsInf(sum, 0) {
			return sum, logScale
		}
		if math.Abs(sum) > rescaleAt {
			sum /= rescaleAt
			term /= rescaleAt
			logScale += math.Log(rescaleAt)
		}

		next := math.Abs((a + k + 1) / (c + k + 1) * z / (k + 2))
		if math.Abs(term) <= seriesEpsilon*math.Abs(sum) && next < 1 {
			break
		}
		if term == 0 {
			break
		}
	}

	return sum, logScale
}
