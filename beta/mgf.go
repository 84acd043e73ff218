// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Moment-generating function of Beta(a, b): M(t) = E[e^{tX}] = ₁F₁(a; a+b; t).
//
// Determinism & Performance:
//   - Delegates to special.Hyp1F1; for t < 0 Kummer's transformation keeps all
//     terms positive, so large negative t loses no precision to cancellation.
//   - At most Options.MaxSeriesTerms series terms.

package beta

import (
	"math"

	"github.com/katalvlaran/betadist/special"
)

// MGF returns the moment-generating function E[e^{tX}] = ₁F₁(a; a+b; t).
//
// The series is summed by special.Hyp1F1 with the term cap from
// WithMaxSeriesTerms (default DefaultMaxSeriesTerms).
//
// Returns:
//   - 1 for t = 0, 0 for t = −Inf, +Inf for t = +Inf.
//   - NaN for NaN arguments or invalid a/b.
func MGF(t, a, b float64, opts ...Option) float64 {
	return mgf(t, a, b, gatherOptions(opts...))
}

func mgf(t, a, b float64, o Options) float64 {
	if math.IsNaN(t) || !validShapes(a, b) {
		return math.NaN()
	}
	if math.IsInf(t, -1) {
		return 0
	}

	return special.Hyp1F1(a, a+b, t, o.maxTerms)
}
