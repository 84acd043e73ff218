// SPDX-License-Identifier: MIT

// Package special provides the scalar special-function kernels shared by the
// betadist distributions: log-gamma, log-beta, digamma, the regularized
// incomplete beta function (linear and log space), a seed-quality inverse of
// the incomplete beta function, and the Kummer confluent hypergeometric series.
//
// ✨ Key features:
//   - Modified Lentz continued fraction for Iₓ(a,b) with the symmetry switch
//     Iₓ(a,b) = 1 − I₁₋ₓ(b,a) when x > (a+1)/(a+b+2)
//   - log-space Iₓ(a,b) that never takes the log of an underflowed result
//   - iteration caps that scale with the shape parameters, so every kernel terminates
//   - Kummer transformation for negative arguments of ₁F₁ (all-positive series)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/betadist/special"
//
//	p := special.RegIncBeta(2, 4, 0.5)        // 0.8125
//	lp := special.LogRegIncBeta(2, 4, 1e-40)  // finite, no underflow
//	m := special.Hyp1F1(2, 6, 0.5, 0)         // default term cap
//
// Conventions:
//   - Argument order follows gonum/mathext: (a, b, x).
//   - Every kernel is pure and allocation-free; NaN inputs propagate to NaN.
//   - No kernel panics on user input.
package special
