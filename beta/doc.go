// Package beta implements the Beta distribution on [0,1]: moments, density,
// cumulative probability, quantiles and the moment-generating function, plus
// a validated Distribution object that owns the two shape parameters.
//
// 🚀 What is the Beta distribution?
//
//	A continuous distribution on [0,1] with density
//	  f(x; α, β) = x^(α−1) (1−x)^(β−1) / B(α, β),   α, β > 0.
//	It is widely used for:
//	  • Bayesian priors/posteriors of probabilities (conversion rates, A/B tests)
//	  • Task-duration estimates (PERT)
//	  • Modelling proportions and utilization ratios
//
// ✨ Key features:
//   - closed-form Mean, Variance, StdDev, Mode, Skewness, Kurtosis, Entropy
//   - PDF/LogPDF with exact boundary limits at x = 0 and x = 1
//   - CDF/LogCDF/Survival on a Lentz continued fraction (see package special)
//   - Quantile via safeguarded Newton–Raphson (bisection fallback)
//   - MGF via the Kummer ₁F₁ series
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/betadist/beta"
//
//	d, err := beta.New(2, 4)
//	if err != nil {
//	  // errors.Is(err, beta.ErrInvalidArgument)
//	}
//	fmt.Println(d.Mean(), d.Median(), d.CDF(0.8), d.Quantile(0.5))
//
//	// package-level formulas take (x, alpha, beta):
//	p := beta.CDF(0.8, 2, 4)
//
// Errors:
//
//	Only construction and SetAlpha/SetBeta fail, always with ErrInvalidArgument.
//	Evaluators never fail: out-of-support inputs yield 0, 1, ±Inf or NaN,
//	and NaN inputs propagate to NaN.
//
// Performance:
//
//   - closed-form properties: O(1)
//   - CDF/LogCDF: O(√max(α,β)) continued-fraction iterations
//   - Quantile: a handful of CDF+PDF evaluations (bounded by WithMaxIterations)
//
// See examples in example_test.go.
package beta
