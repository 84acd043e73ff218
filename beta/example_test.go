// SPDX-License-Identifier: MIT

package beta_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/betadist/beta"
)

// ExampleNew shows the uniform default distribution.
func ExampleNew() {
	d, err := beta.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	fmt.Printf("mean=%.1f variance=%.4f entropy=%.1f skewness=%.1f kurtosis=%.1f\n",
		d.Mean(), d.Variance(), d.Entropy(), d.Skewness(), d.Kurtosis())
	fmt.Printf("cdf(0.8)=%.1f pdf(1)=%.1f quantile(0.8)=%.1f\n", d.CDF(0.8), d.PDF(1), d.Quantile(0.8))
	// Output:
	// Beta(α=1, β=1)
	// mean=0.5 variance=0.0833 entropy=0.0 skewness=0.0 kurtosis=-1.2
	// cdf(0.8)=0.8 pdf(1)=1.0 quantile(0.8)=0.8
}

// ExampleDistribution_scenario evaluates a skewed Beta(2, 4).
//
// Scenario:
//
//	A conversion rate with 1 observed success and 3 failures under a uniform
//	prior has posterior Beta(2, 4).
func ExampleDistribution_scenario() {
	d, err := beta.New(2.0, 4.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.3f median=%.3f variance=%.3f\n", d.Mean(), d.Median(), d.Variance())
	fmt.Printf("cdf(0.8)=%.3f pdf(0.8)=%.3f logcdf(0.5)=%.3f\n", d.CDF(0.8), d.PDF(0.8), d.LogCDF(0.5))
	fmt.Printf("mgf(0.5)=%.3f quantile(0.5)=%.3f\n", d.MGF(0.5), d.Quantile(0.5))
	// Output:
	// mean=0.333 median=0.314 variance=0.032
	// cdf(0.8)=0.993 pdf(0.8)=0.128 logcdf(0.5)=-0.208
	// mgf(0.5)=1.186 quantile(0.5)=0.314
}

// ExampleDistribution_SetAlpha shows that a rejected write keeps the prior value.
func ExampleDistribution_SetAlpha() {
	d, _ := beta.New(2, 4)
	err := d.SetAlpha(-1)
	fmt.Println(errors.Is(err, beta.ErrInvalidArgument), d.Alpha())
	// Output:
	// true 2
}

// ExampleQuantile uses the package-level formula with explicit parameters.
func ExampleQuantile() {
	x := beta.Quantile(0.95, 3, 7)
	fmt.Printf("x=%.4f cdf=%.4f\n", x, beta.CDF(x, 3, 7))
	// Output:
	// x=0.5496 cdf=0.9500
}
