// SPDX-License-Identifier: MIT

package beta_test

import (
	"testing"

	"github.com/katalvlaran/betadist/beta"
)

// sink keeps results alive so the compiler cannot elide the calls.
var sink float64

func BenchmarkCDF_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = beta.CDF(0.3, 2, 4)
	}
}

func BenchmarkCDF_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = beta.CDF(0.49, 5000, 5000)
	}
}

func BenchmarkQuantile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = beta.Quantile(0.37, 2.5, 7)
	}
}

func BenchmarkMGF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = beta.MGF(3, 2, 4)
	}
}

func BenchmarkDistribution_Median(b *testing.B) {
	d, err := beta.New(2, 4)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = d.Median()
	}
}
