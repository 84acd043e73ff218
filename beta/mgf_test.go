// SPDX-License-Identifier: MIT

package beta_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/betadist/beta"
)

// TestMGF_Uniform compares with the closed form (eᵗ − 1)/t.
func TestMGF_Uniform(t *testing.T) {
	for _, tt := range []float64{-30, -5, -0.5, 0.25, 1, 3, 20} {
		want := math.Expm1(tt) / tt
		assert.InEpsilon(t, want, beta.MGF(tt, 1, 1), 1e-12, "t=%g", tt)
	}
}

// TestMGF_Special checks t = 0, ±Inf and NaN handling.
func TestMGF_Special(t *testing.T) {
	assert.Equal(t, 1.0, beta.MGF(0, 2, 4))
	assert.Equal(t, 0.0, beta.MGF(math.Inf(-1), 2, 4))
	assert.True(t, math.IsInf(beta.MGF(math.Inf(1), 2, 4), 1))
	assert.True(t, math.IsNaN(beta.MGF(math.NaN(), 2, 4)))
	assert.True(t, math.IsNaN(beta.MGF(1, -2, 4)))
}

// TestMGF_Derivative checks MGF'(0) = Mean via a central difference.
func TestMGF_Derivative(t *testing.T) {
	const h = 1e-5
	for _, ab := range [][2]float64{{2, 4}, {0.5, 0.5}, {9, 3}} {
		d := (beta.MGF(h, ab[0], ab[1]) - beta.MGF(-h, ab[0], ab[1])) / (2 * h)
		assert.InDelta(t, beta.Mean(ab[0], ab[1]), d, 1e-8, "a=%g b=%g", ab[0], ab[1])
	}
}

// TestMGF_LargeNegative checks the Kummer-transformed path against the
// small-x density approximation E[e^{tX}] ≈ Γ(a+b)/(Γ(b)) · |t|^(−a) for t → −∞.
func TestMGF_LargeNegative(t *testing.T) {
	m := beta.MGF(-50, 2, 4)
	assert.InDelta(t, 0.007096064, m, 1e-9)

	m = beta.MGF(-1e4, 2, 4)
	assert.InEpsilon(t, 20.0/1e8, m, 1e-2)
	assert.Greater(t, m, 0.0)
}

// TestMGF_LargePositive ensures the rescaled series reaches e^t growth without overflow.
func TestMGF_LargePositive(t *testing.T) {
	// ₁F₁(2; 6; t) ~ 120·eᵗ·t⁻⁴ ≈ 5e294 at t = 700.
	m := beta.MGF(700, 2, 4)
	assert.False(t, math.IsInf(m, 0))
	assert.Greater(t, m, 1e290)

	assert.True(t, math.IsInf(beta.MGF(1e4, 2, 4), 1), "overflows to +Inf beyond float64 range")
}

// TestMGF_TermCap ensures a tiny cap terminates with the partial sum.
func TestMGF_TermCap(t *testing.T) {
	assert.InDelta(t, 1+2.0/6*0.5, beta.MGF(0.5, 2, 4, beta.WithMaxSeriesTerms(1)), 1e-15)
}
