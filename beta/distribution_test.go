// SPDX-License-Identifier: MIT

package beta_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betadist/beta"
)

// TestNew_Defaults verifies that New() is the uniform distribution and that
// every derived property matches its closed form.
func TestNew_Defaults(t *testing.T) {
	d, err := beta.New()
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.Alpha())
	assert.Equal(t, 1.0, d.Beta())
	assert.Equal(t, 0.5, d.Mean())
	assert.InDelta(t, 1.0/12, d.Variance(), 1e-15)
	assert.Equal(t, 0.0, d.Entropy(), "uniform entropy is exactly zero")
	assert.Equal(t, 0.0, d.Skewness())
	assert.InDelta(t, -1.2, d.Kurtosis(), 1e-15)
	assert.Equal(t, 0.5, d.Median())
	assert.True(t, math.IsNaN(d.Mode()), "uniform mode is not unique")
	assert.InDelta(t, 0.8, d.CDF(0.8), 1e-14)
	assert.Equal(t, 1.0, d.PDF(1.0))
	assert.Equal(t, 0.8, d.Quantile(0.8))
}

// TestNew_Scenario checks Beta(2, 4) against hand-computed values.
func TestNew_Scenario(t *testing.T) {
	d, err := beta.New(2.0, 4.0)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3, d.Mean(), 1e-15)
	assert.InDelta(t, 0.3138101704556975, d.Median(), 1e-9)
	assert.InDelta(t, 2.0/63, d.Variance(), 1e-15)
	assert.InDelta(t, 0.99328, d.CDF(0.8), 1e-12)
	assert.InDelta(t, 0.128, d.PDF(0.8), 1e-12)
	assert.InDelta(t, math.Log(0.8125), d.LogCDF(0.5), 1e-12)
	assert.InDelta(t, 1.1861217902777064, d.MGF(0.5), 1e-12)
	assert.InDelta(t, 0.3138101704556975, d.Quantile(0.5), 1e-9)
	assert.InDelta(t, 0.25, d.Mode(), 1e-15)
	assert.InDelta(t, 0.00672, d.Survival(0.8), 1e-12)
	assert.Equal(t, "Beta(α=2, β=4)", d.String())
}

// TestNew_InvalidArguments ensures every rejected construction reports
// ErrInvalidArgument and returns no instance.
func TestNew_InvalidArguments(t *testing.T) {
	cases := []struct {
		name  string
		shape []float64
	}{
		{"negative alpha", []float64{-5.0, 2.0}},
		{"zero alpha", []float64{0.0, 2.0}},
		{"NaN alpha", []float64{math.NaN(), 2.0}},
		{"negative beta", []float64{2.0, -1.0}},
		{"infinite beta", []float64{2.0, math.Inf(1)}},
		{"single argument", []float64{2.0}},
		{"three arguments", []float64{1.0, 2.0, 3.0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := beta.New(tc.shape...)
			assert.ErrorIs(t, err, beta.ErrInvalidArgument)
			assert.Nil(t, d)
		})
	}
}

// TestNew_ErrorNamesParameter checks that the message carries the parameter
// name and the offending value.
func TestNew_ErrorNamesParameter(t *testing.T) {
	_, err := beta.New(2.0, -3.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beta=-3.5")

	_, err = beta.NewDistribution(-5, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha=-5")
}

// TestSetAlpha_Rejection verifies that invalid writes fail and keep the prior value.
func TestSetAlpha_Rejection(t *testing.T) {
	d, err := beta.New(2, 4)
	require.NoError(t, err)

	err = d.SetAlpha(-1)
	assert.ErrorIs(t, err, beta.ErrInvalidArgument)
	assert.Equal(t, 2.0, d.Alpha(), "alpha must be unchanged after a rejected write")

	err = d.SetBeta(math.NaN())
	assert.ErrorIs(t, err, beta.ErrInvalidArgument)
	assert.Equal(t, 4.0, d.Beta(), "beta must be unchanged after a rejected write")
}

// TestSetters_RecomputeDerived ensures properties follow the current parameters.
func TestSetters_RecomputeDerived(t *testing.T) {
	d, err := beta.New()
	require.NoError(t, err)
	assert.Equal(t, 0.5, d.Mean())

	require.NoError(t, d.SetAlpha(3))
	assert.InDelta(t, 0.75, d.Mean(), 1e-15)

	require.NoError(t, d.SetBeta(3))
	assert.Equal(t, 0.5, d.Mean())
	assert.Equal(t, 0.5, d.Median())
	assert.InDelta(t, 0.5, d.Mode(), 1e-15)
}

// TestNewDistribution_Options checks that options reach the iterative evaluators.
func TestNewDistribution_Options(t *testing.T) {
	d, err := beta.NewDistribution(2, 5, beta.WithTolerance(1e-6), beta.WithMaxIterations(50), beta.WithMaxSeriesTerms(10))
	require.NoError(t, err)

	o := d.Options()
	assert.Equal(t, 1e-6, o.Tolerance())
	assert.Equal(t, 50, o.MaxIterations())
	assert.Equal(t, 10, o.MaxSeriesTerms())

	// A loose tolerance still lands near the true median.
	assert.InDelta(t, beta.Median(2, 5), d.Median(), 1e-5)
}

// TestDistribution_NaNPropagation ensures evaluators never fail on NaN input.
func TestDistribution_NaNPropagation(t *testing.T) {
	d, err := beta.New(2, 3)
	require.NoError(t, err)

	nan := math.NaN()
	assert.True(t, math.IsNaN(d.CDF(nan)))
	assert.True(t, math.IsNaN(d.LogCDF(nan)))
	assert.True(t, math.IsNaN(d.PDF(nan)))
	assert.True(t, math.IsNaN(d.LogPDF(nan)))
	assert.True(t, math.IsNaN(d.MGF(nan)))
	assert.True(t, math.IsNaN(d.Quantile(nan)))
	assert.True(t, math.IsNaN(d.Survival(nan)))
}
