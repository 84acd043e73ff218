// SPDX-License-Identifier: MIT
// Package: beta
//
// Purpose:
//   - Single source of truth for shape-parameter validation.
//   - Return ErrInvalidArgument wrapped with the parameter name and value so
//     call sites only add their operation name.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate only on the error path.

package beta

import (
	"fmt"
	"math"
)

// Parameter names used in validation messages.
const (
	paramAlpha = "alpha"
	paramBeta  = "beta"
)

// validatorErrorf tags a sentinel with the validator name and detail.
func validatorErrorf(tag, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", tag, detail, err)
}

// ValidateShape ensures v is a finite, strictly positive shape parameter.
//
// Inputs: the parameter name (used in the message) and its value.
// Returns nil or ErrInvalidArgument wrapped with "name=value".
// Complexity: O(1).
func ValidateShape(name string, v float64) error {
	if !validShape(v) {
		return validatorErrorf("ValidateShape", fmt.Sprintf("%s=%v must be finite and > 0", name, v), ErrInvalidArgument)
	}

	return nil
}

// ValidateShapes – Composite: ValidateShape(alpha) → ValidateShape(beta).
//
// The first failing parameter is reported.
func ValidateShapes(alpha, beta float64) error {
	if err := ValidateShape(paramAlpha, alpha); err != nil {
		return err
	}
	if err := ValidateShape(paramBeta, beta); err != nil {
		return err
	}

	return nil
}

// validShape is the allocation-free predicate behind ValidateShape.
// NaN fails the comparison and is rejected with zero and negatives.
func validShape(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// validShapes reports whether both parameters are usable by the formulas.
func validShapes(a, b float64) bool {
	return validShape(a) && validShape(b)
}
