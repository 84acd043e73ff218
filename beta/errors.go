// SPDX-License-Identifier: MIT
// Package beta: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors and
// mutators MUST return these sentinels (wrapped with context) and tests MUST
// check them via errors.Is. Evaluators never return errors: out-of-domain
// scalar inputs map to 0, 1, ±Inf or NaN instead.

package beta

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a shape parameter is NaN, ±Inf, zero or
// negative, and when New receives a number of shape parameters other than
// zero or two.
var ErrInvalidArgument = errors.New("beta: invalid argument")

// Operation name constants for unified error wrapping.
const (
	opNew             = "New"
	opNewDistribution = "NewDistribution"
	opSetAlpha        = "SetAlpha"
	opSetBeta         = "SetBeta"
)

// betaErrorf prefixes err with the failing operation, keeping the sentinel
// reachable through errors.Is.
func betaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
