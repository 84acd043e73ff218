// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	errInvalidFlag     = errors.New("invalid flag value")
	errUnknownFunction = errors.New("unknown function")
	errMissingPoints   = errors.New("missing evaluation points")
)
