// SPDX-License-Identifier: MIT

// Package cli implements the betadist command line: flag and environment
// configuration through viper, console/JSON logging through zap, and the
// describe and eval commands that print a beta.Distribution.
//
// The package only translates between strings and the beta API; every number
// it prints comes from package beta.
package cli
