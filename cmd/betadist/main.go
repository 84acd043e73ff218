// SPDX-License-Identifier: MIT

// Command betadist prints properties of a Beta(alpha, beta) distribution and
// evaluates its functions at given points.
//
//	betadist describe -a 2 -b 4
//	BETADIST_ALPHA=2 BETADIST_BETA=4 betadist eval --fn cdf 0.2 0.5 0.8
package main

import "github.com/katalvlaran/betadist/internal/cli"

func main() {
	cli.Execute()
}
