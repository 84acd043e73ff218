// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/betadist/beta"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "print the moments and shape properties of the distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := getLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		d, err := getDistribution(logger)
		if err != nil {
			return err
		}
		return writeDescription(cmd.OutOrStdout(), d)
	},
}

func init() {
	RootCmd.AddCommand(describeCmd)
}

// writeDescription prints one "name value" line per property.
func writeDescription(w io.Writer, d *beta.Distribution) error {
	props := []struct {
		name  string
		value float64
	}{
		{"mean", d.Mean()},
		{"median", d.Median()},
		{"mode", d.Mode()},
		{"variance", d.Variance()},
		{"stddev", d.StdDev()},
		{"skewness", d.Skewness()},
		{"kurtosis", d.Kurtosis()},
		{"entropy", d.Entropy()},
	}

	if _, err := fmt.Fprintln(w, d); err != nil {
		return err
	}
	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%-9s %.*g\n", p.name, outputDigits, p.value); err != nil {
			return err
		}
	}
	return nil
}
