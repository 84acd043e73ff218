// SPDX-License-Identifier: MIT
// Package: cli
//
// Purpose:
//   - cobra command tree of the betadist binary: a root command carrying the
//     shape and solver flags, plus describe and eval subcommands.
//
// Configuration:
//   - Every persistent flag is bound through viper, so BETADIST_<FLAG>
//     environment variables and an optional config file override defaults.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/betadist/beta"
)

const (
	envVarPrefix = "BETADIST"

	alphaFlag          = "alpha"
	betaFlag           = "beta"
	toleranceFlag      = "tolerance"
	maxIterationsFlag  = "maxIterations"
	maxSeriesTermsFlag = "maxSeriesTerms"
	logLevelFlag       = "logLevel"
	prodLogsFlag       = "prodLogs"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "betadist",
	Short: "evaluate properties and functions of a Beta(alpha, beta) distribution",
	Long: `betadist builds a Beta(alpha, beta) distribution on [0,1] from flags or
BETADIST_* environment variables and prints its closed-form properties
(describe) or evaluates PDF, CDF, quantile and MGF at given points (eval).

Example:
  betadist describe -a 2 -b 4
  betadist eval -a 2 -b 4 --fn quantile 0.05 0.5 0.95`,
	SilenceUsage: true,
}

// Execute is the main entrypoint for the betadist CLI.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (yaml, toml or json)")
	RootCmd.PersistentFlags().Float64P(alphaFlag, "a", beta.DefaultAlpha,
		"alpha shape parameter (> 0)")
	RootCmd.PersistentFlags().Float64P(betaFlag, "b", beta.DefaultBeta,
		"beta shape parameter (> 0)")
	RootCmd.PersistentFlags().Float64(toleranceFlag, beta.DefaultTolerance,
		"relative step tolerance of the quantile solver")
	RootCmd.PersistentFlags().Int(maxIterationsFlag, beta.DefaultMaxIterations,
		"iteration cap of the quantile solver")
	RootCmd.PersistentFlags().Int(maxSeriesTermsFlag, beta.DefaultMaxSeriesTerms,
		"term cap of the MGF series")
	RootCmd.PersistentFlags().StringP(logLevelFlag, "l", zap.WarnLevel.String(),
		"log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().Bool(prodLogsFlag, false,
		"emit JSON production logs instead of console logs")

	bindFlags(RootCmd.PersistentFlags())
}

// bindFlags binds flags to viper keys of the same name, overridable by
// BETADIST_<FLAG> environment variables.
func bindFlags(flags *pflag.FlagSet) {
	viper.SetEnvPrefix(envVarPrefix) // look for env vars with "BETADIST_" prefix
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// initConfig reads in the config file if one was given.
func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to read config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}

// getDistribution builds the configured distribution. Invalid shapes come back
// as beta.ErrInvalidArgument; invalid solver settings are rejected before they
// reach the beta options, which would otherwise panic.
func getDistribution(logger *zap.Logger) (*beta.Distribution, error) {
	alpha, b := viper.GetFloat64(alphaFlag), viper.GetFloat64(betaFlag)
	opts, err := getOptions()
	if err != nil {
		logger.Error("invalid solver settings", zap.Error(err))
		return nil, err
	}

	d, err := beta.NewDistribution(alpha, b, opts...)
	if err != nil {
		logger.Error("invalid shape parameters",
			zap.Float64(alphaFlag, alpha),
			zap.Float64(betaFlag, b),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Info("distribution configuration",
		zap.Stringer("distribution", d),
		zap.Float64(toleranceFlag, viper.GetFloat64(toleranceFlag)),
		zap.Int(maxIterationsFlag, viper.GetInt(maxIterationsFlag)),
		zap.Int(maxSeriesTermsFlag, viper.GetInt(maxSeriesTermsFlag)),
	)
	return d, nil
}

func getOptions() ([]beta.Option, error) {
	tol := viper.GetFloat64(toleranceFlag)
	if !(tol > 0 && tol < 1) {
		return nil, fmt.Errorf("%s=%v must be in (0, 1): %w", toleranceFlag, tol, errInvalidFlag)
	}
	maxIter := viper.GetInt(maxIterationsFlag)
	if maxIter <= 0 {
		return nil, fmt.Errorf("%s=%d must be > 0: %w", maxIterationsFlag, maxIter, errInvalidFlag)
	}
	maxTerms := viper.GetInt(maxSeriesTermsFlag)
	if maxTerms <= 0 {
		return nil, fmt.Errorf("%s=%d must be > 0: %w", maxSeriesTermsFlag, maxTerms, errInvalidFlag)
	}

	return []beta.Option{
		beta.WithTolerance(tol),
		beta.WithMaxIterations(maxIter),
		beta.WithMaxSeriesTerms(maxTerms),
	}, nil
}
