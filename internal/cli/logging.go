// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDevLogger creates a console logger at the given level. Logs go to stderr
// so they never interleave with command output.
func NewDevLogger(logLevel zapcore.Level) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level.SetLevel(logLevel)

	return config.Build()
}

// NewProdLogger creates a JSON logger at the given level.
func NewProdLogger(logLevel zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level.SetLevel(logLevel)

	return config.Build()
}

// getLogger builds the logger selected by the logLevel and prodLogs settings.
func getLogger() (*zap.Logger, error) {
	var ll zapcore.Level
	if err := ll.Set(viper.GetString(logLevelFlag)); err != nil {
		return nil, err
	}
	if viper.GetBool(prodLogsFlag) {
		return NewProdLogger(ll)
	}
	return NewDevLogger(ll)
}
