// Package logger constructs the zap logger used by the CLI.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing console-encoded records to stderr.
// Debug records are only emitted when verbose is set.
func New(service string, verbose bool) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableStacktrace = true
	config.DisableCaller = true
	config.Sampling = nil

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.DisableCaller = false
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	log, err := config.Build(zap.Fields(zap.String("service", service)))
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
