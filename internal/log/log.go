// Package log provides centralized logging backed by zap.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

// Init initializes the package-level logger. In debug mode output is
// human-readable with DEBUG level enabled.
func Init(debug bool) error {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		logger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	base = logger
	sugar = logger.Sugar()
	return nil
}

func get() *zap.SugaredLogger {
	if sugar == nil {
		base, _ = zap.NewProduction(zap.AddCallerSkip(1))
		sugar = base.Sugar()
	}
	return sugar
}

// Sync flushes any buffered log entries.
func Sync() {
	if sugar != nil {
		sugar.Sync()
	}
}

func Debugf(template string, args ...interface{}) { get().Debugf(template, args...) }
func Infof(template string, args ...interface{})  { get().Infof(template, args...) }
func Warnf(template string, args ...interface{})  { get().Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { get().Errorf(template, args...) }

func Infow(msg string, keysAndValues ...interface{}) { get().Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...interface{}) { get().Warnw(msg, keysAndValues...) }

// Fatalf logs the message and exits the process.
func Fatalf(template string, args ...interface{}) { get().Fatalf(template, args...) }
