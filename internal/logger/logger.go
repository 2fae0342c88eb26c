package logger

import (
	"go.uber.org/zap"
)

// Logger interface for structured logging
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// ZapLogger implements Logger on top of zap's sugared logger
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger appropriate for the given environment. Production
// gets JSON output, everything else gets the human-readable development
// encoder.
func New(environment string) Logger {
	var zl *zap.Logger
	var err error
	if environment == "production" {
		zl, err = zap.NewProduction(zap.AddCallerSkip(1))
	} else {
		zl, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		// zap only fails on invalid config; fall back to a no-op core
		zl = zap.NewNop()
	}
	return &ZapLogger{sugar: zl.Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, fields ...interface{}) {
	l.sugar.Infow(msg, fields...)
}

// Error logs an error message
func (l *ZapLogger) Error(msg string, err error, fields ...interface{}) {
	l.sugar.Errorw(msg, append([]interface{}{"error", err}, fields...)...)
}

// Warn logs a warning message
func (l *ZapLogger) Warn(msg string, fields ...interface{}) {
	l.sugar.Warnw(msg, fields...)
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, fields ...interface{}) {
	l.sugar.Debugw(msg, fields...)
}

// Fatal logs a fatal error and exits
func (l *ZapLogger) Fatal(msg string, err error, fields ...interface{}) {
	l.sugar.Fatalw(msg, append([]interface{}{"error", err}, fields...)...)
}
