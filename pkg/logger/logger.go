// Package logger provides a process-wide structured logger backed by zap.
//
// All output goes to stderr; stdout is reserved for the MCP transport.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var singleton atomic.Pointer[zap.SugaredLogger]

func init() {
	singleton.Store(newDefault().Sugar())
}

func newDefault() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Fall back to a no-op logger (all output discarded) rather than failing process startup over logging.
		l = zap.NewNop()
	}
	return l
}

// SetLevel adjusts the minimum level of the process-wide logger.
func SetLevel(debug bool) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	singleton.Store(l.Sugar())
}

// With returns a child logger with the given structured key/value pairs bound to it.
func With(args ...interface{}) *zap.SugaredLogger {
	return singleton.Load().With(args...)
}

func Debug(args ...interface{})                  { singleton.Load().Debug(args...) }
func Debugf(template string, args ...interface{}) { singleton.Load().Debugf(template, args...) }
func Debugw(msg string, kv ...interface{})        { singleton.Load().Debugw(msg, kv...) }

func Info(args ...interface{})                  { singleton.Load().Info(args...) }
func Infof(template string, args ...interface{}) { singleton.Load().Infof(template, args...) }
func Infow(msg string, kv ...interface{})        { singleton.Load().Infow(msg, kv...) }

func Warn(args ...interface{})                  { singleton.Load().Warn(args...) }
func Warnf(template string, args ...interface{}) { singleton.Load().Warnf(template, args...) }
func Warnw(msg string, kv ...interface{})        { singleton.Load().Warnw(msg, kv...) }

func Error(args ...interface{})                  { singleton.Load().Error(args...) }
func Errorf(template string, args ...interface{}) { singleton.Load().Errorf(template, args...) }
func Errorw(msg string, kv ...interface{})        { singleton.Load().Errorw(msg, kv...) }
