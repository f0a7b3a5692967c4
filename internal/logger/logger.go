// Package logger provides a centralized, leveled logging facility backed by zap.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// All output goes to stderr so that program output on stdout stays clean.
//
// Example usage:
//
//	logger.SetVerbosity(2) // Debug
//	logger.Infof("listening on %s", addr)
//	logger.Debugf("spot=%f vol=%f", spot, vol)
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // Error logs only critical failures.
	Info               // Info logs high-level application progress.
	Debug              // Debug logs detailed diagnostic information.
	Trace              // Trace logs very fine-grained execution details.
)

var (
	mu      sync.RWMutex
	current = Info
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	base    = newLogger(zapcore.AddSync(os.Stderr))
)

func newLogger(ws zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
}

// SetVerbosity sets the global logging verbosity.
// Typically called once during application startup.
func SetVerbosity(v int) {
	mu.Lock()
	defer mu.Unlock()
	current = Level(v)
	switch {
	case current <= Error:
		level.SetLevel(zapcore.ErrorLevel)
	case current == Info:
		level.SetLevel(zapcore.InfoLevel)
	default:
		level.SetLevel(zapcore.DebugLevel)
	}
}

// SetOutput redirects all log output to ws. Used by tests.
func SetOutput(ws zapcore.WriteSyncer) {
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(ws)
}

// L returns the underlying zap logger for structured fields.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.WithOptions(zap.AddCallerSkip(-2))
}

func logf(l Level, format string, args ...any) {
	mu.RLock()
	enabled, lg := current >= l, base
	mu.RUnlock()
	if !enabled {
		return
	}
	s := lg.Sugar()
	switch l {
	case Error:
		s.Errorf(format, args...)
	case Info:
		s.Infof(format, args...)
	case Trace:
		s.With("trace", true).Debugf(format, args...)
	default:
		s.Debugf(format, args...)
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	logf(Error, format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logf(Info, format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	logf(Debug, format, args...)
}

// Tracef logs very detailed execution traces.
func Tracef(format string, args ...any) {
	logf(Trace, format, args...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = L().Sync()
}
