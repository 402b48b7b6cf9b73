// Package logging wires zap behind the logr interface for CLI diagnostics.
package logging

import (
	"errors"
	"os"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger is kept for Sync; it stays nil unless New enables logging.
var zapLogger *zap.Logger

// New returns the diagnostics logger. Without debug it discards everything,
// so a normal run writes nothing but the table itself. With debug it emits
// JSON entries to stderr, keeping stdout clean for output.
func New(debug bool) logr.Logger {
	if !debug {
		return logr.Discard()
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	zapLogger = zap.New(core)
	return zapr.NewLogger(zapLogger)
}

// Sync flushes buffered entries. Errors from syncing stderr on a TTY or
// pipe are expected and ignored.
func Sync() {
	if zapLogger == nil {
		return
	}
	if err := zapLogger.Sync(); err != nil {
		if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
			return
		}
	}
}
