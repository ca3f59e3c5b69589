package slang

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/slang-go/internal/ffi"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	logger.CompareAndSwap(nil, zap.NewNop())
	return logger.Load()
}

// SetLogger configures logging for this package and the native boundary.
// A nil logger restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
	ffi.SetLogger(l)
}

func debugf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
