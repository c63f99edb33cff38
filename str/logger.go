package str

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the engine's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for storage-transition tracing and enables
// the trace gate. Passing nil restores the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		debug = false
		return
	}
	logger = l
	debug = true
}

// debug gates transition tracing; flipped by SetLogger.
var debug = false

func debugf(format string, args ...any) {
	if debug {
		Logger().Sugar().Debugf(format, args...)
	}
}
