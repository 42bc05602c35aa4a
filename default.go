package conlog

import "sync/atomic"

var defaultLogger atomic.Pointer[Logger]

func init() {
	l, _ := NewStdout("")
	defaultLogger.Store(l)
}

// Default returns the package default Logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault makes l the package default Logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}
