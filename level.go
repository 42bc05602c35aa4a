// Package conlog is a minimal leveled console logger. Messages are filtered
// against a severity threshold held by a per-goroutine Scope, stamped with the
// time, the scope name and the call site, and written as single lines to the
// logger's output.
package conlog

import (
	"errors"
	"fmt"
	"strings"
)

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
type Level int

// Names for common log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	// ErrInvalidLevel is returned when a level label is not one of the four
	// recognized severities.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrNoLevel is returned by Configure when no label is given and the
	// logger carries no process-wide default either.
	ErrNoLevel = errors.New("no log level configured")
)

// String returns the canonical uppercase label of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a severity label, case-insensitively. Only the four
// canonical labels are accepted; anything else fails with ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
