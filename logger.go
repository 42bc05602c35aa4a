package conlog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/xid"
)

// Timestamp layout for log lines, millisecond precision.
const timeLayout = "2006-01-02 15:04:05.000"

// Logger is the process-wide half of the facility: the output destination and
// the optional default threshold scopes fall back to. A Logger is immutable
// after New and safe for use from any number of goroutines.
type Logger struct {
	out        io.Writer
	defLevel   Level
	hasDefault bool
	now        func() time.Time
}

// New returns a Logger writing to out. defaultLevel is the process-wide
// default threshold as a severity label; it is validated immediately and an
// unknown label fails with ErrInvalidLevel. An empty defaultLevel means no
// default: unconfigured scopes then log wide open, marked with "*".
func New(out io.Writer, defaultLevel string) (*Logger, error) {
	l := &Logger{
		out: out,
		now: time.Now,
	}

	if defaultLevel != "" {
		level, err := ParseLevel(defaultLevel)
		if err != nil {
			return nil, err
		}
		l.defLevel = level
		l.hasDefault = true
	}

	return l, nil
}

// NewStdout returns a Logger writing to standard output.
func NewStdout(defaultLevel string) (*Logger, error) {
	return New(os.Stdout, defaultLevel)
}

// Scope returns a new logging scope with the given name and no threshold.
// If name is empty a unique one is generated.
//
// A Scope stands in for the calling goroutine: it is owned by one goroutine
// and is not synchronized. Two goroutines each holding their own scope may
// configure different thresholds without affecting each other.
func (l *Logger) Scope(name string) *Scope {
	if name == "" {
		name = xid.New().String()
	}
	return &Scope{
		logger: l,
		name:   name,
	}
}

// Scope is the per-goroutine threshold cell. The emit methods never fail: a
// scope with no threshold and no process default logs everything, with the
// unfiltered "*" marker in the output.
type Scope struct {
	logger     *Logger
	name       string
	level      Level
	configured bool
}

// Name returns the scope name written into each log line.
func (s *Scope) Name() string {
	return s.name
}

// Level returns the active threshold and whether one is set.
func (s *Scope) Level() (Level, bool) {
	return s.level, s.configured
}

// Configure sets the scope's threshold from a severity label,
// case-insensitively. An empty label falls back to the logger's process-wide
// default and fails with ErrNoLevel if there is none; an unknown label fails
// with ErrInvalidLevel. Configuration errors are programmer mistakes and are
// never swallowed, unlike anything on the emit path.
func (s *Scope) Configure(label string) error {
	if label == "" {
		if !s.logger.hasDefault {
			return ErrNoLevel
		}
		s.level = s.logger.defLevel
		s.configured = true
		return nil
	}

	level, err := ParseLevel(label)
	if err != nil {
		return err
	}
	s.level = level
	s.configured = true
	return nil
}

// Debug logs a message at LevelDebug.
func (s *Scope) Debug(msg string) {
	s.write(LevelDebug, msg)
}

// Debugf logs a formatted message at LevelDebug.
// Arguments are handled in the manner of fmt.Printf.
func (s *Scope) Debugf(format string, args ...any) {
	s.write(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs a message at LevelInfo.
func (s *Scope) Info(msg string) {
	s.write(LevelInfo, msg)
}

// Infof logs a formatted message at LevelInfo.
// Arguments are handled in the manner of fmt.Printf.
func (s *Scope) Infof(format string, args ...any) {
	s.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a message at LevelWarn.
func (s *Scope) Warn(msg string) {
	s.write(LevelWarn, msg)
}

// Warnf logs a formatted message at LevelWarn.
// Arguments are handled in the manner of fmt.Printf.
func (s *Scope) Warnf(format string, args ...any) {
	s.write(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs a message at LevelError.
func (s *Scope) Error(msg string) {
	s.write(LevelError, msg)
}

// Errorf logs a formatted message at LevelError.
// Arguments are handled in the manner of fmt.Printf.
func (s *Scope) Errorf(format string, args ...any) {
	s.write(LevelError, fmt.Sprintf(format, args...))
}

// write applies the filtering policy and emits one line.
//
// A scope with no threshold self-configures from the process default on first
// use; the captured value is sticky, later defaults are never observed. With
// no default either, everything passes and the line carries the "*" marker.
func (s *Scope) write(level Level, msg string) {
	if !s.configured && s.logger.hasDefault {
		_ = s.Configure("")
	}

	if s.configured && level < s.level {
		return
	}

	marker := ""
	if !s.configured {
		marker = "*"
	}

	// Fixed field order; absent marker and caller tag stay as empty fields,
	// so the space separation is stable.
	fmt.Fprintf(s.logger.out, "%s %s %s %s %s %s\n",
		s.logger.now().Format(timeLayout), s.name, marker, level, callerTag(), msg)
}
