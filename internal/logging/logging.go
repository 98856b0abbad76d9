// Package logging provides a small leveled logger.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a logging verbosity level.
type Level int32

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// EnvLevel names the environment variable read by NewDefault.
const EnvLevel = "GRIDIO_LOG_LEVEL"

var levelNames = map[string]Level{
	"ERROR": LevelError,
	"WARN":  LevelWarn,
	"INFO":  LevelInfo,
	"DEBUG": LevelDebug,
	"TRACE": LevelTrace,
}

// ParseLevel parses a level name in any letter case.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelNames[strings.ToUpper(strings.TrimSpace(s))]
	return l, ok
}

// Logger provides leveled logging.
type Logger struct {
	level atomic.Int32
	out   *log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	l := &Logger{out: log.New(w, "", log.LstdFlags)}
	l.level.Store(int32(level))
	return l
}

// NewDefault creates a stderr logger at the level named by GRIDIO_LOG_LEVEL,
// WARN when unset or unknown.
func NewDefault() *Logger {
	level := LevelWarn
	if l, ok := ParseLevel(os.Getenv(EnvLevel)); ok {
		level = l
	}
	return New(os.Stderr, level)
}

// SetLevel changes the verbosity.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Level returns the current verbosity.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

func (l *Logger) logf(level Level, tag, format string, args ...interface{}) {
	if l.Level() >= level {
		l.out.Printf("["+tag+"] "+format, args...)
	}
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, "ERROR", format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, "WARN", format, args...)
}

// Info logs info messages.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, "INFO", format, args...)
}

// Debug logs debug messages.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, args...)
}

// Trace logs trace messages.
func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LevelTrace, "TRACE", format, args...)
}

// Default is the process-wide logger.
var Default = NewDefault()
