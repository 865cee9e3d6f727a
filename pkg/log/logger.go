// Package log provides structured logging for the kiket CLI. Output goes
// to stderr so it never interferes with command output on stdout.
package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging interface used across kiket components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithField(key string, value interface{}) Logger
	SetLevel(level Level)
}

type baseLogger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	fields []Field
}

// NewLogger returns a logger writing to stderr at info level.
func NewLogger() Logger {
	return &baseLogger{out: os.Stderr, level: InfoLevel}
}

// NewLoggerTo returns a logger writing to the given writer, used in tests.
func NewLoggerTo(out io.Writer) Logger {
	return &baseLogger{out: out, level: InfoLevel}
}

func (l *baseLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *baseLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *baseLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *baseLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// WithField returns a logger that attaches the field to every entry.
func (l *baseLogger) WithField(key string, value interface{}) Logger {
	child := &baseLogger{out: l.out, level: l.level}
	child.fields = append(append(child.fields, l.fields...), Field{Key: key, Value: value})
	return child
}

// SetLevel adjusts the minimum level that will be written.
func (l *baseLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *baseLogger) log(level Level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	all := make([]Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Key < all[j].Key })

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", time.Now().Format(time.RFC3339), level, msg)
	for _, f := range all {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(l.out, b.String())
}
