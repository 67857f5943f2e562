// Package logging provides leveled logging over the standard log package.
package logging

import (
	"log"
	"strings"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps ERROR, WARN, INFO and DEBUG (any case) to a Level.
// Unknown names yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Logger writes "[LEVEL] [component] message" lines.
type Logger struct {
	level     Level
	component string
	out       *log.Logger
}

// New creates a logger writing to out at the given level.
func New(out *log.Logger, level Level) *Logger {
	return &Logger{level: level, out: out}
}

// With returns a logger tagging every line with component.
func (l *Logger) With(component string) *Logger {
	c := *l
	c.component = component
	return &c
}

func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, "ERROR", format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, "WARN", format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, "INFO", format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, "DEBUG", format, args...) }

func (l *Logger) logf(level Level, tag, format string, args ...any) {
	if l == nil || l.level < level {
		return
	}
	prefix := "[" + tag + "] "
	if l.component != "" {
		prefix += "[" + l.component + "] "
	}
	l.out.Printf(prefix+format, args...)
}
