package emitter

import (
	"fmt"
	"log"
	"sync"
)

// LogLevel mirrors the four-tier severity scheme used elsewhere in this
// module's ambient stack; Logger is an optional collaborator a caller can
// attach to an Emitter to observe run progress without changing emission
// semantics.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarning
	LogInfo
	LogDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "ERROR"
	case LogWarning:
		return "WARN"
	case LogInfo:
		return "INFO"
	case LogDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// LogFormatter renders one log line.
type LogFormatter func(level LogLevel, format string, args ...interface{}) string

// DefaultLogFormatter renders "[LEVEL] message".
func DefaultLogFormatter(level LogLevel, format string, args ...interface{}) string {
	return fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Logger is a minimal leveled logger. A nil *Logger is valid and silently
// discards every call, so Emitter can hold one unconditionally without a
// nil check at every call site.
type Logger struct {
	mu        sync.Mutex
	level     LogLevel
	formatter LogFormatter
}

// NewLogger returns a Logger that emits everything at or above level.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level, formatter: DefaultLogFormatter}
}

// WithFormatter overrides the line formatter and returns the logger.
func (l *Logger) WithFormatter(f LogFormatter) *Logger {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
	return l
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if l == nil || level > l.level {
		return
	}
	l.mu.Lock()
	formatter := l.formatter
	l.mu.Unlock()
	if formatter == nil {
		formatter = DefaultLogFormatter
	}
	log.Print(formatter(level, format, args...))
}

// Errorf logs at LogError.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(LogError, format, args...) }

// Warnf logs at LogWarning.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(LogWarning, format, args...) }

// Infof logs at LogInfo.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(LogInfo, format, args...) }

// Debugf logs at LogDebug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(LogDebug, format, args...) }
