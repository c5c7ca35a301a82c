// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured output, derived
//              loggers with persistent fields, and severity-aware logging of
//              span errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	spanerror "github.com/msto63/span/core/error"
)

// Logger represents a structured logger. Derived loggers share the output.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields
	now       func() time.Time

	mutex sync.RWMutex
	// serializes writes to output across derived loggers
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
	// Now overrides the entry timestamp source; time.Now when nil
	Now func() time.Time
}

// New creates a new logger writing text at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatText})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    config.Output,
		name:      config.Name,
		fields:    make(Fields),
		now:       config.Now,
		writeMu:   &sync.Mutex{},
	}
	if logger.output == nil {
		logger.output = os.Stderr
	}
	if logger.now == nil {
		logger.now = time.Now
	}
	return logger
}

// WithLevel returns a copy with the minimum log level changed
func (l *Logger) WithLevel(level Level) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.level = level
	return clone
}

// WithName returns a copy with the logger name changed
func (l *Logger) WithName(name string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy that adds a persistent field to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy that adds persistent fields to all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	clone := l.clone()
	for k, v := range fields {
		clone.fields[k] = v
	}
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err at a level derived from its severity. span errors add
// their code, severity, value context, operation and details as fields.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var spanErr *spanerror.Error
	if !errors.As(err, &spanErr) {
		l.log(LevelError, err.Error(), err, fields...)
		return
	}

	extra := Fields{
		"error_code":     spanErr.Code().String(),
		"error_severity": spanErr.Severity().String(),
	}
	if spanErr.Context() != "" {
		extra["error_context"] = spanErr.Context()
	}
	if spanErr.Operation() != "" {
		extra["error_operation"] = spanErr.Operation()
	}
	for k, v := range spanErr.Details() {
		extra["error_"+k] = v
	}

	level := LevelError
	switch spanErr.Severity() {
	case spanerror.SeverityLow:
		level = LevelInfo
	case spanerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), nil, append(fields, extra)...)
}

// StartTimer creates and starts a new timer for operation
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel sets the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.logDuration(level, message, err, 0, fields...)
}

func (l *Logger) logDuration(level Level, message string, err error, d time.Duration, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Timestamp = l.now()
	entry.Logger = l.name
	entry.Error = err
	entry.Duration = d
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	formatter, output := l.formatter, l.output
	l.mutex.RUnlock()

	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.writeMu.Lock()
	output.Write(formatted)
	l.writeMu.Unlock()
}

// clone copies the logger; the caller holds at least a read lock
func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		fields:    make(Fields, len(l.fields)),
		now:       l.now,
		writeMu:   l.writeMu,
	}
	for k, v := range l.fields {
		clone.fields[k] = v
	}
	return clone
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
