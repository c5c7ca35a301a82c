// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation such as an NTP query or a
//              config load took and logs it on completion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first call
// logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError is Stop for a failed operation, logged at error level.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{"operation": t.operation})
	if err != nil {
		t.logger.logDuration(LevelError, t.operation+" failed", err, elapsed, fields)
	} else {
		t.logger.logDuration(t.level, t.operation+" completed", nil, elapsed, fields)
	}
	return elapsed
}
