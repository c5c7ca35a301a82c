// Package clock supplies the reference "now" used by IsInFuture and Now on the
// span value types.
//
// A Clock may fail (an unreachable NTP server, for example); such failures are
// reported as CLOCK_UNAVAILABLE errors and never treated as "not in future".
package clock

import (
	"sync/atomic"
	"time"

	spanerror "github.com/msto63/span/core/error"
)

// Clock returns the current instant.
type Clock interface {
	Now() (time.Time, error)
}

// Func adapts a plain function to the Clock interface.
type Func func() (time.Time, error)

// Now calls f.
func (f Func) Now() (time.Time, error) {
	return f()
}

// System reads the operating system clock and converts it to Location.
// A nil Location means time.Local.
type System struct {
	Location *time.Location
}

// Now returns the system time in the configured location.
func (s System) Now() (time.Time, error) {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc), nil
}

// UTC is a System clock pinned to UTC.
var UTC = System{Location: time.UTC}

// Fixed always returns the same instant. Useful in tests.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() (time.Time, error) {
	return time.Time(f), nil
}

// Failing always fails with a clock error wrapping Err.
type Failing struct {
	Err error
}

// Now returns the configured error.
func (f Failing) Now() (time.Time, error) {
	return time.Time{}, Unavailable(f.Err, "clock source failed")
}

// Unavailable wraps err as a CLOCK_UNAVAILABLE error.
func Unavailable(err error, message string) *spanerror.Error {
	if err == nil {
		return spanerror.New(message).
			WithCode(spanerror.CodeClockUnavailable).
			WithOperation("now")
	}
	return spanerror.Wrap(err, message).
		WithCode(spanerror.CodeClockUnavailable).
		WithOperation("now")
}

type holder struct {
	c Clock
}

var defaultClock atomic.Pointer[holder]

func init() {
	defaultClock.Store(&holder{c: System{}})
}

// Default returns the process-wide clock (the local system clock unless replaced).
func Default() Clock {
	return defaultClock.Load().c
}

// SetDefault replaces the process-wide clock and returns the previous one.
// A nil clock restores the local system clock.
func SetDefault(c Clock) Clock {
	if c == nil {
		c = System{}
	}
	return defaultClock.Swap(&holder{c: c}).c
}

// Resolve returns c, or the process default when c is nil.
func Resolve(c Clock) Clock {
	if c == nil {
		return Default()
	}
	return c
}

// Read asks c (or the default) for the current instant, making sure any
// failure carries the clock error code.
func Read(c Clock) (time.Time, error) {
	now, err := Resolve(c).Now()
	if err != nil {
		if spanerror.IsClockError(err) {
			return time.Time{}, err
		}
		return time.Time{}, Unavailable(err, "cannot obtain current time")
	}
	return now, nil
}
