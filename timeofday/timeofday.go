// File: timeofday.go
// Title: Time-of-Day Value
// Description: Implements Time, a wall-clock time without a date that carries
//              the pattern it renders with. Supports per-unit update with
//              wrap-around, matching, elapsed computation and the reference
//              clock queries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package timeofday

import (
	"fmt"
	"time"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/clock"
	"github.com/msto63/span/format"
	"github.com/msto63/span/internal/calendar"
	"github.com/msto63/span/internal/layout"
)

const context = "Time"

// Time is a time of day at second resolution. The zero value is midnight and
// renders with the process default time pattern.
type Time struct {
	clock  calendar.Clock
	layout *layout.Layout
}

// Parse parses text with an explicit pattern. The resulting Time keeps the
// pattern for String.
func Parse(text, pattern string) (Time, error) {
	l, err := layout.ForKind(pattern, layout.KindTime)
	if err != nil {
		return Time{}, spanerror.Annotate(err, context, "parse")
	}
	p, err := l.Parse(text)
	if err != nil {
		return Time{}, spanerror.Annotate(err, context, "parse")
	}
	return Time{clock: p.Clock(), layout: l}, nil
}

// Build parses text with the time pattern of cfg, or of format.Default when
// cfg is nil.
func Build(text string, cfg *format.Config) (Time, error) {
	return Parse(text, format.Resolve(cfg).TimeFormat())
}

// New returns the time hour:minute:second using the default pattern.
func New(hour, minute, second int) (Time, error) {
	if !calendar.ValidClock(hour, minute, second) {
		return Time{}, spanerror.Newf("no such time of day: %02d:%02d:%02d", hour, minute, second).
			WithCode(spanerror.CodeValueOutOfRange).
			WithContext(context).
			WithOperation("new")
	}
	return Time{clock: calendar.Clock{Hour: hour, Minute: minute, Second: second}}, nil
}

// FromTime takes the wall-clock fields of t in its own location.
func FromTime(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{clock: calendar.Clock{Hour: h, Minute: m, Second: s}}
}

// FromClock wraps already validated fields.
func FromClock(k calendar.Clock) Time {
	return Time{clock: k}
}

// Clock exposes the raw fields to sibling packages.
func (t Time) Clock() calendar.Clock {
	return t.clock
}

// WithFormat returns a copy of t that renders with pattern.
func (t Time) WithFormat(pattern string) (Time, error) {
	l, err := layout.ForKind(pattern, layout.KindTime)
	if err != nil {
		return t, spanerror.Annotate(err, context, "format")
	}
	t.layout = l
	return t, nil
}

// Format returns the pattern t renders with.
func (t Time) Format() string {
	return t.resolved().Pattern()
}

func (t Time) resolved() *layout.Layout {
	if t.layout != nil {
		return t.layout
	}
	if l, err := layout.ForKind(format.Default().TimeFormat(), layout.KindTime); err == nil {
		return l
	}
	return layout.MustCompile(format.DefaultTimeFormat)
}

func (t Time) Hour() int   { return t.clock.Hour }
func (t Time) Minute() int { return t.clock.Minute }
func (t Time) Second() int { return t.clock.Second }

// Get returns the field selected by unit.
func (t Time) Get(unit Unit) int {
	switch unit {
	case Hour:
		return t.clock.Hour
	case Minute:
		return t.clock.Minute
	case Second:
		return t.clock.Second
	default:
		panic(fmt.Sprintf("timeofday: unknown unit %d", int(unit)))
	}
}

// SecondsOfDay returns the number of seconds since midnight.
func (t Time) SecondsOfDay() int64 {
	return t.clock.Seconds()
}

// Update moves t by delta units in place and returns the result. Overflow
// wraps around midnight; there is no day to carry into, so Update never fails.
func (t *Time) Update(unit Unit, delta int) Time {
	t.clock, _ = t.clock.AddUnits(int64(delta), unit.seconds())
	return *t
}

// Next is Update(unit, 1).
func (t *Time) Next(unit Unit) Time {
	return t.Update(unit, 1)
}

// Matches reports whether the field selected by unit equals value.
func (t Time) Matches(unit Unit, value int) bool {
	return t.Get(unit) == value
}

// ClearUnit returns a copy of t with the field selected by unit set to zero.
func (t Time) ClearUnit(unit Unit) Time {
	switch unit {
	case Hour:
		t.clock.Hour = 0
	case Minute:
		t.clock.Minute = 0
	case Second:
		t.clock.Second = 0
	default:
		panic(fmt.Sprintf("timeofday: unknown unit %d", int(unit)))
	}
	return t
}

// Elapsed returns t - other within a single day, between -23:59:59 and +23:59:59.
func (t Time) Elapsed(other Time) time.Duration {
	return calendar.Duration(t.clock.Seconds() - other.clock.Seconds())
}

// UnitElapsed returns the number of complete units between other and t,
// truncated toward zero.
func (t Time) UnitElapsed(unit Unit, other Time) int64 {
	return (t.clock.Seconds() - other.clock.Seconds()) / unit.seconds()
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after other. The pattern takes no part in comparison.
func (t Time) Compare(other Time) int {
	return t.clock.Compare(other.clock)
}

func (t Time) Before(other Time) bool { return t.Compare(other) < 0 }
func (t Time) After(other Time) bool  { return t.Compare(other) > 0 }
func (t Time) Equal(other Time) bool  { return t.Compare(other) == 0 }

// String renders t with its pattern.
func (t Time) String() string {
	return t.resolved().Format(calendar.Civil{Year: 1970, Month: 1, Day: 1}, t.clock)
}

// Now returns the current time of day from the default clock.
func Now() (Time, error) {
	return NowFrom(nil)
}

// NowFrom returns the current time of day read from c (the default clock when
// nil), rendered with the default pattern.
func NowFrom(c clock.Clock) (Time, error) {
	now, err := clock.Read(c)
	if err != nil {
		return Time{}, spanerror.Annotate(err, context, "now")
	}
	return FromTime(now), nil
}

// IsInFuture reports whether t is later in the day than the current time of
// the default clock.
func (t Time) IsInFuture() (bool, error) {
	return t.IsInFutureAt(nil)
}

// IsInFutureAt is IsInFuture against c. Only the time of day is compared.
func (t Time) IsInFutureAt(c clock.Clock) (bool, error) {
	now, err := NowFrom(c)
	if err != nil {
		return false, spanerror.Annotate(err, context, "is_in_future")
	}
	return t.After(now), nil
}
