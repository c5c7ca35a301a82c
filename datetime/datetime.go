// File: datetime.go
// Title: Combined Date and Time Value
// Description: Implements DateTime, a calendar day plus a time of day that
//              carries the pattern it renders with. Updates of any unit carry
//              through the whole field chain, from seconds up to years.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package datetime

import (
	"time"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/clock"
	"github.com/msto63/span/date"
	"github.com/msto63/span/format"
	"github.com/msto63/span/internal/calendar"
	"github.com/msto63/span/internal/layout"
	"github.com/msto63/span/timeofday"
)

const context = "DateTime"

var epoch = calendar.Civil{Year: 1970, Month: 1, Day: 1}

// DateTime is a calendar day and a time of day without zone. The zero value is
// 1970-01-01 00:00:00 and renders with the process default datetime pattern.
type DateTime struct {
	civil  calendar.Civil
	clock  calendar.Clock
	layout *layout.Layout
}

// Parse parses text with an explicit pattern. The resulting DateTime keeps the
// pattern for String.
func Parse(text, pattern string) (DateTime, error) {
	l, err := layout.ForKind(pattern, layout.KindDateTime)
	if err != nil {
		return DateTime{}, spanerror.Annotate(err, context, "parse")
	}
	p, err := l.Parse(text)
	if err != nil {
		return DateTime{}, spanerror.Annotate(err, context, "parse")
	}
	c, err := p.Civil()
	if err != nil {
		return DateTime{}, spanerror.Annotate(err, context, "parse")
	}
	return DateTime{civil: c, clock: p.Clock(), layout: l}, nil
}

// Build parses text with the datetime pattern of cfg, or of format.Default
// when cfg is nil.
func Build(text string, cfg *format.Config) (DateTime, error) {
	return Parse(text, format.Resolve(cfg).DateTimeFormat())
}

// New returns the given instant using the default pattern.
func New(year, month, day, hour, minute, second int) (DateTime, error) {
	if year > calendar.MaxYear || year < calendar.MinYear ||
		!calendar.ValidDate(year, month, day) || !calendar.ValidClock(hour, minute, second) {
		return DateTime{}, spanerror.Newf("no such datetime: %04d-%02d-%02d %02d:%02d:%02d",
			year, month, day, hour, minute, second).
			WithCode(spanerror.CodeValueOutOfRange).
			WithContext(context).
			WithOperation("new")
	}
	return DateTime{
		civil: calendar.Civil{Year: year, Month: month, Day: day},
		clock: calendar.Clock{Hour: hour, Minute: minute, Second: second},
	}, nil
}

// FromTime takes the wall-clock fields of t in its own location. Sub-second
// precision is dropped.
func FromTime(t time.Time) DateTime {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return DateTime{
		civil: calendar.Civil{Year: y, Month: int(mo), Day: d},
		clock: calendar.Clock{Hour: h, Minute: mi, Second: s},
	}
}

// FromDate returns midnight of d.
func FromDate(d date.Date) DateTime {
	return DateTime{civil: d.Civil()}
}

// FromTimeOfDay returns t on 1970-01-01.
func FromTimeOfDay(t timeofday.Time) DateTime {
	return DateTime{civil: epoch, clock: t.Clock()}
}

// Combine joins a date and a time of day.
func Combine(d date.Date, t timeofday.Time) DateTime {
	return DateTime{civil: d.Civil(), clock: t.Clock()}
}

func (dt DateTime) fields() calendar.Civil {
	if dt.civil.Month == 0 {
		return epoch
	}
	return dt.civil
}

// WithFormat returns a copy of dt that renders with pattern.
func (dt DateTime) WithFormat(pattern string) (DateTime, error) {
	l, err := layout.ForKind(pattern, layout.KindDateTime)
	if err != nil {
		return dt, spanerror.Annotate(err, context, "format")
	}
	dt.layout = l
	return dt, nil
}

// Format returns the pattern dt renders with.
func (dt DateTime) Format() string {
	return dt.resolved().Pattern()
}

func (dt DateTime) resolved() *layout.Layout {
	if dt.layout != nil {
		return dt.layout
	}
	if l, err := layout.ForKind(format.Default().DateTimeFormat(), layout.KindDateTime); err == nil {
		return l
	}
	return layout.MustCompile(format.DefaultDateFormat + " " + format.DefaultTimeFormat)
}

func (dt DateTime) Year() int   { return dt.fields().Year }
func (dt DateTime) Month() int  { return dt.fields().Month }
func (dt DateTime) Day() int    { return dt.fields().Day }
func (dt DateTime) Hour() int   { return dt.clock.Hour }
func (dt DateTime) Minute() int { return dt.clock.Minute }
func (dt DateTime) Second() int { return dt.clock.Second }

// Date returns the calendar day of dt, rendered with the default date pattern.
func (dt DateTime) Date() date.Date {
	return date.FromCivil(dt.fields())
}

// Time returns the time of day of dt, rendered with the default time pattern.
func (dt DateTime) Time() timeofday.Time {
	return timeofday.FromClock(dt.clock)
}

// Get returns the field selected by unit.
func (dt DateTime) Get(unit Unit) int {
	c := dt.fields()
	switch unit {
	case Year:
		return c.Year
	case Month:
		return c.Month
	case Day:
		return c.Day
	case Hour:
		return dt.clock.Hour
	case Minute:
		return dt.clock.Minute
	case Second:
		return dt.clock.Second
	default:
		panic("datetime: unknown unit " + unit.String())
	}
}

// Update moves dt by delta units in place and returns the result. Time units
// carry into the day, days carry into month and year, and month or year steps
// clamp the day to the target month. A result outside the supported year range
// is reported as INVALID_UPDATE and leaves dt unchanged.
func (dt *DateTime) Update(unit Unit, delta int) (DateTime, error) {
	c, k := dt.fields(), dt.clock
	ok := true
	switch unit {
	case Year:
		c, ok = c.AddYears(int64(delta))
	case Month:
		c, ok = c.AddMonths(int64(delta))
	case Day:
		c, ok = c.AddDays(int64(delta))
	case Hour, Minute, Second:
		var days int64
		k, days = k.AddUnits(int64(delta), unit.seconds())
		c, ok = c.AddDays(days)
	default:
		panic("datetime: unknown unit " + unit.String())
	}
	if !ok {
		return *dt, spanerror.Newf("cannot move %s by %d %s: year out of range", dt, delta, unit).
			WithCode(spanerror.CodeInvalidUpdate).
			WithContext(context).
			WithOperation("update").
			WithDetail("unit", unit.String()).
			WithDetail("delta", delta)
	}
	dt.civil, dt.clock = c, k
	return *dt, nil
}

// Next is Update(unit, 1).
func (dt *DateTime) Next(unit Unit) (DateTime, error) {
	return dt.Update(unit, 1)
}

// Matches reports whether the field selected by unit equals value.
func (dt DateTime) Matches(unit Unit, value int) bool {
	return dt.Get(unit) == value
}

// ClearUnit returns a copy of dt with the field selected by unit reset: the
// year to 1970, the month or day to 1, a time field to 0.
func (dt DateTime) ClearUnit(unit Unit) DateTime {
	c := dt.fields()
	switch unit {
	case Year:
		c.Year = epoch.Year
	case Month:
		c.Month = 1
	case Day:
		c.Day = 1
	case Hour:
		dt.clock.Hour = 0
	case Minute:
		dt.clock.Minute = 0
	case Second:
		dt.clock.Second = 0
	default:
		panic("datetime: unknown unit " + unit.String())
	}
	if last := calendar.DaysIn(c.Year, c.Month); c.Day > last {
		c.Day = last
	}
	dt.civil = c
	return dt
}

// ClearTime returns a copy of dt at midnight.
func (dt DateTime) ClearTime() DateTime {
	dt.clock = calendar.Clock{}
	return dt
}

// Elapsed returns the exact signed duration dt - other at second resolution.
// Durations beyond the range of time.Duration saturate.
func (dt DateTime) Elapsed(other DateTime) time.Duration {
	return calendar.Duration(dt.seconds(other))
}

// UnitElapsed returns the number of complete units from other to dt, truncated
// toward zero. Years and months follow the calendar: a month is complete once
// the day and time of day have caught up. Smaller units divide the exact
// elapsed seconds.
func (dt DateTime) UnitElapsed(unit Unit, other DateTime) int64 {
	switch unit {
	case Year:
		return dt.months(other) / 12
	case Month:
		return dt.months(other)
	case Day, Hour, Minute, Second:
		return dt.seconds(other) / unit.seconds()
	default:
		panic("datetime: unknown unit " + unit.String())
	}
}

func (dt DateTime) seconds(other DateTime) int64 {
	days := dt.fields().Days() - other.fields().Days()
	return days*calendar.SecondsPerDay + dt.clock.Seconds() - other.clock.Seconds()
}

func (dt DateTime) months(other DateTime) int64 {
	a, b := other.fields(), dt.fields()
	return calendar.MonthsBetween(a, other.rest(), b, dt.rest())
}

func (dt DateTime) rest() int64 {
	return int64(dt.fields().Day)*calendar.SecondsPerDay + dt.clock.Seconds()
}

// Compare returns -1, 0 or +1. The pattern takes no part in comparison.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.fields().Compare(other.fields()); c != 0 {
		return c
	}
	return dt.clock.Compare(other.clock)
}

func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }
func (dt DateTime) After(other DateTime) bool  { return dt.Compare(other) > 0 }
func (dt DateTime) Equal(other DateTime) bool  { return dt.Compare(other) == 0 }

// String renders dt with its pattern.
func (dt DateTime) String() string {
	return dt.resolved().Format(dt.fields(), dt.clock)
}

// Now returns the current instant from the default clock.
func Now() (DateTime, error) {
	return NowFrom(nil)
}

// NowFrom returns the current instant read from c (the default clock when
// nil), in the clock's location.
func NowFrom(c clock.Clock) (DateTime, error) {
	now, err := clock.Read(c)
	if err != nil {
		return DateTime{}, spanerror.Annotate(err, context, "now")
	}
	return FromTime(now), nil
}

// IsInFuture reports whether dt is after the current instant.
func (dt DateTime) IsInFuture() (bool, error) {
	return dt.IsInFutureAt(nil)
}

// IsInFutureAt is IsInFuture against c.
func (dt DateTime) IsInFutureAt(c clock.Clock) (bool, error) {
	now, err := NowFrom(c)
	if err != nil {
		return false, spanerror.Annotate(err, context, "is_in_future")
	}
	return dt.After(now), nil
}
