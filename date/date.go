// File: date.go
// Title: Calendar Date Value
// Description: Implements Date, a proleptic Gregorian calendar day that
//              carries the pattern it renders with. Month and year updates
//              clamp the day to the target month, day updates carry across
//              month and year boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package date

import (
	"time"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/clock"
	"github.com/msto63/span/format"
	"github.com/msto63/span/internal/calendar"
	"github.com/msto63/span/internal/layout"
)

const context = "Date"

var epoch = calendar.Civil{Year: 1970, Month: 1, Day: 1}

// Date is a calendar day. The zero value is 1970-01-01 and renders with the
// process default date pattern.
type Date struct {
	civil  calendar.Civil
	layout *layout.Layout
}

// Parse parses text with an explicit pattern. The resulting Date keeps the
// pattern for String.
func Parse(text, pattern string) (Date, error) {
	l, err := layout.ForKind(pattern, layout.KindDate)
	if err != nil {
		return Date{}, spanerror.Annotate(err, context, "parse")
	}
	p, err := l.Parse(text)
	if err != nil {
		return Date{}, spanerror.Annotate(err, context, "parse")
	}
	c, err := p.Civil()
	if err != nil {
		return Date{}, spanerror.Annotate(err, context, "parse")
	}
	return Date{civil: c, layout: l}, nil
}

// Build parses text with the date pattern of cfg, or of format.Default when
// cfg is nil.
func Build(text string, cfg *format.Config) (Date, error) {
	return Parse(text, format.Resolve(cfg).DateFormat())
}

// New returns the given day using the default pattern.
func New(year, month, day int) (Date, error) {
	if year > calendar.MaxYear || year < calendar.MinYear || !calendar.ValidDate(year, month, day) {
		return Date{}, spanerror.Newf("no such date: %04d-%02d-%02d", year, month, day).
			WithCode(spanerror.CodeValueOutOfRange).
			WithContext(context).
			WithOperation("new")
	}
	return Date{civil: calendar.Civil{Year: year, Month: month, Day: day}}, nil
}

// FromTime takes the calendar day of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{civil: calendar.Civil{Year: y, Month: int(m), Day: d}}
}

// FromCivil wraps already validated fields.
func FromCivil(c calendar.Civil) Date {
	return Date{civil: c}
}

// Civil exposes the raw fields to sibling packages.
func (d Date) Civil() calendar.Civil {
	if d.civil.Month == 0 {
		return epoch
	}
	return d.civil
}

// WithFormat returns a copy of d that renders with pattern.
func (d Date) WithFormat(pattern string) (Date, error) {
	l, err := layout.ForKind(pattern, layout.KindDate)
	if err != nil {
		return d, spanerror.Annotate(err, context, "format")
	}
	d.layout = l
	return d, nil
}

// Format returns the pattern d renders with.
func (d Date) Format() string {
	return d.resolved().Pattern()
}

func (d Date) resolved() *layout.Layout {
	if d.layout != nil {
		return d.layout
	}
	if l, err := layout.ForKind(format.Default().DateFormat(), layout.KindDate); err == nil {
		return l
	}
	return layout.MustCompile(format.DefaultDateFormat)
}

func (d Date) Year() int  { return d.Civil().Year }
func (d Date) Month() int { return d.Civil().Month }
func (d Date) Day() int   { return d.Civil().Day }

// YearDay returns the day of the year, 1 to 366.
func (d Date) YearDay() int {
	return d.Civil().Ordinal()
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((d.Civil().Days()%7 + 11) % 7)
}

// Get returns the field selected by unit.
func (d Date) Get(unit Unit) int {
	c := d.Civil()
	switch unit {
	case Year:
		return c.Year
	case Month:
		return c.Month
	case Day:
		return c.Day
	default:
		panic("date: unknown unit " + unit.String())
	}
}

// Update moves d by delta units in place and returns the result. Month and
// year steps clamp the day to the last day of the target month; the clamp is
// not undone by a later opposite step. A result outside the supported year
// range is reported as INVALID_UPDATE and leaves d unchanged.
func (d *Date) Update(unit Unit, delta int) (Date, error) {
	c := d.Civil()
	var (
		next calendar.Civil
		ok   bool
	)
	switch unit {
	case Year:
		next, ok = c.AddYears(int64(delta))
	case Month:
		next, ok = c.AddMonths(int64(delta))
	case Day:
		next, ok = c.AddDays(int64(delta))
	default:
		panic("date: unknown unit " + unit.String())
	}
	if !ok {
		return *d, spanerror.Newf("cannot move %s by %d %s: year out of range", d, delta, unit).
			WithCode(spanerror.CodeInvalidUpdate).
			WithContext(context).
			WithOperation("update").
			WithDetail("unit", unit.String()).
			WithDetail("delta", delta)
	}
	d.civil = next
	return *d, nil
}

// Next is Update(unit, 1).
func (d *Date) Next(unit Unit) (Date, error) {
	return d.Update(unit, 1)
}

// Matches reports whether the field selected by unit equals value.
func (d Date) Matches(unit Unit, value int) bool {
	return d.Get(unit) == value
}

// ClearUnit returns a copy of d with the field selected by unit reset: the
// year to 1970, the month or day to 1. The day is clamped when clearing the
// year of a leap day.
func (d Date) ClearUnit(unit Unit) Date {
	c := d.Civil()
	switch unit {
	case Year:
		c.Year = epoch.Year
	case Month:
		c.Month = 1
	case Day:
		c.Day = 1
	default:
		panic("date: unknown unit " + unit.String())
	}
	if last := calendar.DaysIn(c.Year, c.Month); c.Day > last {
		c.Day = last
	}
	d.civil = c
	return d
}

// Elapsed returns the whole days between other and d as a duration, negative
// when d is earlier.
func (d Date) Elapsed(other Date) time.Duration {
	return calendar.Duration(d.days(other) * calendar.SecondsPerDay)
}

// UnitElapsed returns the number of complete units from other to d, truncated
// toward zero. A month is complete once the day of month has caught up.
func (d Date) UnitElapsed(unit Unit, other Date) int64 {
	switch unit {
	case Year:
		return d.months(other) / 12
	case Month:
		return d.months(other)
	case Day:
		return d.days(other)
	default:
		panic("date: unknown unit " + unit.String())
	}
}

func (d Date) days(other Date) int64 {
	return d.Civil().Days() - other.Civil().Days()
}

func (d Date) months(other Date) int64 {
	a, b := other.Civil(), d.Civil()
	return calendar.MonthsBetween(a, int64(a.Day), b, int64(b.Day))
}

// Compare returns -1, 0 or +1. The pattern takes no part in comparison.
func (d Date) Compare(other Date) int {
	return d.Civil().Compare(other.Civil())
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// String renders d with its pattern.
func (d Date) String() string {
	return d.resolved().Format(d.Civil(), calendar.Clock{})
}

// Now returns today's date from the default clock.
func Now() (Date, error) {
	return NowFrom(nil)
}

// NowFrom returns today's date read from c (the default clock when nil).
func NowFrom(c clock.Clock) (Date, error) {
	now, err := clock.Read(c)
	if err != nil {
		return Date{}, spanerror.Annotate(err, context, "now")
	}
	return FromTime(now), nil
}

// IsInFuture reports whether d is after today.
func (d Date) IsInFuture() (bool, error) {
	return d.IsInFutureAt(nil)
}

// IsInFutureAt is IsInFuture against c. Only the calendar day is compared.
func (d Date) IsInFutureAt(c clock.Clock) (bool, error) {
	today, err := NowFrom(c)
	if err != nil {
		return false, spanerror.Annotate(err, context, "is_in_future")
	}
	return d.After(today), nil
}
