// Package calendar implements the proleptic Gregorian field arithmetic shared by
// the timeofday, date and datetime packages: bounds, rollover and day numbers.
//
// Functions operate on plain field tuples. Callers validate input ranges before
// handing values over; arithmetic reports leaving the supported year range
// through an ok result instead of wrapping.
package calendar

import (
	"math"
	"time"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

// Supported year range. Arithmetic leaving it reports !ok instead of wrapping.
const (
	MaxYear = 1_000_000_000
	MinYear = -MaxYear

	maxDaySpan   = 366 * (MaxYear - MinYear)
	maxMonthSpan = 12 * (MaxYear - MinYear)
)

// Civil is a calendar day.
type Civil struct {
	Year  int
	Month int
	Day   int
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in month of year. month must be 1..12.
func DaysIn(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// ValidDate reports whether the tuple names an existing calendar day.
func ValidDate(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= DaysIn(year, month)
}

// ValidClock reports whether the tuple is a valid time of day.
func ValidClock(hour, minute, second int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 && second >= 0 && second <= 59
}

// FromOrdinal converts a 1-based day of year into month and day.
func FromOrdinal(year, ordinal int) (month, day int, ok bool) {
	if ordinal < 1 || ordinal > DaysInYear(year) {
		return 0, 0, false
	}
	month = 1
	for ordinal > DaysIn(year, month) {
		ordinal -= DaysIn(year, month)
		month++
	}
	return month, ordinal, true
}

// Ordinal returns the 1-based day of year.
func (c Civil) Ordinal() int {
	n := c.Day
	for m := 1; m < c.Month; m++ {
		n += DaysIn(c.Year, m)
	}
	return n
}

// Days returns the number of days since 1970-01-01 (negative before).
// Day counting is delegated to the standard library calendar.
func (c Civil) Days() int64 {
	t := time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, time.UTC)
	return floorDiv(t.Unix(), SecondsPerDay)
}

// FromDays is the inverse of Civil.Days.
func FromDays(days int64) Civil {
	y, m, d := time.Unix(days*SecondsPerDay, 0).UTC().Date()
	return Civil{Year: y, Month: int(m), Day: d}
}

// AddDays moves c by n days, carrying into month and year. ok is false when
// the result leaves the supported year range.
func (c Civil) AddDays(n int64) (Civil, bool) {
	if n == 0 {
		return c, true
	}
	if n > maxDaySpan || n < -maxDaySpan {
		return c, false
	}
	r := FromDays(c.Days() + n)
	if r.Year > MaxYear || r.Year < MinYear {
		return c, false
	}
	return r, true
}

// AddMonths moves c by n months, carrying into year. The day is clamped to
// the last day of the target month when it would otherwise overflow.
func (c Civil) AddMonths(n int64) (Civil, bool) {
	if n > maxMonthSpan || n < -maxMonthSpan {
		return c, false
	}
	total := int64(c.Year)*12 + int64(c.Month-1) + n
	year := floorDiv(total, 12)
	if year > MaxYear || year < MinYear {
		return c, false
	}
	month := int(total-year*12) + 1
	day := c.Day
	if last := DaysIn(int(year), month); day > last {
		day = last
	}
	return Civil{Year: int(year), Month: month, Day: day}, true
}

// AddYears moves c by n years with the same clamp as AddMonths (Feb 29 on a
// non-leap target year becomes Feb 28).
func (c Civil) AddYears(n int64) (Civil, bool) {
	if n > MaxYear-MinYear || n < MinYear-MaxYear {
		return c, false
	}
	return c.AddMonths(n * 12)
}

// Compare returns -1, 0 or +1.
func (c Civil) Compare(o Civil) int {
	switch {
	case c.Year != o.Year:
		return sign(c.Year - o.Year)
	case c.Month != o.Month:
		return sign(c.Month - o.Month)
	default:
		return sign(c.Day - o.Day)
	}
}

// MonthsBetween returns the number of complete months from a to b, truncated
// toward zero. aRest and bRest order the positions inside their months (day
// of month and time of day folded into one number); a month counts only once
// b's rest has caught up with a's.
func MonthsBetween(a Civil, aRest int64, b Civil, bRest int64) int64 {
	n := int64(b.Year)*12 + int64(b.Month) - (int64(a.Year)*12 + int64(a.Month))
	switch {
	case n > 0 && bRest < aRest:
		n--
	case n < 0 && bRest > aRest:
		n++
	}
	return n
}

// Seconds returns the number of seconds since midnight.
func (k Clock) Seconds() int64 {
	return int64(k.Hour)*SecondsPerHour + int64(k.Minute)*SecondsPerMinute + int64(k.Second)
}

// ClockFromSeconds builds a Clock from seconds since midnight; s must be in [0, SecondsPerDay).
func ClockFromSeconds(s int64) Clock {
	return Clock{
		Hour:   int(s / SecondsPerHour),
		Minute: int(s % SecondsPerHour / SecondsPerMinute),
		Second: int(s % SecondsPerMinute),
	}
}

// Add moves k by delta seconds and returns the normalized clock together with
// the number of whole days carried out (negative when borrowing).
func (k Clock) Add(delta int64) (Clock, int64) {
	return k.AddUnits(delta, 1)
}

// AddUnits moves k by n units of unitSeconds each (1, 60 or 3600) without
// overflowing for any n, returning the days carried out.
func (k Clock) AddUnits(n, unitSeconds int64) (Clock, int64) {
	perDay := SecondsPerDay / unitSeconds
	days := floorDiv(n, perDay)
	rem := (n - days*perDay) * unitSeconds

	total := k.Seconds() + rem
	carry := total / SecondsPerDay
	return ClockFromSeconds(total - carry*SecondsPerDay), days + carry
}

// Compare returns -1, 0 or +1.
func (k Clock) Compare(o Clock) int {
	return sign64(k.Seconds() - o.Seconds())
}

// Duration converts seconds into a time.Duration, saturating at the
// representable bounds (about 292 years either way).
func Duration(seconds int64) time.Duration {
	const limit = math.MaxInt64 / int64(time.Second)
	switch {
	case seconds > limit:
		return time.Duration(math.MaxInt64)
	case seconds < -limit:
		return -time.Duration(math.MaxInt64)
	default:
		return time.Duration(seconds) * time.Second
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorDiv is floor division for callers outside the package.
func FloorDiv(a, b int64) int64 {
	return floorDiv(a, b)
}

func sign(n int) int {
	return sign64(int64(n))
}

func sign64(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
