// File: parse.go
// Title: Strict Pattern Parsing
// Description: Matches input text against a compiled layout, decoding numeric
//              fields and validating each against its legal range. Cross-field
//              checks (day against month length, day-of-year agreement) happen
//              when the parsed fields are resolved into a date or clock.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package layout

import (
	"fmt"
	"strconv"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/internal/calendar"
)

// Parsed holds the raw fields decoded from text.
type Parsed struct {
	Year    int
	Month   int
	Day     int
	Ordinal int
	Hour    int
	Minute  int
	Second  int

	set     Field
	text    string
	pattern string
}

// Set reports which fields were present in the input.
func (p Parsed) Set() Field {
	return p.set
}

type bounds struct {
	min, max int
	expected string
}

var fieldBounds = map[Field]bounds{
	FieldMonth:   {1, 12, "1-12"},
	FieldDay:     {1, 31, "1-31"},
	FieldOrdinal: {1, 366, "001-366"},
	FieldHour:    {0, 23, "0-23"},
	FieldMinute:  {0, 59, "0-59"},
	FieldSecond:  {0, 59, "0-59"},
}

var fieldWidth = map[Field]int{
	FieldShortYear: 2,
	FieldMonth:     2,
	FieldDay:       2,
	FieldOrdinal:   3,
	FieldHour:      2,
	FieldMinute:    2,
	FieldSecond:    2,
}

// Parse matches text against the layout. The whole input must be consumed.
func (l *Layout) Parse(text string) (Parsed, error) {
	p := Parsed{text: text, pattern: l.pattern}
	pos := 0

	for i, it := range l.items {
		if it.field == 0 {
			if len(text)-pos < len(it.lit) || text[pos:pos+len(it.lit)] != it.lit {
				return Parsed{}, p.mismatch(pos, fmt.Sprintf("expected %q", it.lit))
			}
			pos += len(it.lit)
			continue
		}

		var (
			n   int
			end int
			err error
		)
		if it.field == FieldYear {
			n, end, err = p.scanYear(pos, l.reserveAfter(i))
		} else {
			n, end, err = p.scanDigits(pos, fieldWidth[it.field], it.field)
		}
		if err != nil {
			return Parsed{}, err
		}
		if err := p.store(it.field, n, pos); err != nil {
			return Parsed{}, err
		}
		pos = end
	}

	if pos != len(text) {
		return Parsed{}, p.mismatch(pos, "trailing input")
	}
	return p, nil
}

func (p *Parsed) scanDigits(pos, width int, f Field) (int, int, error) {
	end := pos + width
	if end > len(p.text) {
		return 0, 0, p.mismatch(pos, fmt.Sprintf("input is not enough for the %s", f))
	}
	for i := pos; i < end; i++ {
		if p.text[i] < '0' || p.text[i] > '9' {
			return 0, 0, p.mismatch(i, fmt.Sprintf("expected %d digits for the %s", width, f))
		}
	}
	n, _ := strconv.Atoi(p.text[pos:end])
	return n, end, nil
}

// reserveAfter returns the number of digits the fixed-width fields directly
// following item i occupy. A signed year leaves them unread.
func (l *Layout) reserveAfter(i int) int {
	n := 0
	for _, next := range l.items[i+1:] {
		w, ok := fieldWidth[next.field]
		if !ok {
			break
		}
		n += w
	}
	return n
}

// scanYear reads four digits, or a sign followed by at least four digits.
// The last reserve digits of a signed year belong to the fields after it.
func (p *Parsed) scanYear(pos, reserve int) (int, int, error) {
	if pos < len(p.text) && (p.text[pos] == '+' || p.text[pos] == '-') {
		end := pos + 1
		for end < len(p.text) && p.text[end] >= '0' && p.text[end] <= '9' {
			end++
		}
		digits := end - pos - 1 - reserve
		if digits < 4 {
			return 0, 0, p.mismatch(pos, "expected at least 4 digits after the year sign")
		}
		end = pos + 1 + digits
		n, err := strconv.Atoi(p.text[pos:end])
		if err != nil || n > calendar.MaxYear || n < calendar.MinYear {
			return 0, 0, p.outOfRange(FieldYear, p.text[pos:end],
				fmt.Sprintf("%d to %+d", calendar.MinYear, calendar.MaxYear))
		}
		return n, end, nil
	}
	return p.scanDigits(pos, 4, FieldYear)
}

func (p *Parsed) store(f Field, n, pos int) error {
	if b, ok := fieldBounds[f]; ok && (n < b.min || n > b.max) {
		return p.outOfRange(f, strconv.Itoa(n), b.expected)
	}

	var dst *int
	switch f {
	case FieldYear:
		dst = &p.Year
	case FieldShortYear:
		if n < 69 {
			n += 2000
		} else {
			n += 1900
		}
		f, dst = FieldYear, &p.Year
	case FieldMonth:
		dst = &p.Month
	case FieldDay:
		dst = &p.Day
	case FieldOrdinal:
		dst = &p.Ordinal
	case FieldHour:
		dst = &p.Hour
	case FieldMinute:
		dst = &p.Minute
	case FieldSecond:
		dst = &p.Second
	}

	if p.set&f != 0 && *dst != n {
		return p.conflict(f, *dst, n)
	}
	*dst = n
	p.set |= f
	return nil
}

// Civil resolves the date fields, checking the day against the real month
// length and day-of-year agreement.
func (p Parsed) Civil() (calendar.Civil, error) {
	c := calendar.Civil{Year: p.Year, Month: p.Month, Day: p.Day}

	if p.set&FieldOrdinal != 0 {
		m, d, ok := calendar.FromOrdinal(p.Year, p.Ordinal)
		if !ok {
			return calendar.Civil{}, p.outOfRange(FieldOrdinal, strconv.Itoa(p.Ordinal),
				fmt.Sprintf("001-%03d", calendar.DaysInYear(p.Year)))
		}
		if p.set&FieldMonth != 0 && p.Month != m {
			return calendar.Civil{}, p.conflict(FieldMonth, m, p.Month)
		}
		if p.set&FieldDay != 0 && p.Day != d {
			return calendar.Civil{}, p.conflict(FieldDay, d, p.Day)
		}
		c.Month, c.Day = m, d
	}

	if c.Month < 1 || c.Month > 12 {
		return calendar.Civil{}, p.outOfRange(FieldMonth, strconv.Itoa(c.Month), "1-12")
	}
	if !calendar.ValidDate(c.Year, c.Month, c.Day) {
		return calendar.Civil{}, p.outOfRange(FieldDay, strconv.Itoa(c.Day),
			fmt.Sprintf("1-%d", calendar.DaysIn(c.Year, c.Month)))
	}
	return c, nil
}

// Clock returns the time-of-day fields. Each was range checked while parsing;
// a missing second defaults to zero.
func (p Parsed) Clock() calendar.Clock {
	return calendar.Clock{Hour: p.Hour, Minute: p.Minute, Second: p.Second}
}

func (p *Parsed) mismatch(pos int, message string) *spanerror.Error {
	found := "end of input"
	if pos < len(p.text) {
		found = strconv.Quote(p.text[pos : pos+1])
	}
	return spanerror.Newf("input does not match format: %s at offset %d, found %s", message, pos, found).
		WithCode(spanerror.CodeParseFailed).
		WithOperation("parse").
		WithDetail("input", p.text).
		WithDetail("pattern", p.pattern).
		WithDetail("offset", pos)
}

func (p *Parsed) outOfRange(f Field, got, expected string) *spanerror.Error {
	return spanerror.Newf("input is out of range: %s %s (expected %s)", f, got, expected).
		WithCode(spanerror.CodeValueOutOfRange).
		WithOperation("parse").
		WithDetail("input", p.text).
		WithDetail("pattern", p.pattern).
		WithDetail("field", f.String()).
		WithDetail("expected", expected)
}

func (p *Parsed) conflict(f Field, first, second int) *spanerror.Error {
	return spanerror.Newf("input is inconsistent: %s given as %d and %d", f, first, second).
		WithCode(spanerror.CodeParseFailed).
		WithOperation("parse").
		WithDetail("input", p.text).
		WithDetail("pattern", p.pattern).
		WithDetail("field", f.String())
}
