// File: layout.go
// Title: strftime-style Pattern Compiler
// Description: Compiles format patterns such as "%Y-%m-%d %H:%M:%S" into a
//              sequence of directives and literals, and uses the compiled form
//              to parse text strictly and to render field tuples back to text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with Y/y/m/d/j/H/M/S/F/T directives

package layout

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/internal/calendar"
)

// Field is a bit set of the value fields a layout encodes.
type Field uint16

const (
	FieldYear Field = 1 << iota
	FieldShortYear
	FieldMonth
	FieldDay
	FieldOrdinal
	FieldHour
	FieldMinute
	FieldSecond
)

// DateFields and ClockFields group the directives by value family.
const (
	DateFields  = FieldYear | FieldShortYear | FieldMonth | FieldDay | FieldOrdinal
	ClockFields = FieldHour | FieldMinute | FieldSecond
)

var fieldNames = map[Field]string{
	FieldYear:      "year",
	FieldShortYear: "year",
	FieldMonth:     "month",
	FieldDay:       "day",
	FieldOrdinal:   "day of year",
	FieldHour:      "hour",
	FieldMinute:    "minute",
	FieldSecond:    "second",
}

// String returns the human name of a single field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", uint16(f))
}

// Kind selects which value family a layout is checked against.
type Kind int

const (
	KindTime Kind = iota
	KindDate
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "Time"
	case KindDate:
		return "Date"
	case KindDateTime:
		return "DateTime"
	default:
		return "unknown"
	}
}

type item struct {
	field Field // zero for literals
	lit   string
}

// Layout is an immutable compiled pattern, safe for concurrent use.
type Layout struct {
	pattern string
	items   []item
	fields  Field
}

// ForKind compiles pattern and checks it against kind in one step.
func ForKind(pattern string, kind Kind) (*Layout, error) {
	l, err := Compile(pattern)
	if err != nil {
		if e, ok := err.(*spanerror.Error); ok && e.Context() == "" {
			e.WithContext(kind.String())
		}
		return nil, err
	}
	if err := l.Check(kind); err != nil {
		return nil, err
	}
	return l, nil
}

// maxCachedLayouts bounds the layout cache. Patterns come from callers,
// config files and the command line; once full the cache starts over.
const maxCachedLayouts = 256

// Layout cache keyed by pattern
var (
	cache   = make(map[string]*Layout)
	cacheMu sync.RWMutex
)

// Compile compiles pattern, returning a cached Layout when the same pattern
// was compiled before. Unknown directives yield an INVALID_FORMAT error.
func Compile(pattern string) (*Layout, error) {
	cacheMu.RLock()
	if l, ok := cache[pattern]; ok {
		cacheMu.RUnlock()
		return l, nil
	}
	cacheMu.RUnlock()

	l, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	if len(cache) >= maxCachedLayouts {
		cache = make(map[string]*Layout)
	}
	cache[pattern] = l
	cacheMu.Unlock()
	return l, nil
}

// MustCompile is like Compile but panics on error. Meant for package-level constants.
func MustCompile(pattern string) *Layout {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

func compile(pattern string) (*Layout, error) {
	l := &Layout{pattern: pattern}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			l.items = append(l.items, item{lit: lit.String()})
			lit.Reset()
		}
	}
	add := func(fields ...Field) {
		flush()
		for i, f := range fields {
			if i > 0 {
				sep := "-"
				if f&ClockFields != 0 {
					sep = ":"
				}
				l.items = append(l.items, item{lit: sep})
			}
			l.items = append(l.items, item{field: f})
			l.fields |= f
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			return nil, formatError(pattern, "pattern ends with a lone '%'").
				WithDetail("offset", i)
		}
		i++
		switch d := pattern[i]; d {
		case 'Y':
			add(FieldYear)
		case 'y':
			add(FieldShortYear)
		case 'm':
			add(FieldMonth)
		case 'd':
			add(FieldDay)
		case 'j':
			add(FieldOrdinal)
		case 'H':
			add(FieldHour)
		case 'M':
			add(FieldMinute)
		case 'S':
			add(FieldSecond)
		case 'F':
			add(FieldYear, FieldMonth, FieldDay)
		case 'T':
			add(FieldHour, FieldMinute, FieldSecond)
		case '%':
			lit.WriteByte('%')
		case 'n':
			lit.WriteByte('\n')
		case 't':
			lit.WriteByte('\t')
		default:
			return nil, formatError(pattern, fmt.Sprintf("unsupported directive %%%c", d)).
				WithDetail("offset", i-1).
				WithDetail("directive", "%"+string(d))
		}
	}
	flush()
	return l, nil
}

// Pattern returns the source pattern.
func (l *Layout) Pattern() string {
	return l.pattern
}

// Fields returns the set of fields the layout encodes.
func (l *Layout) Fields() Field {
	return l.fields
}

// Has reports whether the layout encodes any of the given fields.
func (l *Layout) Has(f Field) bool {
	return l.fields&f != 0
}

// Check verifies that the layout can both parse and render a value of kind.
func (l *Layout) Check(kind Kind) error {
	needDate := kind == KindDate || kind == KindDateTime
	needClock := kind == KindTime || kind == KindDateTime

	if !needDate && l.Has(DateFields) {
		return formatError(l.pattern, fmt.Sprintf("a %s pattern cannot contain date directives", kind)).
			WithContext(kind.String())
	}
	if !needClock && l.Has(ClockFields) {
		return formatError(l.pattern, fmt.Sprintf("a %s pattern cannot contain time directives", kind)).
			WithContext(kind.String())
	}
	if needDate {
		if !l.Has(FieldYear | FieldShortYear) {
			return missing(l.pattern, kind, FieldYear)
		}
		if !l.Has(FieldOrdinal) {
			if !l.Has(FieldMonth) {
				return missing(l.pattern, kind, FieldMonth)
			}
			if !l.Has(FieldDay) {
				return missing(l.pattern, kind, FieldDay)
			}
		}
	}
	if needClock {
		if !l.Has(FieldHour) {
			return missing(l.pattern, kind, FieldHour)
		}
		if !l.Has(FieldMinute) {
			return missing(l.pattern, kind, FieldMinute)
		}
	}
	return nil
}

func missing(pattern string, kind Kind, f Field) *spanerror.Error {
	return formatError(pattern, fmt.Sprintf("pattern does not encode the %s of a %s", f, kind)).
		WithContext(kind.String()).
		WithDetail("field", f.String())
}

// Format renders the given fields. Fields the layout does not reference are ignored.
func (l *Layout) Format(c calendar.Civil, k calendar.Clock) string {
	var b strings.Builder
	b.Grow(len(l.pattern) + 8)
	for _, it := range l.items {
		switch it.field {
		case 0:
			b.WriteString(it.lit)
		case FieldYear:
			writeYear(&b, c.Year)
		case FieldShortYear:
			writePadded(&b, (c.Year%100+100)%100, 2)
		case FieldMonth:
			writePadded(&b, c.Month, 2)
		case FieldDay:
			writePadded(&b, c.Day, 2)
		case FieldOrdinal:
			writePadded(&b, c.Ordinal(), 3)
		case FieldHour:
			writePadded(&b, k.Hour, 2)
		case FieldMinute:
			writePadded(&b, k.Minute, 2)
		case FieldSecond:
			writePadded(&b, k.Second, 2)
		}
	}
	return b.String()
}

func writeYear(b *strings.Builder, year int) {
	switch {
	case year < 0:
		b.WriteByte('-')
		writePadded(b, -year, 4)
	case year > 9999:
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(year))
	default:
		writePadded(b, year, 4)
	}
}

func writePadded(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func formatError(pattern, message string) *spanerror.Error {
	return spanerror.New(message).
		WithCode(spanerror.CodeInvalidFormat).
		WithOperation("format").
		WithDetail("pattern", pattern)
}
