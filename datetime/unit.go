package datetime

import (
	"strings"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/internal/calendar"
)

// Unit selects a field of a DateTime.
type Unit int

const (
	Year Unit = iota
	Month
	Day
	Hour
	Minute
	Second
)

var unitNames = [...]string{"year", "month", "day", "hour", "minute", "second"}

// Units lists every Unit from largest to smallest.
func Units() []Unit {
	return []Unit{Year, Month, Day, Hour, Minute, Second}
}

func (u Unit) String() string {
	if u < Year || u > Second {
		return "unknown"
	}
	return unitNames[u]
}

// seconds is the fixed length of the unit; months and years have none.
func (u Unit) seconds() int64 {
	switch u {
	case Day:
		return calendar.SecondsPerDay
	case Hour:
		return calendar.SecondsPerHour
	case Minute:
		return calendar.SecondsPerMinute
	case Second:
		return 1
	default:
		panic("datetime: unit " + u.String() + " has no fixed length")
	}
}

// ParseUnit resolves a unit name, case-insensitively.
func ParseUnit(name string) (Unit, error) {
	for i, n := range unitNames {
		if strings.EqualFold(name, n) {
			return Unit(i), nil
		}
	}
	return 0, spanerror.Newf("unknown datetime unit %q", name).
		WithCode(spanerror.CodeInvalidInput).
		WithContext(context).
		WithOperation("unit")
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
