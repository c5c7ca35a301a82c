package date

import (
	"strings"

	spanerror "github.com/msto63/span/core/error"
)

// Unit selects a field of a Date.
type Unit int

const (
	Year Unit = iota
	Month
	Day
)

var unitNames = [...]string{"year", "month", "day"}

// Units lists every Unit from largest to smallest.
func Units() []Unit {
	return []Unit{Year, Month, Day}
}

func (u Unit) String() string {
	if u < Year || u > Day {
		return "unknown"
	}
	return unitNames[u]
}

// ParseUnit resolves a unit name, case-insensitively.
func ParseUnit(name string) (Unit, error) {
	for i, n := range unitNames {
		if strings.EqualFold(name, n) {
			return Unit(i), nil
		}
	}
	return 0, spanerror.Newf("unknown date unit %q", name).
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
