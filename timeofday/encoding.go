package timeofday

import (
	"database/sql/driver"

	"gopkg.in/yaml.v3"

	"github.com/msto63/span/format"
	"github.com/msto63/span/internal/codec"
)

// MarshalText renders t with its own pattern. It implements
// encoding.TextMarshaler, which also covers JSON and TOML encoding.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses text with the default time pattern.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := Build(string(text), format.Default())
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Time) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	text, err := codec.YAMLScalar(node, context)
	if err != nil {
		return err
	}
	return t.UnmarshalText([]byte(text))
}

// Value implements driver.Valuer; times are stored as text.
func (t Time) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner. Text goes through UnmarshalText; a time.Time
// from the driver contributes its clock fields.
func (t *Time) Scan(src any) error {
	s, err := codec.FromSQL(src, context)
	if err != nil {
		return err
	}
	if s.IsTime {
		*t = FromTime(s.Instant)
		return nil
	}
	return t.UnmarshalText([]byte(s.Text))
}
