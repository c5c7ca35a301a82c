package date

import (
	"database/sql/driver"

	"gopkg.in/yaml.v3"

	"github.com/msto63/span/format"
	"github.com/msto63/span/internal/codec"
)

// MarshalText renders d with its own pattern. It implements
// encoding.TextMarshaler, which also covers JSON and TOML encoding.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses text with the default date pattern.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Build(string(text), format.Default())
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	text, err := codec.YAMLScalar(node, context)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(text))
}

// Value implements driver.Valuer; dates are stored as text.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. A time.Time from the driver contributes its
// calendar day.
func (d *Date) Scan(src any) error {
	s, err := codec.FromSQL(src, context)
	if err != nil {
		return err
	}
	if s.IsTime {
		*d = FromTime(s.Instant)
		return nil
	}
	return d.UnmarshalText([]byte(s.Text))
}
