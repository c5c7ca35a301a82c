package datetime

import (
	"database/sql/driver"

	"gopkg.in/yaml.v3"

	"github.com/msto63/span/format"
	"github.com/msto63/span/internal/codec"
)

// MarshalText renders dt with its own pattern. It implements
// encoding.TextMarshaler, which also covers JSON and TOML encoding.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText parses text with the default datetime pattern.
func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := Build(string(text), format.Default())
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (dt DateTime) MarshalYAML() (interface{}, error) {
	return dt.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (dt *DateTime) UnmarshalYAML(node *yaml.Node) error {
	text, err := codec.YAMLScalar(node, context)
	if err != nil {
		return err
	}
	return dt.UnmarshalText([]byte(text))
}

// Value implements driver.Valuer; datetimes are stored as text.
func (dt DateTime) Value() (driver.Value, error) {
	return dt.String(), nil
}

// Scan implements sql.Scanner. A time.Time from the driver contributes its
// wall-clock fields in its own location.
func (dt *DateTime) Scan(src any) error {
	s, err := codec.FromSQL(src, context)
	if err != nil {
		return err
	}
	if s.IsTime {
		*dt = FromTime(s.Instant)
		return nil
	}
	return dt.UnmarshalText([]byte(s.Text))
}
