// Package format holds the immutable Format Configuration shared by the Time,
// Date and DateTime value packages, the Builder that creates it, and the
// process-wide default.
//
// A Config has no mutators; once built it can be shared by any number of
// goroutines without synchronization.
package format

import (
	"sync/atomic"

	"github.com/msto63/span/internal/layout"
)

// Default patterns.
const (
	DefaultTimeFormat = "%H:%M:%S"
	DefaultDateFormat = "%Y-%m-%d"
)

// Config is the set of patterns governing parse and render of each value kind.
type Config struct {
	time     string
	date     string
	datetime string
}

// TimeFormat returns the pattern for Time values.
func (c *Config) TimeFormat() string {
	return c.time
}

// DateFormat returns the pattern for Date values.
func (c *Config) DateFormat() string {
	return c.date
}

// DateTimeFormat returns the pattern for DateTime values.
func (c *Config) DateTimeFormat() string {
	return c.datetime
}

// Validate compiles every pattern and checks it against its value kind,
// returning the first error found. Build never validates; this is an optional
// early check for configuration loaded from files.
func (c *Config) Validate() error {
	checks := []struct {
		pattern string
		kind    layout.Kind
	}{
		{c.time, layout.KindTime},
		{c.date, layout.KindDate},
		{c.datetime, layout.KindDateTime},
	}
	for _, chk := range checks {
		l, err := layout.Compile(chk.pattern)
		if err != nil {
			return err
		}
		if err := l.Check(chk.kind); err != nil {
			return err
		}
	}
	return nil
}

// String renders the configuration for diagnostics.
func (c *Config) String() string {
	return "time=" + c.time + " date=" + c.date + " datetime=" + c.datetime
}

// Builder collects optional pattern overrides. The zero value is ready to use.
type Builder struct {
	time     *string
	date     *string
	datetime *string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// TimeFormat overrides the Time pattern.
func (b *Builder) TimeFormat(pattern string) *Builder {
	b.time = &pattern
	return b
}

// DateFormat overrides the Date pattern.
func (b *Builder) DateFormat(pattern string) *Builder {
	b.date = &pattern
	return b
}

// DateTimeFormat overrides the DateTime pattern.
func (b *Builder) DateTimeFormat(pattern string) *Builder {
	b.datetime = &pattern
	return b
}

// Build returns a new Config. Unset patterns fall back to the defaults; an
// unset DateTime pattern is the resulting date pattern, a space, and the
// resulting time pattern. Build never fails.
func (b *Builder) Build() *Config {
	c := &Config{time: DefaultTimeFormat, date: DefaultDateFormat}
	if b.time != nil {
		c.time = *b.time
	}
	if b.date != nil {
		c.date = *b.date
	}
	if b.datetime != nil {
		c.datetime = *b.datetime
	} else {
		c.datetime = c.date + " " + c.time
	}
	return c
}

var defaultConfig atomic.Pointer[Config]

func init() {
	defaultConfig.Store(NewBuilder().Build())
}

// Default returns the process-wide default Config.
func Default() *Config {
	return defaultConfig.Load()
}

// SetDefault replaces the process-wide default Config and returns the previous
// one. Values built earlier keep the pattern they were built with. A nil cfg
// restores the built-in defaults.
func SetDefault(cfg *Config) *Config {
	if cfg == nil {
		cfg = NewBuilder().Build()
	}
	return defaultConfig.Swap(cfg)
}

// Resolve returns cfg, or the process default when cfg is nil.
func Resolve(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}
	return cfg
}
