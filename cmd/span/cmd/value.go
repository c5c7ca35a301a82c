package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/msto63/span/clock"
	"github.com/msto63/span/core/config"
	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/date"
	"github.com/msto63/span/datetime"
	"github.com/msto63/span/timeofday"
)

// value lets the commands treat the three value kinds alike. Units are
// addressed by name and resolved by the concrete kind.
type value interface {
	fmt.Stringer
	fields() []field
	update(unit string, delta int) (value, error)
	clear(unit string) (value, error)
	elapsed(other value) (time.Duration, error)
	unitElapsed(unit string, other value) (int64, error)
	isInFuture(c clock.Clock) (bool, error)
	render(pattern string) (string, error)
}

type field struct {
	Unit  string `json:"unit"`
	Value int    `json:"value"`
}

type kind struct {
	name  string
	key   string // config key of the kind's pattern
	parse func(text string) (value, error)
	now   func(c clock.Clock) (value, error)
}

// Inputs are parsed with the configured pattern; --pattern is applied to the
// configuration before it is installed.
var kinds = map[string]kind{
	"time": {
		name: "time",
		key:  config.KeyFormatTime,
		parse: func(text string) (value, error) {
			t, err := timeofday.Build(text, nil)
			return timeValue{t}, err
		},
		now: func(c clock.Clock) (value, error) {
			t, err := timeofday.NowFrom(c)
			return timeValue{t}, err
		},
	},
	"date": {
		name: "date",
		key:  config.KeyFormatDate,
		parse: func(text string) (value, error) {
			d, err := date.Build(text, nil)
			return dateValue{d}, err
		},
		now: func(c clock.Clock) (value, error) {
			d, err := date.NowFrom(c)
			return dateValue{d}, err
		},
	},
	"datetime": {
		name: "datetime",
		key:  config.KeyFormatDateTime,
		parse: func(text string) (value, error) {
			dt, err := datetime.Build(text, nil)
			return dateTimeValue{dt}, err
		},
		now: func(c clock.Clock) (value, error) {
			dt, err := datetime.NowFrom(c)
			return dateTimeValue{dt}, err
		},
	},
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[strings.ToLower(name)]
	if !ok {
		return kind{}, spanerror.Newf("unknown kind %q (expected time, date or datetime)", name).
			WithCode(spanerror.CodeInvalidInput).
			WithOperation("cli.kind")
	}
	return k, nil
}

func kindMismatch(a, b value) error {
	return spanerror.Newf("cannot compare %T with %T", a, b).
		WithCode(spanerror.CodeInvalidInput).
		WithOperation("cli.elapsed")
}

type timeValue struct{ t timeofday.Time }

func (v timeValue) String() string { return v.t.String() }

func (v timeValue) fields() []field {
	var out []field
	for _, u := range timeofday.Units() {
		out = append(out, field{u.String(), v.t.Get(u)})
	}
	return out
}

func (v timeValue) update(unit string, delta int) (value, error) {
	u, err := timeofday.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	t := v.t
	return timeValue{t.Update(u, delta)}, nil
}

func (v timeValue) clear(unit string) (value, error) {
	u, err := timeofday.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return timeValue{v.t.ClearUnit(u)}, nil
}

func (v timeValue) elapsed(other value) (time.Duration, error) {
	o, ok := other.(timeValue)
	if !ok {
		return 0, kindMismatch(v, other)
	}
	return v.t.Elapsed(o.t), nil
}

func (v timeValue) unitElapsed(unit string, other value) (int64, error) {
	o, ok := other.(timeValue)
	if !ok {
		return 0, kindMismatch(v, other)
	}
	u, err := timeofday.ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return v.t.UnitElapsed(u, o.t), nil
}

func (v timeValue) isInFuture(c clock.Clock) (bool, error) { return v.t.IsInFutureAt(c) }

func (v timeValue) render(pattern string) (string, error) {
	t, err := v.t.WithFormat(pattern)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

type dateValue struct{ d date.Date }

func (v dateValue) String() string { return v.d.String() }

func (v dateValue) fields() []field {
	var out []field
	for _, u := range date.Units() {
		out = append(out, field{u.String(), v.d.Get(u)})
	}
	return out
}

func (v dateValue) update(unit string, delta int) (value, error) {
	u, err := date.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	d := v.d
	if _, err := d.Update(u, delta); err != nil {
		return nil, err
	}
	return dateValue{d}, nil
}

func (v dateValue) clear(unit string) (value, error) {
	u, err := date.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return dateValue{v.d.ClearUnit(u)}, nil
}

func (v dateValue) elapsed(other value) (time.Duration, error) {
	o, ok := other.(dateValue)
	if !ok {
		return 0, kindMismatch(v, other)
	}
	return v.d.Elapsed(o.d), nil
}

func (v dateValue) unitElapsed(unit string, other value) (int64, error) {
	o, ok := other.(dateValue)
	if !ok {
		return 0, kindMismatch(v, other)
	}
	u, err := date.ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return v.d.UnitElapsed(u, o.d), nil
}

func (v dateValue) isInFuture(c clock.Clock) (bool, error) { return v.d.IsInFutureAt(c) }

func (v dateValue) render(pattern string) (string, error) {
	d, err := v.d.WithFormat(pattern)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

type dateTimeValue struct{ dt datetime.DateTime }

func (v dateTimeValue) String() string { return v.dt.String() }

func (v dateTimeValue) fields() []field {
	var out []field
	for _, u := range datetime.Units() {
		out = append(out, field{u.String(), v.dt.Get(u)})
	}
	return out
}

func (v dateTimeValue) update(unit string, delta int) (value, error) {
	u, err := datetime.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	dt := v.dt
	if _, err := dt.Update(u, delta); err != nil {
		return nil, err
	}
	return dateTimeValue{dt}, nil
}

func (v dateTimeValue) clear(unit string) (value, error) {
	if strings.EqualFold(unit, "time") {
		return dateTimeValue{v.dt.ClearTime()}, nil
	}
	u, err := datetime.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return dateTimeValue{v.dt.ClearUnit(u)}, nil
}

func (v dateTimeValue) elapsed(other value) (time.Duration, error) {
	o, ok := other.(dateTimeValue)
	if !ok {
		return 0, kindMismatch(v, other)
	}
	return v.dt.Elapsed(o.dt), nil
}

func (v dateTimeValue) unitElapsed(unit string, other value) (int64, error) {
	o, ok := other.(dateTimeValue)
	if !ok {
		return 0, kindMismatch(v, other)
	}
	u, err := datetime.ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return v.dt.UnitElapsed(u, o.dt), nil
}

func (v dateTimeValue) isInFuture(c clock.Clock) (bool, error) { return v.dt.IsInFutureAt(c) }

func (v dateTimeValue) render(pattern string) (string, error) {
	dt, err := v.dt.WithFormat(pattern)
	if err != nil {
		return "", err
	}
	return dt.String(), nil
}
