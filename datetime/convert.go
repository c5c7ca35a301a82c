package datetime

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/internal/calendar"
)

// Unix returns the seconds since 1970-01-01 00:00:00, reading the fields as UTC.
func (dt DateTime) Unix() int64 {
	return dt.fields().Days()*calendar.SecondsPerDay + dt.clock.Seconds()
}

// FromUnix is the inverse of Unix.
func FromUnix(sec int64) (DateTime, error) {
	days := calendar.FloorDiv(sec, calendar.SecondsPerDay)
	c, ok := epoch.AddDays(days)
	if !ok {
		return DateTime{}, spanerror.Newf("unix time %d is out of range", sec).
			WithCode(spanerror.CodeValueOutOfRange).
			WithContext(context).
			WithOperation("from_unix")
	}
	return DateTime{civil: c, clock: calendar.ClockFromSeconds(sec - days*calendar.SecondsPerDay)}, nil
}

// Sub-second scales for the Unix conversions.
const (
	perMilli = int64(1e3)
	perMicro = int64(1e6)
	perNano  = int64(1e9)
)

// UnixMilli returns the milliseconds since the epoch. Values whose count does
// not fit in an int64 (beyond about 292 million years) are VALUE_OUT_OF_RANGE.
func (dt DateTime) UnixMilli() (int64, error) {
	return dt.unixScaled(perMilli, "unix_milli")
}

// UnixMicro returns the microseconds since the epoch.
func (dt DateTime) UnixMicro() (int64, error) {
	return dt.unixScaled(perMicro, "unix_micro")
}

// UnixNano returns the nanoseconds since the epoch. Only years 1678 to 2262
// fit.
func (dt DateTime) UnixNano() (int64, error) {
	return dt.unixScaled(perNano, "unix_nano")
}

func (dt DateTime) unixScaled(per int64, op string) (int64, error) {
	sec := dt.Unix()
	if sec > math.MaxInt64/per || sec < math.MinInt64/per {
		return 0, spanerror.Newf("%s does not fit in %s", dt, op).
			WithCode(spanerror.CodeValueOutOfRange).
			WithContext(context).
			WithOperation(op)
	}
	return sec * per, nil
}

// FromUnixMilli converts milliseconds since the epoch, dropping the fraction
// of a second (rounding toward the past).
func FromUnixMilli(ms int64) (DateTime, error) {
	return FromUnix(calendar.FloorDiv(ms, perMilli))
}

// FromUnixMicro converts microseconds since the epoch.
func FromUnixMicro(us int64) (DateTime, error) {
	return FromUnix(calendar.FloorDiv(us, perMicro))
}

// FromUnixNano converts nanoseconds since the epoch.
func FromUnixNano(ns int64) (DateTime, error) {
	return FromUnix(calendar.FloorDiv(ns, perNano))
}

// AsTime returns dt as a time.Time in loc (UTC when nil).
func (dt DateTime) AsTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	c := dt.fields()
	return time.Date(c.Year, time.Month(c.Month), c.Day, dt.clock.Hour, dt.clock.Minute, dt.clock.Second, 0, loc)
}

// ToTimestamp converts dt into a protobuf Timestamp, reading the fields as UTC.
func (dt DateTime) ToTimestamp() *timestamppb.Timestamp {
	return &timestamppb.Timestamp{Seconds: dt.Unix()}
}

// FromTimestamp converts a protobuf Timestamp into a DateTime in UTC. Nanos
// are dropped; timestamps outside the protobuf range are rejected.
func FromTimestamp(ts *timestamppb.Timestamp) (DateTime, error) {
	if err := ts.CheckValid(); err != nil {
		return DateTime{}, spanerror.Wrap(err, "invalid timestamp").
			WithCode(spanerror.CodeValueOutOfRange).
			WithContext(context).
			WithOperation("from_timestamp")
	}
	return FromUnix(ts.GetSeconds())
}
