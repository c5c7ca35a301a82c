package datetime

import (
	"math"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	spanerror "github.com/msto63/span/core/error"
)

func TestTimestamp(t *testing.T) {
	v := mustParse(t, "2024-11-30 06:32:28")

	ts := v.ToTimestamp()
	want := time.Date(2024, 11, 30, 6, 32, 28, 0, time.UTC)
	if !ts.AsTime().Equal(want) {
		t.Errorf("ToTimestamp() = %v, want %v", ts.AsTime(), want)
	}

	back, err := FromTimestamp(timestamppb.New(want.Add(750 * time.Millisecond)))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Errorf("FromTimestamp() = %s, want %s (nanos dropped)", back, v)
	}
}

func TestFromTimestampInvalid(t *testing.T) {
	tests := []struct {
		name string
		ts   *timestamppb.Timestamp
	}{
		{"nil", nil},
		{"negative nanos", &timestamppb.Timestamp{Seconds: 0, Nanos: -1}},
		{"after year 9999", &timestamppb.Timestamp{Seconds: 253402300800}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromTimestamp(tt.ts)
			if !spanerror.HasCode(err, spanerror.CodeValueOutOfRange) {
				t.Errorf("FromTimestamp() error = %v", err)
			}
		})
	}
}

func TestUnixSubSecond(t *testing.T) {
	v := mustParse(t, "2024-11-30 06:32:28")
	ref := time.Date(2024, 11, 30, 6, 32, 28, 0, time.UTC)

	tests := []struct {
		name string
		to   func(DateTime) (int64, error)
		from func(int64) (DateTime, error)
		want int64
	}{
		{"milli", DateTime.UnixMilli, FromUnixMilli, ref.UnixMilli()},
		{"micro", DateTime.UnixMicro, FromUnixMicro, ref.UnixMicro()},
		{"nano", DateTime.UnixNano, FromUnixNano, ref.UnixNano()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.to(v)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
			back, err := tt.from(got + 999)
			if err != nil || !back.Equal(v) {
				t.Errorf("inverse = %s, %v; want %s", back, err, v)
			}
		})
	}
}

func TestFromUnixMilliBeforeEpoch(t *testing.T) {
	v, err := FromUnixMilli(-1)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "1969-12-31 23:59:59" {
		t.Errorf("FromUnixMilli(-1) = %s", v)
	}
}

func TestUnixScaledOutOfRange(t *testing.T) {
	far := mustParse(t, "2300-01-01 00:00:00")
	if _, err := far.UnixNano(); !spanerror.HasCode(err, spanerror.CodeValueOutOfRange) {
		t.Errorf("UnixNano() error = %v, want VALUE_OUT_OF_RANGE", err)
	}
	if _, err := far.UnixMilli(); err != nil {
		t.Errorf("UnixMilli() error = %v", err)
	}

	huge, err := New(1_000_000_000, 1, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := huge.UnixMilli(); !spanerror.HasCode(err, spanerror.CodeValueOutOfRange) {
		t.Errorf("UnixMilli() error = %v, want VALUE_OUT_OF_RANGE", err)
	}
	if _, err := FromUnixNano(math.MinInt64); err != nil {
		t.Errorf("FromUnixNano(min) error = %v", err)
	}
}
