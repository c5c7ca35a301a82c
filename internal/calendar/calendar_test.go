package calendar

import (
	"math"
	"testing"
	"time"
)

func TestIsLeap(t *testing.T) {
	tests := map[int]bool{
		1900: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
		2400: true,
		-4:   true,
	}
	for year, want := range tests {
		if got := IsLeap(year); got != want {
			t.Errorf("IsLeap(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2023, 2, 28},
		{2024, 2, 29},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestAddMonthsClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Civil
		n    int64
		want Civil
	}{
		{"leap february", Civil{2024, 1, 31}, 1, Civil{2024, 2, 29}},
		{"common february", Civil{2023, 1, 31}, 1, Civil{2023, 2, 28}},
		{"october to november", Civil{2024, 10, 31}, 1, Civil{2024, 11, 30}},
		{"december wraps", Civil{2023, 12, 15}, 1, Civil{2024, 1, 15}},
		{"january borrows", Civil{2024, 1, 15}, -1, Civil{2023, 12, 15}},
		{"many months back", Civil{2024, 3, 31}, -25, Civil{2022, 2, 28}},
		{"leap day next year", Civil{2024, 2, 29}, 12, Civil{2025, 2, 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := tt.in.AddMonths(tt.n); !ok || got != tt.want {
				t.Errorf("AddMonths(%d) = %+v, %v; want %+v", tt.n, got, ok, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		in   Civil
		n    int64
		want Civil
	}{
		{Civil{2024, 2, 28}, 1, Civil{2024, 2, 29}},
		{Civil{2023, 2, 28}, 1, Civil{2023, 3, 1}},
		{Civil{2023, 12, 31}, 1, Civil{2024, 1, 1}},
		{Civil{2024, 1, 1}, -1, Civil{2023, 12, 31}},
		{Civil{2022, 1, 22}, 1043, Civil{2024, 11, 30}},
	}
	for _, tt := range tests {
		if got, ok := tt.in.AddDays(tt.n); !ok || got != tt.want {
			t.Errorf("%+v.AddDays(%d) = %+v, %v; want %+v", tt.in, tt.n, got, ok, tt.want)
		}
	}
}

func TestArithmeticRange(t *testing.T) {
	c := Civil{2024, 6, 15}
	if _, ok := c.AddYears(MaxYear); ok {
		t.Error("AddYears past MaxYear should fail")
	}
	if _, ok := c.AddMonths(-12 * (2024 - MinYear + 1)); ok {
		t.Error("AddMonths before MinYear should fail")
	}
	if _, ok := c.AddDays(1 << 62); ok {
		t.Error("AddDays with huge delta should fail")
	}
	if got, ok := c.AddYears(-4); !ok || got != (Civil{2020, 6, 15}) {
		t.Errorf("AddYears(-4) = %+v, %v", got, ok)
	}
}

func TestClockAddUnits(t *testing.T) {
	got, days := Clock{23, 17, 12}.AddUnits(1, SecondsPerHour)
	if got != (Clock{0, 17, 12}) || days != 1 {
		t.Errorf("AddUnits(1h) = %+v, %d", got, days)
	}
	got, days = Clock{0, 0, 0}.AddUnits(-1<<62, SecondsPerMinute)
	if days >= 0 || !ValidClock(got.Hour, got.Minute, got.Second) {
		t.Errorf("AddUnits(huge negative) = %+v, %d", got, days)
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(90); got != 90*time.Second {
		t.Errorf("Duration(90) = %v", got)
	}
	if got := Duration(1 << 62); got != time.Duration(math.MaxInt64) {
		t.Errorf("Duration(huge) = %v, want saturation", got)
	}
	if got := Duration(-1 << 62); got != -time.Duration(math.MaxInt64) {
		t.Errorf("Duration(-huge) = %v, want saturation", got)
	}
	for _, s := range []int64{0, 1, 1 << 33, 1 << 40, 1 << 62, math.MaxInt64} {
		if Duration(s) != -Duration(-s) {
			t.Errorf("Duration(%d) = %v is not the negation of Duration(%d) = %v", s, Duration(s), -s, Duration(-s))
		}
	}
}

func TestDaysRoundTrip(t *testing.T) {
	for _, c := range []Civil{{1970, 1, 1}, {1969, 12, 31}, {2000, 2, 29}, {1, 1, 1}, {9999, 12, 31}} {
		if got := FromDays(c.Days()); got != c {
			t.Errorf("FromDays(Days(%+v)) = %+v", c, got)
		}
	}
	if d := (Civil{1970, 1, 1}).Days(); d != 0 {
		t.Errorf("epoch days = %d", d)
	}
	if d := (Civil{1969, 12, 31}).Days(); d != -1 {
		t.Errorf("day before epoch = %d", d)
	}
}

func TestClockAdd(t *testing.T) {
	tests := []struct {
		name     string
		in       Clock
		delta    int64
		want     Clock
		wantDays int64
	}{
		{"second overflow", Clock{23, 59, 59}, 1, Clock{0, 0, 0}, 1},
		{"minute borrow", Clock{0, 0, 0}, -60, Clock{23, 59, 0}, -1},
		{"hour wrap", Clock{23, 17, 12}, SecondsPerHour, Clock{0, 17, 12}, 1},
		{"many days", Clock{12, 0, 0}, 3*SecondsPerDay + 1, Clock{12, 0, 1}, 3},
		{"no carry", Clock{10, 10, 10}, 50, Clock{10, 11, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, days := tt.in.Add(tt.delta)
			if got != tt.want || days != tt.wantDays {
				t.Errorf("Add(%d) = %+v, %d; want %+v, %d", tt.delta, got, days, tt.want, tt.wantDays)
			}
		})
	}
}

func TestOrdinal(t *testing.T) {
	if got := (Civil{2024, 3, 1}).Ordinal(); got != 61 {
		t.Errorf("Ordinal(2024-03-01) = %d, want 61", got)
	}
	m, d, ok := FromOrdinal(2023, 60)
	if !ok || m != 3 || d != 1 {
		t.Errorf("FromOrdinal(2023, 60) = %d, %d, %v", m, d, ok)
	}
	if _, _, ok := FromOrdinal(2023, 366); ok {
		t.Error("FromOrdinal(2023, 366) should fail")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int64 }{
		{7, 2, 3}, {-7, 2, -4}, {-8, 2, -4}, {0, 5, 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	rest := func(c Civil) int64 { return int64(c.Day) * SecondsPerDay }
	tests := []struct {
		name string
		a, b Civil
		want int64
	}{
		{"same day", Civil{2024, 1, 15}, Civil{2024, 1, 15}, 0},
		{"one full month", Civil{2024, 1, 15}, Civil{2024, 2, 15}, 1},
		{"not yet a month", Civil{2024, 1, 15}, Civil{2024, 2, 14}, 0},
		{"backwards", Civil{2024, 3, 10}, Civil{2024, 1, 11}, -1},
		{"backwards complete", Civil{2024, 3, 10}, Civil{2024, 1, 10}, -2},
		{"across years", Civil{2022, 1, 22}, Civil{2024, 11, 30}, 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(tt.a, rest(tt.a), tt.b, rest(tt.b)); got != tt.want {
				t.Errorf("MonthsBetween(%+v, %+v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
