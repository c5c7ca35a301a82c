package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/beevik/ntp"

	spanerror "github.com/msto63/span/core/error"
)

func TestSystemUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now, err := System{Location: loc}.Now()
	if err != nil {
		t.Fatalf("Now() error = %v", err)
	}
	if now.Location() != loc {
		t.Errorf("Location() = %v, want %v", now.Location(), loc)
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 11, 30, 6, 32, 28, 0, time.UTC)
	got, err := Fixed(at).Now()
	if err != nil || !got.Equal(at) {
		t.Errorf("Fixed.Now() = %v, %v; want %v", got, err, at)
	}
}

func TestReadWrapsFailures(t *testing.T) {
	tests := []struct {
		name  string
		clock Clock
	}{
		{"failing", Failing{Err: errors.New("no rtc")}},
		{"func with plain error", Func(func() (time.Time, error) { return time.Time{}, errors.New("boom") })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.clock)
			if !spanerror.IsClockError(err) {
				t.Errorf("Read() error = %v, want clock error", err)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	at := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := SetDefault(Fixed(at))
	defer SetDefault(prev)

	got, err := Read(nil)
	if err != nil || !got.Equal(at) {
		t.Errorf("Read(nil) = %v, %v; want %v", got, err, at)
	}

	SetDefault(nil)
	if _, ok := Default().(System); !ok {
		t.Errorf("SetDefault(nil) installed %T, want System", Default())
	}
}

func TestNTPFailureIsClockError(t *testing.T) {
	n := NTP{
		Server: "ntp.invalid",
		query: func(host string, opt ntp.QueryOptions) (*ntp.Response, error) {
			if host != "ntp.invalid" {
				t.Errorf("queried %q", host)
			}
			if opt.Timeout != 5*time.Second {
				t.Errorf("timeout = %v, want default 5s", opt.Timeout)
			}
			return nil, errors.New("i/o timeout")
		},
	}
	_, err := n.Now()
	if !spanerror.IsClockError(err) {
		t.Fatalf("Now() error = %v, want clock error", err)
	}
	if server, _ := err.(*spanerror.Error).Detail("server"); server != "ntp.invalid" {
		t.Errorf("server detail = %v", server)
	}
}

func TestNTPAppliesOffset(t *testing.T) {
	n := NTP{
		Location: time.UTC,
		query: func(string, ntp.QueryOptions) (*ntp.Response, error) {
			return &ntp.Response{Stratum: 2, ClockOffset: 48 * time.Hour}, nil
		},
	}
	got, err := n.Now()
	if err != nil {
		t.Fatalf("Now() error = %v", err)
	}
	if d := got.Sub(time.Now()); d < 47*time.Hour {
		t.Errorf("offset not applied, got %v ahead", d)
	}
}
