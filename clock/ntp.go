package clock

import (
	"time"

	"github.com/beevik/ntp"
)

// NTP defaults applied when the corresponding field is zero.
const (
	DefaultNTPServer  = "pool.ntp.org"
	DefaultNTPTimeout = 5 * time.Second
)

// NTP reads the time from a network time server. Every call performs one
// query; Timeout bounds it (default 5s). The result is converted to Location
// (default time.Local).
type NTP struct {
	Server   string
	Timeout  time.Duration
	Location *time.Location

	// query is swapped in tests
	query func(host string, opt ntp.QueryOptions) (*ntp.Response, error)
}

// Now queries the server and returns the corrected current time.
func (n NTP) Now() (time.Time, error) {
	server := n.Server
	if server == "" {
		server = DefaultNTPServer
	}
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultNTPTimeout
	}
	query := n.query
	if query == nil {
		query = ntp.QueryWithOptions
	}

	resp, err := query(server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return time.Time{}, Unavailable(err, "ntp query failed").WithDetail("server", server)
	}
	if err := resp.Validate(); err != nil {
		return time.Time{}, Unavailable(err, "ntp response rejected").WithDetail("server", server)
	}

	loc := n.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().Add(resp.ClockOffset).In(loc), nil
}
