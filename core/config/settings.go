// File: settings.go
// Title: span Settings Resolution
// Description: Turns the [format] and [clock] sections into a format.Config
//              and a clock.Clock, and installs them as process defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"strings"
	"time"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/core/log"
	"github.com/msto63/span/clock"
	"github.com/msto63/span/format"
)

// Setting keys
const (
	KeyFormatTime     = "format.time"
	KeyFormatDate     = "format.date"
	KeyFormatDateTime = "format.datetime"
	KeyClockSource    = "clock.source"
	KeyClockZone      = "clock.zone"
	KeyNTPServer      = "clock.ntp_server"
	KeyNTPTimeout     = "clock.ntp_timeout"
)

// Clock sources
const (
	SourceSystem = "system"
	SourceUTC    = "utc"
	SourceNTP    = "ntp"
)

// FormatConfig builds the Format Configuration from the [format] section.
// Unset keys keep the builder defaults; every pattern is validated.
func (c *Config) FormatConfig() (*format.Config, error) {
	b := format.NewBuilder()
	if c.Has(KeyFormatTime) {
		b.TimeFormat(c.GetString(KeyFormatTime))
	}
	if c.Has(KeyFormatDate) {
		b.DateFormat(c.GetString(KeyFormatDate))
	}
	if c.Has(KeyFormatDateTime) {
		b.DateTimeFormat(c.GetString(KeyFormatDateTime))
	}
	cfg := b.Build()

	if err := cfg.Validate(); err != nil {
		return nil, spanerror.Wrap(err, "invalid format configuration").
			WithCode(spanerror.CodeInvalidConfig).
			WithOperation("config.FormatConfig").
			WithDetail("source", c.source())
	}
	c.logger.Debug("format configuration resolved",
		log.String("time", cfg.TimeFormat()),
		log.String("date", cfg.DateFormat()),
		log.String("datetime", cfg.DateTimeFormat()))
	return cfg, nil
}

// Clock builds the reference clock from the [clock] section. An unknown
// source or zone is an INVALID_CONFIG error.
func (c *Config) Clock() (clock.Clock, error) {
	var loc *time.Location
	if zone := c.GetString(KeyClockZone); zone != "" {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return nil, spanerror.Wrap(err, "unknown time zone").
				WithCode(spanerror.CodeInvalidConfig).
				WithOperation("config.Clock").
				WithDetail("zone", zone)
		}
		loc = l
	}

	source := strings.ToLower(strings.TrimSpace(c.GetString(KeyClockSource, SourceSystem)))
	var result clock.Clock
	switch source {
	case SourceSystem, "":
		result = clock.System{Location: loc}
	case SourceUTC:
		if loc != nil && loc != time.UTC {
			c.logger.Warn("clock zone ignored for utc source", log.String("zone", loc.String()))
		}
		result = clock.UTC
	case SourceNTP:
		timeout, err := c.GetDuration(KeyNTPTimeout, clock.DefaultNTPTimeout)
		if err != nil {
			return nil, err
		}
		result = clock.NTP{
			Server:   c.GetString(KeyNTPServer, clock.DefaultNTPServer),
			Timeout:  timeout,
			Location: loc,
		}
	default:
		return nil, c.invalid(KeyClockSource, source, "one of system, utc, ntp")
	}

	c.logger.Debug("clock resolved", log.String("source", source))
	return result, nil
}

// Apply resolves both sections and installs them as the process defaults
// (format.SetDefault and clock.SetDefault). Nothing is installed on error.
func (c *Config) Apply() error {
	cfg, err := c.FormatConfig()
	if err != nil {
		return err
	}
	clk, err := c.Clock()
	if err != nil {
		return err
	}
	format.SetDefault(cfg)
	clock.SetDefault(clk)
	return nil
}

func (c *Config) source() string {
	if c.filePath != "" {
		return c.filePath
	}
	return "environment"
}
