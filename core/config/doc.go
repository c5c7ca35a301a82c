// Package config loads span settings from a TOML or YAML file with
// environment variable overrides and turns them into a format.Config and a
// clock.Clock.
//
// Package: config
// Title: span Configuration Loading
// Description: Reads a settings file (format detected from the extension),
//              resolves dotted keys with SPAN_* environment overrides, and
//              builds the Format Configuration and reference clock from the
//              [format] and [clock] sections.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// File layout (TOML):
//
//	[format]
//	time     = "%H:%M:%S"
//	date     = "%Y-%m-%d"
//	datetime = "%Y-%m-%dT%H:%M:%S"
//
//	[clock]
//	source      = "ntp"          # system | utc | ntp
//	zone        = "Europe/Berlin"
//	ntp_server  = "pool.ntp.org"
//	ntp_timeout = "3s"
//
// Every key can be overridden from the environment: format.time becomes
// SPAN_FORMAT_TIME, clock.source becomes SPAN_CLOCK_SOURCE, and so on.
//
// Usage:
//
//	cfg, err := config.Load("span.toml")
//	if err != nil {
//		return err
//	}
//	if err := cfg.Apply(); err != nil {
//		return err
//	}
package config
