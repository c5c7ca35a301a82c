// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels so that callers (the CLI in particular) can
//              decide how loudly to report a failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input, e.g. text not matching a format
	SeverityLow Severity = iota

	// SeverityMedium indicates a recoverable environment problem
	SeverityMedium

	// SeverityHigh indicates a misconfiguration or an unavailable dependency
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the library
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeClockUnavailable, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeParseFailed, CodeValueOutOfRange, CodeInvalidInput, CodeInvalidFormat, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
