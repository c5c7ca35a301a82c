// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of format
//              compilation, parsing, clock access, value updates and configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with span error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Value handling
	CodeParseFailed      Code = "PARSE_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidUpdate    Code = "INVALID_UPDATE"
	CodeClockUnavailable Code = "CLOCK_UNAVAILABLE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeParseFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidUpdate, CodeClockUnavailable,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParseFailed, CodeValueOutOfRange, CodeInvalidInput:
		return "input"
	case CodeInvalidFormat:
		return "format"
	case CodeClockUnavailable:
		return "clock"
	case CodeInvalidUpdate:
		return "arithmetic"
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return "configuration"
	default:
		return "generic"
	}
}
