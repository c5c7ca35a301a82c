// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, value context,
//              operation and details. Stays compatible with the standard error
//              interface, errors.Is/As and JSON encoding for structured logs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxErrorChainDepth limits how deep Wrap keeps nesting causes
const MaxErrorChainDepth = 15

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message  string
	cause    error
	code     Code
	severity Severity

	// context names the value kind ("Time", "Date", "DateTime") or subsystem
	context   string
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		root := rootCause(err)
		return &Error{
			message:  fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, root.Error()),
			code:     CodeUnknown,
			severity: SeverityHigh,
			details:  map[string]interface{}{"truncated": true, "original_depth": depth},
		}
	}

	wrapped := &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}

	// Preserve classification of our own errors
	var spanErr *Error
	if errors.As(err, &spanErr) {
		wrapped.code = spanErr.code
		wrapped.severity = spanErr.severity
		for k, v := range spanErr.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// Annotate stamps the value context and operation onto err when it is an
// *Error that does not carry them yet. Other errors pass through unchanged.
func Annotate(err error, context, operation string) error {
	var spanErr *Error
	if !errors.As(err, &spanErr) {
		return err
	}
	if spanErr.context == "" {
		spanErr.context = context
	}
	if spanErr.operation == "" {
		spanErr.operation = operation
	}
	return err
}

func chainDepth(err error) int {
	depth := 0
	current := err
	for current != nil && depth < MaxErrorChainDepth*2 {
		depth++
		e, ok := current.(*Error)
		if !ok {
			break
		}
		current = e.cause
	}
	return depth
}

func rootCause(err error) error {
	last := err
	for current := err; current != nil; {
		last = current
		e, ok := current.(*Error)
		if !ok {
			break
		}
		current = e.cause
	}
	return last
}

// Error implements the standard error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.context != "" {
		b.WriteString(e.context)
		b.WriteString(" ➤ ")
	}
	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithContext sets the value kind or subsystem the error belongs to
func (e *Error) WithContext(context string) *Error {
	e.context = context
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the bare message without context, operation or cause
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Context returns the error context
func (e *Error) Context() string {
	return e.context
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
		fmt.Sprintf("Severity: %s", e.severity),
	}
	if e.context != "" {
		parts = append(parts, fmt.Sprintf("Context: %s", e.context))
	}
	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}
	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}
	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.context != "" {
		data["context"] = e.context
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// HasCode checks if any error in the chain carries a specific code
func HasCode(err error, code Code) bool {
	for depth := 0; err != nil && depth < MaxErrorChainDepth*2; depth++ {
		var spanErr *Error
		if !errors.As(err, &spanErr) {
			return false
		}
		if spanErr.code == code {
			return true
		}
		if spanErr.cause == nil {
			return false
		}
		err = spanErr.cause
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not a span error
func GetCode(err error) Code {
	var spanErr *Error
	if errors.As(err, &spanErr) {
		return spanErr.code
	}
	return CodeUnknown
}

// IsParseError reports whether err means the input text did not fit its format
// or decoded to a field outside its legal range.
func IsParseError(err error) bool {
	return HasCode(err, CodeParseFailed) || HasCode(err, CodeValueOutOfRange)
}

// IsFormatError reports whether err stems from a malformed format pattern.
func IsFormatError(err error) bool {
	return HasCode(err, CodeInvalidFormat)
}

// IsClockError reports whether the reference clock could not supply "now".
func IsClockError(err error) bool {
	return HasCode(err, CodeClockUnavailable)
}
