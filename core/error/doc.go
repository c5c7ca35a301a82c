// Package error provides the structured error type shared by all span packages.
//
// Package: error
// Title: span Error Handling
// Description: Implements a contextual error type carrying an error code, a severity,
//              the value kind and operation that failed, and key/value details such
//              as the offending field and its accepted range. Callers classify
//              failures by code (parse, format, clock, update) instead of by string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation for span value errors
//
// Usage:
//
//	import spanerror "github.com/msto63/span/core/error"
//
//	err := spanerror.New("month out of range").
//		WithCode(spanerror.CodeParseFailed).
//		WithContext("Date").
//		WithOperation("parse").
//		WithDetail("field", "month").
//		WithDetail("expected", "1-12")
//
//	if spanerror.IsParseError(err) {
//		// report the bad input back to the user
//	}
package error
