// Package log provides structured logging for the span command line tool and
// for callers that want span errors rendered with their code and context.
//
// Package: log
// Title: span Structured Logging
// Description: Leveled logger with JSON, text and logfmt output. Errors from
//              core/error are logged with their code, severity, value context
//              and operation; the level is derived from the severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger.Info("parsed value", log.String("kind", "DateTime"))
//
//	if _, err := date.Parse(text, pattern); err != nil {
//		logger.LogError(err)
//	}
package log
