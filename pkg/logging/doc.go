// Package logging provides structured logging utilities for the diskstats tool.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON records on stderr, module and version context on every record, and
// source locations when running at debug level. Report output goes to stdout,
// so logs never interleave with it.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("diskstats", version, "debug")
//	slog.Debug("loaded snapshot", "source", path, "records", n)
//
// The LOG_LEVEL environment variable is consulted by SetDefaultStructuredLogger:
//
//	LOG_LEVEL=debug diskstats diff before.txt after.txt
package logging
