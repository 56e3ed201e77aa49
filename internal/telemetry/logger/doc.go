// Package logger provides structured logging for asyncstorage.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, handler selection and level control
//   - context.go: Context-aware logging with trace IDs
//   - redact.go: Redaction of stored content
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Stored values never reach the log output
//   - ULID trace IDs per CLI invocation
package logger
