// Package logging provides structured logging utilities for the twitter-mcp
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Credential sanitization helpers
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "search_recent")
//	logger.Info("searching tweets",
//	    logging.Status("success"))
//
// # Security Considerations
//
// API keys, access tokens and signing secrets are never logged. When a log
// line has to acknowledge a token at all, SanitizeToken reduces it to a
// length indicator.
package logging
