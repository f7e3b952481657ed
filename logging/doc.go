// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers construction helpers for JSON/text
// handlers and size-based rotating file sinks.
package logging
