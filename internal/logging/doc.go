// Package logging provides the small structured-logging facade used across
// the module.
//
// Logger wraps a subset of log/slog with context-aware methods so services
// can be handed a logger for tests or redaction policies. New binds to any
// *slog.Logger; NewText builds the stderr text handler the CLI uses.
//
// # Security
//
// Private exponents and ephemeral keys are never logged. Call sites that
// want to record that such a value exists use Redacted("x").
package logging
