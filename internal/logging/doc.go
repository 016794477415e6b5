// Package logging builds the zerolog loggers used across dexterm.
//
// Loggers are configured from a Config (level, format, output), carried in
// context.Context alongside a per-invocation trace ID, and narrowed to a
// component with ComponentLogger. When the interactive browser owns the
// terminal, output is routed to a file or discarded so the alt screen stays
// clean.
package logging
