// Package logging assembles the structured slog loggers used across
// handlesort.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes small attribute helpers so call sites stay terse. The console
// handler writes single-line key=value output suited to interactive runs; the
// JSON handler emits machine-readable records for scripted use. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging
