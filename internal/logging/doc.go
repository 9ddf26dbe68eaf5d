// Package logging builds the slog loggers used by the wavtrim commands.
//
// Two handlers are available: a compact single-line console format for
// interactive use and JSON with ts/level/msg keys for pipelines. NewNop
// returns a logger for tests and library callers that do not want output.
package logging
