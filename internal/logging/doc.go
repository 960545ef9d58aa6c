// Package logging provides the redacting logger for personal data,
// built on top of the standard slog package.
//
// The package wires two handlers into every logger it produces:
//   - RedactHandler intercepts each record and scrubs flagged
//     field=value segments from the message, and flagged keys from
//     structured attributes, before the record goes any further
//   - LineHandler renders the fixed line format
//     "[LOGSCRUB] <name> <LEVEL> <timestamp>: <message>" and writes it
//     to the attached sink
//
// Because RedactHandler sits in front of LineHandler, no code path can
// deliver an unredacted message to a sink: the line template is only
// ever applied to post-redaction content.
//
// # Usage
//
//	logger := logging.UserData()
//	logger.Info("name=Bob;email=b@x.com;")
//	// emits: [LOGSCRUB] user_data INFO 2026-08-30 12:00:00.000: name=***;email=***;
//
// Loggers are cached process-wide by name. Calling UserData or Get
// repeatedly returns the same instance and never stacks a second
// handler chain onto an existing name.
package logging
