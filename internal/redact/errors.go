package redact

import "errors"

// Construction errors returned by NewRedactor.
// These are package-level sentinel errors so callers can use errors.Is()
// for programmatic handling while still getting readable messages.
var (
	// ErrEmptySeparator is returned when the separator is the empty string.
	// Without a delimiter the non-greedy value match has no terminator and
	// segment boundaries cannot be determined.
	ErrEmptySeparator = errors.New("empty separator: segment boundaries would be ambiguous")

	// ErrEmptyFieldName is returned when a field name is the empty string.
	// An empty name would turn every "=" in the message into a match.
	ErrEmptyFieldName = errors.New("empty field name")

	// ErrInvalidFieldName is returned when a field name contains "=" or the
	// separator itself. Either character makes the field prefix collide
	// with segment structure.
	ErrInvalidFieldName = errors.New("invalid field name: must not contain \"=\" or the separator")

	// ErrDuplicateField is returned when the same field name is listed twice.
	// The second rule would only ever re-match already-redacted segments.
	ErrDuplicateField = errors.New("duplicate field name")
)
