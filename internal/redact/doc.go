// Package redact implements pattern-based scrubbing of sensitive field
// values in delimited key=value log messages.
//
// The package has two entry points:
//   - Redact: a pure one-shot function that rewrites every
//     "field=value<separator>" segment for the given field names
//   - Redactor: a precompiled, immutable form of the same operation for
//     hot paths such as log formatting, safe for concurrent use
//
// Matching is literal: field names and the separator are quoted before
// being interpolated into the pattern, so caller input can never inject
// regular-expression syntax.
//
// Known limitation: values are matched non-greedily up to the first
// occurrence of the separator. If a value legitimately contains the
// separator, redaction stops at that inner occurrence and the remainder
// of the value is left in place. Callers that need separator characters
// inside values must escape them before serialization.
package redact
