// Package report renders the audit summary of a stream run: how many
// rows were streamed and how many values were redacted per field.
//
// The summary exists so an operator can verify that redaction actually
// happened — a run that streamed a thousand rows with zero redactions on
// a table known to hold PII is a misconfiguration signal, not a success.
//
// Writers implement a common interface so the summary can go to the
// terminal, a markdown file, or both at once via MultiWriter.
package report
