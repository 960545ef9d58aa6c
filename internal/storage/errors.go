package storage

import "errors"

// Store errors.
// Package-level sentinel errors so callers can use errors.Is() for
// programmatic handling while still getting readable messages.
var (
	// ErrUnknownTable is returned when a requested table does not exist
	// in the database schema. Table names are checked against the schema
	// because identifiers cannot be bound as query placeholders.
	ErrUnknownTable = errors.New("unknown table")

	// ErrAlreadySeeded is returned when Seed finds an existing, non-empty
	// users table. Re-seeding would duplicate rows and skew the audit
	// counts of any stream run against the database.
	ErrAlreadySeeded = errors.New("database already seeded")
)
