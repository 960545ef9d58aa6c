// Package stream moves rows from the relational store into the
// redacting log.
//
// Each row arrives as an ordered (column, value) sequence, is serialized
// into "field=value; " segments, and is handed to the user data logger.
// The streamer never redacts the emitted line itself; that is the
// logging layer's guarantee. It does run the same redaction rules in
// counting mode so the audit summary can report how many values each
// field contributed.
//
// Multiple tables can be streamed concurrently with a bounded number of
// workers using errgroup.
package stream
