// Package storage provides the SQLite-backed user data store that feeds
// the redacting log stream.
//
// The store is deliberately thin: connect, query ordered rows, close.
// Rows come back as ordered (column, value) pairs so the streamer can
// serialize them into field=value segments without losing the column
// order of the underlying table. No redaction happens here; the store
// returns cleartext and the logging layer guarantees nothing sensitive
// survives to a sink.
//
// Seed exists so the stream command has something to run against in a
// fresh environment; it creates the users table and fills it with demo
// accounts whose passwords are stored bcrypt-hashed.
package storage
