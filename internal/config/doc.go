// Package config holds the configuration glue for logscrub: fixed
// redaction defaults, the environment-driven database settings, and the
// optional YAML redaction policy file.
//
// Three sources feed the redaction policy, in decreasing order of
// authority:
//  1. An explicit policy file path given on the command line
//  2. A .logscrub.yaml found in the current or home directory
//  3. The built-in defaults (PII field list, "***" token, ";" separator)
//
// Database settings come only from the environment (after an optional
// .env file is loaded), mirroring the deployment convention that
// credentials never live in checked-in files. A missing database name is
// an explicit "unavailable" state reported as ErrDBNameNotSet, not a nil
// connection threaded through the call chain.
package config
