package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The redaction defaults match the fixed policy baked into the user_data
// logger; the database defaults match the PERSONAL_DATA_DB_* environment
// convention this tool inherits from its deployment environment.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "logscrub"

	// DefaultRedaction is the placeholder substituted for flagged values.
	DefaultRedaction = "***"

	// DefaultSeparator delimits field=value segments in serialized rows.
	DefaultSeparator = ";"

	// DefaultDBUsername is used when PERSONAL_DATA_DB_USERNAME is unset.
	DefaultDBUsername = "root"

	// DefaultDBHost is used when PERSONAL_DATA_DB_HOST is unset.
	DefaultDBHost = "localhost"
)

// Environment variable names consumed by LoadDBConfig.
const (
	// EnvDBUsername names the database user.
	EnvDBUsername = "PERSONAL_DATA_DB_USERNAME"

	// EnvDBPassword names the database password. No default: an unset
	// password is an empty password.
	EnvDBPassword = "PERSONAL_DATA_DB_PASSWORD"

	// EnvDBHost names the database host.
	EnvDBHost = "PERSONAL_DATA_DB_HOST"

	// EnvDBName names the database. It has no default: without it the
	// database is considered unavailable and nothing is streamed.
	EnvDBName = "PERSONAL_DATA_DB_NAME"

	// EnvDBDir names the directory holding the SQLite database file.
	// When unset, the XDG data directory is used.
	EnvDBDir = "PERSONAL_DATA_DB_DIR"
)

// PIIFields is the fixed list of field names whose values must never
// appear in cleartext in emitted logs. The list is ordered and compared
// case-sensitively; it is shared read-only by every formatting call.
//
// Callers must treat the returned slice as immutable. It is exposed as a
// function rather than a package variable so no caller can mutate the
// shared backing array.
func PIIFields() []string {
	return []string{"name", "email", "phone", "ssn", "password"}
}

// XDGDataDir returns the XDG data directory for logscrub.
// On Linux: ~/.local/share/logscrub
// On macOS: ~/Library/Application Support/logscrub
// On Windows: %LOCALAPPDATA%\logscrub
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
