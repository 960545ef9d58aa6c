package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrDBNameNotSet is returned by LoadDBConfig when PERSONAL_DATA_DB_NAME
// is missing or blank. It marks the database as unavailable: callers
// check for it with errors.Is and skip streaming instead of attempting a
// connection that can only fail.
var ErrDBNameNotSet = errors.New("database name not set: PERSONAL_DATA_DB_NAME is required")

// DBConfig holds the database connection settings read from the
// environment. Username, Password and Host are part of the connector
// contract for relational backends that authenticate; the bundled SQLite
// backend accepts them and uses only Name and Dir.
type DBConfig struct {
	// Username is the database user. Defaults to "root".
	Username string

	// Password is the database password. Defaults to empty.
	Password string

	// Host is the database host. Defaults to "localhost".
	Host string

	// Name is the logical database name. For the SQLite backend this is
	// the database file stem (Name + ".db"). Required.
	Name string

	// Dir is the directory holding the SQLite database file.
	// Defaults to the XDG data directory.
	Dir string
}

// LoadDBConfig reads database settings from the environment.
// A .env file in the working directory is loaded first if present;
// variables already exported win over file values, which is godotenv's
// default precedence.
//
// A missing or blank PERSONAL_DATA_DB_NAME returns ErrDBNameNotSet and a
// nil config. Every other variable has a safe default, so that is the
// only unavailable state.
func LoadDBConfig() (*DBConfig, error) {
	// Ignore the error: an absent .env file simply means the environment
	// is the only source.
	_ = godotenv.Load()

	name := strings.TrimSpace(os.Getenv(EnvDBName))
	if name == "" {
		return nil, ErrDBNameNotSet
	}

	cfg := &DBConfig{
		Username: strings.TrimSpace(os.Getenv(EnvDBUsername)),
		Password: os.Getenv(EnvDBPassword),
		Host:     strings.TrimSpace(os.Getenv(EnvDBHost)),
		Name:     name,
		Dir:      strings.TrimSpace(os.Getenv(EnvDBDir)),
	}

	if cfg.Username == "" {
		cfg.Username = DefaultDBUsername
	}
	if cfg.Host == "" {
		cfg.Host = DefaultDBHost
	}
	if cfg.Dir == "" {
		cfg.Dir = XDGDataDir()
	}

	return cfg, nil
}
