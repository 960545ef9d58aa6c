package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logscrub/logscrub/internal/config"
	"github.com/logscrub/logscrub/internal/storage"
)

// NewSeedCmd creates the seed command.
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create and populate the demo user database",
		Long: `Seed creates the users table in the configured database and fills it
with synthetic accounts whose passwords are stored bcrypt-hashed.

The database location comes from PERSONAL_DATA_DB_NAME and
PERSONAL_DATA_DB_DIR; unlike stream, seed requires the name to be set
because creating an unnamed database cannot be intended.

Example:
  PERSONAL_DATA_DB_NAME=personal_data logscrub seed`,
		Args: cobra.NoArgs,
		RunE: runSeedCmd,
	}
}

// runSeedCmd creates the database file and inserts the demo accounts.
func runSeedCmd(cmd *cobra.Command, _ []string) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return fmt.Errorf("seed needs a database name: %w", err)
	}

	store, err := storage.Open(dbCfg.Dir, dbCfg.Name,
		storage.Options{CreateIfNotExists: true, EnableWAL: true})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Seed(cmd.Context()); err != nil {
		if errors.Is(err, storage.ErrAlreadySeeded) {
			fmt.Fprintf(cmd.OutOrStdout(), "database at %s is already seeded\n", store.Path())
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded demo users at %s\n", store.Path())
	return nil
}
