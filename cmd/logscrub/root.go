// Package main provides the entry point for the logscrub CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for logscrub.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logscrub",
		Short: "Stream database rows into logs with PII redacted",
		Long: `logscrub streams rows from a relational store into structured logs,
redacting personally identifiable information (name, email, phone, ssn,
password) before any line reaches the output sink.

Database settings come from the PERSONAL_DATA_DB_* environment
variables; the redaction policy can be overridden with a .logscrub.yaml
file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostic logging")

	// Add subcommands
	cmd.AddCommand(NewStreamCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
