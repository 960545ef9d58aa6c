package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/logscrub/logscrub/internal/config"
	"github.com/logscrub/logscrub/internal/logging"
	"github.com/logscrub/logscrub/internal/redact"
	"github.com/logscrub/logscrub/internal/report"
	"github.com/logscrub/logscrub/internal/storage"
	"github.com/logscrub/logscrub/internal/stream"
)

// NewStreamCmd creates the stream command.
func NewStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream rows from the database into the redacting log",
		Long: `Stream reads every row of the configured tables and emits one log
line per row, with flagged fields redacted before the line is written.

Database settings come from the environment (a .env file is honored):

  PERSONAL_DATA_DB_USERNAME  database user (default "root")
  PERSONAL_DATA_DB_PASSWORD  database password (default empty)
  PERSONAL_DATA_DB_HOST      database host (default "localhost")
  PERSONAL_DATA_DB_NAME      database name (required)
  PERSONAL_DATA_DB_DIR       database directory (default: XDG data dir)

When PERSONAL_DATA_DB_NAME is unset the database is treated as
unavailable: nothing is streamed and the command exits successfully.

Examples:
  # Stream the users table with the built-in PII policy
  PERSONAL_DATA_DB_NAME=personal_data logscrub stream

  # Stream several tables concurrently
  logscrub stream --tables users,accounts --batch 4

  # Use a custom redaction policy and write a markdown audit report
  logscrub stream -c policy.yaml --markdown -o audit.md

  # Send the log to a rotating file instead of stdout
  logscrub stream --log-file /var/log/logscrub/user_data.log`,
		Args: cobra.NoArgs,
		RunE: runStreamCmd,
	}

	// Redaction policy
	cmd.Flags().StringP("policy", "c", "",
		"Redaction policy file path (default: .logscrub.yaml in current or home directory)")

	// Stream behavior
	cmd.Flags().StringSliceP("tables", "t", []string{"users"},
		"Tables to stream")
	cmd.Flags().IntP("batch", "b", stream.DefaultConcurrency,
		"Number of tables streamed concurrently")

	// Sink selection
	cmd.Flags().String("log-file", "",
		"Write log lines to this file with rotation instead of stdout")

	// Audit report
	cmd.Flags().Bool("markdown", false,
		"Write the audit summary as markdown instead of plain text")
	cmd.Flags().StringP("output", "o", "",
		"Write the audit summary to this file instead of stderr")

	return cmd
}

// runStreamCmd wires config, storage, logging and the streamer together.
func runStreamCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verbose, _ := cmd.Flags().GetBool("verbose")
	diag := newDiagLogger(cmd.ErrOrStderr(), verbose)

	policy, err := loadPolicy(cmd)
	if err != nil {
		return err
	}

	dbCfg, err := config.LoadDBConfig()
	if errors.Is(err, config.ErrDBNameNotSet) {
		// Unavailable configuration is not a failure: stream nothing,
		// exit zero. The notice goes to stderr so pipelines reading the
		// log stream see no difference.
		fmt.Fprintln(cmd.ErrOrStderr(), "database unavailable: PERSONAL_DATA_DB_NAME is not set, nothing to stream")
		return nil
	}
	if err != nil {
		return err
	}

	store, err := storage.Open(dbCfg.Dir, dbCfg.Name, storage.DefaultOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			diag.Warn("failed to close store", "error", err)
		}
	}()
	diag.Debug("store opened", "path", store.Path())

	redactor, err := redact.NewRedactor(policy.Fields, policy.Redaction, policy.Separator)
	if err != nil {
		return fmt.Errorf("invalid redaction policy: %w", err)
	}

	sink := io.Writer(cmd.OutOrStdout())
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		sink = logging.NewRotatingFile(logFile)
	}

	logger, err := logging.Get(logging.UserDataLoggerName,
		logging.WithSink(sink),
		logging.WithFields(policy.Fields),
		logging.WithRedaction(policy.Redaction),
		logging.WithSeparator(policy.Separator),
	)
	if err != nil {
		return fmt.Errorf("invalid redaction policy: %w", err)
	}

	tables, _ := cmd.Flags().GetStringSlice("tables")
	batch, _ := cmd.Flags().GetInt("batch")

	streamer := stream.New(store, logger, redactor, stream.WithConcurrency(batch))
	diag.Debug("stream starting", "session", streamer.SessionID(), "tables", tables)

	if err := streamer.StreamAll(ctx, tables); err != nil {
		return err
	}

	return writeSummary(cmd, streamer.Summary())
}

// loadPolicy resolves the redaction policy: an explicit --policy path
// must exist; otherwise a discovered .logscrub.yaml is used, falling
// back to the built-in defaults.
func loadPolicy(cmd *cobra.Command) (*config.Policy, error) {
	policyPath, _ := cmd.Flags().GetString("policy")

	found := config.FindPolicyFile(policyPath)
	if found == "" {
		if policyPath != "" {
			return nil, fmt.Errorf("redaction policy file not found: %s", policyPath)
		}
		return config.DefaultPolicy(), nil
	}
	return config.LoadPolicy(found)
}

// writeSummary renders the audit summary to stderr or the --output file.
func writeSummary(cmd *cobra.Command, summary *report.Summary) error {
	markdown, _ := cmd.Flags().GetBool("markdown")
	outputPath, _ := cmd.Flags().GetString("output")

	out := cmd.ErrOrStderr()
	if outputPath != "" {
		if dir := filepath.Dir(outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.Create(outputPath) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	var w report.Writer = report.NewTextWriter(out)
	if markdown {
		w = report.NewMarkdownWriter(out)
	}
	_, err := w.Write(summary)
	return err
}

// newDiagLogger builds the operational logger for the command itself.
// It is separate from the user_data logger: diagnostics go to stderr and
// never carry row content.
func newDiagLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
