package stream

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/logscrub/logscrub/internal/redact"
	"github.com/logscrub/logscrub/internal/report"
	"github.com/logscrub/logscrub/internal/storage"
)

// DefaultConcurrency is the number of tables streamed in parallel when
// no explicit limit is configured.
const DefaultConcurrency = 4

// Streamer reads rows from a store and emits them, serialized, through a
// redacting logger. It accumulates per-field redaction counts for the
// audit summary.
//
// The logger passed in must already carry the redaction handler chain;
// the streamer trusts it completely and never inspects the emitted
// output. The streamer's own redactor is used only in counting mode and
// must be built from the same policy as the logger's, which the command
// layer guarantees by constructing both from one Policy value.
type Streamer struct {
	// store is the row source.
	store *storage.Store

	// logger receives one Info record per row.
	logger *slog.Logger

	// redactor counts matches per field. Shares the policy of the
	// logger's redaction handler.
	redactor *redact.Redactor

	// concurrency bounds parallel table streams in StreamAll.
	concurrency int

	// sessionID identifies this run in logs and reports.
	sessionID string

	// startedAt anchors the summary duration.
	startedAt time.Time

	// mu guards the counters below; StreamAll writes them from several
	// goroutines.
	mu     sync.Mutex
	rows   int
	counts map[string]int
	tables []string
}

// Option configures a Streamer.
type Option func(*Streamer)

// WithConcurrency sets the maximum number of tables streamed in
// parallel. Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(s *Streamer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// New creates a Streamer over the given store, logger and redaction
// rules. A fresh session ID is generated per streamer, so one Streamer
// corresponds to exactly one audit summary.
func New(store *storage.Store, logger *slog.Logger, redactor *redact.Redactor, opts ...Option) *Streamer {
	s := &Streamer{
		store:       store,
		logger:      logger,
		redactor:    redactor,
		concurrency: DefaultConcurrency,
		sessionID:   uuid.NewString(),
		startedAt:   time.Now(),
		counts:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionID returns the unique identifier of this run.
func (s *Streamer) SessionID() string {
	return s.sessionID
}

// Stream emits every row of the named table through the logger.
// It stops early when ctx is canceled and returns the context error.
func (s *Streamer) Stream(ctx context.Context, table string) error {
	rows, err := s.store.Rows(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to read table %s: %w", table, err)
	}

	separator := s.redactor.Separator()
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		message := Serialize(row, separator)
		_, counts := s.redactor.ApplyCount(message)

		// The logger's handler chain performs the redaction that
		// actually reaches the sink; message goes in as cleartext here
		// and nowhere else.
		s.logger.InfoContext(ctx, message)

		s.record(counts)
	}

	s.mu.Lock()
	s.tables = append(s.tables, table)
	s.mu.Unlock()
	return nil
}

// StreamAll streams the given tables, at most `concurrency` of them in
// parallel. The first failing table cancels the remaining work and its
// error is returned.
func (s *Streamer) StreamAll(ctx context.Context, tables []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, table := range tables {
		table := table
		g.Go(func() error {
			return s.Stream(ctx, table)
		})
	}
	return g.Wait()
}

// record folds one row's redaction counts into the run totals.
func (s *Streamer) record(counts map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows++
	for field, n := range counts {
		s.counts[field] += n
	}
}

// Summary returns the audit summary of everything streamed so far.
func (s *Streamer) Summary() *report.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	redactions := make(map[string]int, len(s.counts))
	for field, n := range s.counts {
		redactions[field] = n
	}
	tables := make([]string, len(s.tables))
	copy(tables, s.tables)

	return &report.Summary{
		SessionID:  s.sessionID,
		Tables:     tables,
		Rows:       s.rows,
		Redactions: redactions,
		StartedAt:  s.startedAt,
		Duration:   time.Since(s.startedAt),
	}
}
