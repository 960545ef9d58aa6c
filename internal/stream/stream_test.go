package stream

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/logscrub/logscrub/internal/config"
	"github.com/logscrub/logscrub/internal/logging"
	"github.com/logscrub/logscrub/internal/redact"
	"github.com/logscrub/logscrub/internal/storage"
)

// TestSerialize tests row serialization into delimited segments.
func TestSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		row       storage.Row
		separator string
		want      string
	}{
		{
			name: "two fields",
			row: storage.Row{
				{Name: "name", Value: "Bob"},
				{Name: "email", Value: "b@x.com"},
			},
			separator: ";",
			want:      "name=Bob; email=b@x.com;",
		},
		{
			name:      "empty row",
			row:       storage.Row{},
			separator: ";",
			want:      "",
		},
		{
			name: "null column rendered as None",
			row: storage.Row{
				{Name: "phone", Value: "None"},
			},
			separator: ";",
			want:      "phone=None;",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Serialize(tt.row, tt.separator); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestStreamer(t *testing.T, sink *bytes.Buffer, opts ...Option) *Streamer {
	t.Helper()

	store, err := storage.Open(t.TempDir(), "personal_data",
		storage.Options{CreateIfNotExists: true, EnableWAL: true})
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() unexpected error: %v", err)
	}

	policy := config.DefaultPolicy()
	redactor, err := redact.NewRedactor(policy.Fields, policy.Redaction, policy.Separator)
	if err != nil {
		t.Fatalf("NewRedactor() unexpected error: %v", err)
	}

	logger, err := logging.New(logging.UserDataLoggerName, logging.WithSink(sink))
	if err != nil {
		t.Fatalf("logging.New() unexpected error: %v", err)
	}

	return New(store, logger, redactor, opts...)
}

// TestStreamer_Stream tests the row-to-log flow end to end: rows leave
// the store in cleartext and reach the sink fully redacted.
func TestStreamer_Stream(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	s := newTestStreamer(t, &sink)

	if err := s.Stream(context.Background(), "users"); err != nil {
		t.Fatalf("Stream() unexpected error: %v", err)
	}

	out := sink.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("sink received %d lines, want 5", len(lines))
	}

	// No flagged value may survive to the sink.
	for _, leaked := range []string{
		"Marlene Wood", "hwestiii@att.net", "(473) 401-4253", "261-72-6780",
	} {
		if strings.Contains(out, leaked) {
			t.Errorf("sink leaked %q", leaked)
		}
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, "[LOGSCRUB] user_data INFO ") {
			t.Errorf("line = %q, want the fixed prefix and logger name", line)
		}
		for _, field := range []string{"name", "email", "phone", "ssn", "password"} {
			if !strings.Contains(line, field+"=***;") {
				t.Errorf("line = %q, want %s redacted", line, field)
			}
		}
		// Non-flagged columns stream through untouched.
		if !strings.Contains(line, "ip=") || strings.Contains(line, "ip=***") {
			t.Errorf("line = %q, want ip field intact", line)
		}
	}
}

// TestStreamer_Summary tests the audit counters.
func TestStreamer_Summary(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	s := newTestStreamer(t, &sink)

	if err := s.Stream(context.Background(), "users"); err != nil {
		t.Fatalf("Stream() unexpected error: %v", err)
	}

	summary := s.Summary()
	if summary.Rows != 5 {
		t.Errorf("Rows = %d, want 5", summary.Rows)
	}
	if summary.SessionID == "" {
		t.Error("SessionID is empty")
	}
	if len(summary.Tables) != 1 || summary.Tables[0] != "users" {
		t.Errorf("Tables = %v, want [users]", summary.Tables)
	}
	for _, field := range []string{"name", "email", "phone", "ssn", "password"} {
		if summary.Redactions[field] != 5 {
			t.Errorf("Redactions[%s] = %d, want 5", field, summary.Redactions[field])
		}
	}
	if _, ok := summary.Redactions["ip"]; ok {
		t.Error("Redactions contains non-flagged field ip")
	}
}

// TestStreamer_UnknownTable tests error propagation from the store.
func TestStreamer_UnknownTable(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	s := newTestStreamer(t, &sink)

	if err := s.Stream(context.Background(), "missing"); err == nil {
		t.Fatal("Stream() succeeded on an unknown table")
	}
	if sink.Len() != 0 {
		t.Errorf("sink received output for a failed stream: %q", sink.String())
	}
}

// TestStreamer_CanceledContext tests that cancellation stops the stream.
func TestStreamer_CanceledContext(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	s := newTestStreamer(t, &sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Stream(ctx, "users"); err == nil {
		t.Fatal("Stream() ignored a canceled context")
	}
}

// TestStreamer_StreamAll tests concurrent multi-table streaming.
func TestStreamer_StreamAll(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	s := newTestStreamer(t, &sink, WithConcurrency(2))

	if err := s.StreamAll(context.Background(), []string{"users"}); err != nil {
		t.Fatalf("StreamAll() unexpected error: %v", err)
	}

	summary := s.Summary()
	if summary.Rows != 5 {
		t.Errorf("Rows = %d, want 5", summary.Rows)
	}
}
