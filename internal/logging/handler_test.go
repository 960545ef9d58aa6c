package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/logscrub/logscrub/internal/redact"
)

func testRedactor(t *testing.T) *redact.Redactor {
	t.Helper()
	r, err := redact.NewRedactor(
		[]string{"name", "email", "phone", "ssn", "password"}, "***", ";")
	if err != nil {
		t.Fatalf("NewRedactor() unexpected error: %v", err)
	}
	return r
}

// TestRedactHandler_ScrubsMessage tests that flagged field=value segments
// in the record message never reach the underlying handler.
func TestRedactHandler_ScrubsMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewRedactHandler(NewLineHandler(&buf, "user_data", slog.LevelInfo), testRedactor(t))
	logger := slog.New(h)

	logger.Info("name=Bob;email=b@x.com;last_login=2019-11-14;")

	out := buf.String()
	for _, leaked := range []string{"Bob", "b@x.com"} {
		if strings.Contains(out, leaked) {
			t.Errorf("output leaked %q: %q", leaked, out)
		}
	}
	if !strings.Contains(out, "name=***;email=***;last_login=2019-11-14;") {
		t.Errorf("output = %q, want redacted segments with non-flagged field intact", out)
	}
}

// TestRedactHandler_ScrubsAttrs tests that flagged attribute keys are
// masked, on both the Handle path and the WithAttrs path.
func TestRedactHandler_ScrubsAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		log  func(logger *slog.Logger)
	}{
		{
			name: "inline attribute",
			log: func(logger *slog.Logger) {
				logger.Info("row streamed", "password", "hunter2", "table", "users")
			},
		},
		{
			name: "attribute bound via With",
			log: func(logger *slog.Logger) {
				logger.With("password", "hunter2").Info("row streamed", "table", "users")
			},
		},
		{
			name: "attribute inside a group",
			log: func(logger *slog.Logger) {
				logger.Info("row streamed", slog.Group("row",
					slog.String("password", "hunter2"),
					slog.String("table", "users")))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := NewRedactHandler(NewLineHandler(&buf, "user_data", slog.LevelInfo), testRedactor(t))
			tt.log(slog.New(h))

			out := buf.String()
			if strings.Contains(out, "hunter2") {
				t.Errorf("output leaked attribute value: %q", out)
			}
			if !strings.Contains(out, "table=users") {
				t.Errorf("output lost non-flagged attribute: %q", out)
			}
		})
	}
}

// TestRedactHandler_ScrubsStringAttrValues tests that serialized rows
// passed as attribute values are pattern-scrubbed too.
func TestRedactHandler_ScrubsStringAttrValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewRedactHandler(NewLineHandler(&buf, "user_data", slog.LevelInfo), testRedactor(t))
	slog.New(h).Info("row streamed", "row", "ssn=111-22-3333;ip=10.0.0.1;")

	out := buf.String()
	if strings.Contains(out, "111-22-3333") {
		t.Errorf("output leaked value embedded in attribute: %q", out)
	}
	if !strings.Contains(out, "row=ssn=***;ip=10.0.0.1;") {
		t.Errorf("output = %q, want pattern-scrubbed attribute value", out)
	}
}

// TestLineHandler_Format tests the fixed line template.
func TestLineHandler_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewLineHandler(&buf, "user_data", slog.LevelInfo)

	ts := time.Date(2026, 8, 30, 12, 34, 56, 789_000_000, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "name=***;email=***;", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}

	want := "[LOGSCRUB] user_data INFO 2026-08-30 12:34:56.789: name=***;email=***;\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

// TestLineHandler_LevelThreshold tests that records below the threshold
// are dropped.
func TestLineHandler_LevelThreshold(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLineHandler(&buf, "user_data", slog.LevelInfo))

	logger.Debug("should be dropped")
	logger.Info("should be emitted")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("debug record emitted below threshold: %q", out)
	}
	if !strings.Contains(out, "should be emitted") {
		t.Errorf("info record missing: %q", out)
	}
}

// TestLineHandler_GroupKeys tests that group names become dotted key
// prefixes.
func TestLineHandler_GroupKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewLineHandler(&buf, "user_data", slog.LevelInfo))

	logger.WithGroup("db").Info("connected", "host", "localhost")

	if !strings.Contains(buf.String(), "db.host=localhost") {
		t.Errorf("output = %q, want dotted group key", buf.String())
	}
}

// TestFormatterScenario tests the end-to-end formatter contract: a
// record logged under the default PII policy produces a line with the
// fixed prefix and logger name and a fully redacted tail.
func TestFormatterScenario(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("user_data", WithSink(&buf))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Info("name=Bob;email=b@x.com;")

	out := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasPrefix(out, "[LOGSCRUB] user_data INFO ") {
		t.Errorf("line = %q, want prefix %q", out, "[LOGSCRUB] user_data INFO ")
	}
	if !strings.HasSuffix(out, "name=***;email=***;") {
		t.Errorf("line = %q, want suffix %q", out, "name=***;email=***;")
	}
}
