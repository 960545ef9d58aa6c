package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleSummary() *Summary {
	return &Summary{
		SessionID: "3f1c2b6a-0000-4000-8000-000000000000",
		Tables:    []string{"users"},
		Rows:      5,
		Redactions: map[string]int{
			"email":    5,
			"name":     5,
			"password": 5,
			"phone":    4,
			"ssn":      5,
		},
		StartedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Duration:  125 * time.Millisecond,
	}
}

// TestSummary_TotalRedactions tests count aggregation.
func TestSummary_TotalRedactions(t *testing.T) {
	t.Parallel()

	if got := sampleSummary().TotalRedactions(); got != 24 {
		t.Errorf("TotalRedactions() = %d, want 24", got)
	}
}

// TestSummary_SortedFields tests deterministic field ordering.
func TestSummary_SortedFields(t *testing.T) {
	t.Parallel()

	got := sampleSummary().SortedFields()
	want := []string{"email", "name", "password", "phone", "ssn"}

	if len(got) != len(want) {
		t.Fatalf("SortedFields() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedFields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestTextWriter tests the plain text rendering.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewTextWriter(&buf).Write(sampleSummary())
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("Write() reported %d bytes, buffer holds %d", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		"Stream session 3f1c2b6a",
		"rows:       5",
		"redactions: 24",
		"password",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

// TestMarkdownWriter tests the markdown rendering.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(sampleSummary()); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Redaction Audit",
		"## Redactions by Field",
		"Password",
		"Ssn",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

// TestMarkdownWriter_WarnsOnZeroRedactions tests the misconfiguration alert.
func TestMarkdownWriter_WarnsOnZeroRedactions(t *testing.T) {
	t.Parallel()

	summary := sampleSummary()
	summary.Redactions = map[string]int{}

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(summary); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "without a single redaction") {
		t.Errorf("markdown output missing zero-redaction warning:\n%s", buf.String())
	}
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, md bytes.Buffer
	mw := NewMultiWriter(NewTextWriter(&text), NewMarkdownWriter(&md))

	if _, err := mw.Write(sampleSummary()); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	if text.Len() == 0 {
		t.Error("text writer received nothing")
	}
	if md.Len() == 0 {
		t.Error("markdown writer received nothing")
	}
}
