package report

import (
	"fmt"
	"io"
)

// Writer defines the interface for audit summary output.
// Implementations render the summary in a specific format to a
// configured destination.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// Useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// TextWriter renders the summary as plain text for terminal output.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write outputs the summary as aligned plain text.
func (w *TextWriter) Write(summary *Summary) (int, error) {
	var total int

	n, err := fmt.Fprintf(w.output,
		"Stream session %s\n  tables:     %d\n  rows:       %d\n  redactions: %d\n  duration:   %s\n",
		summary.SessionID, len(summary.Tables), summary.Rows,
		summary.TotalRedactions(), summary.Duration.Round(summaryDurationUnit))
	total += n
	if err != nil {
		return total, err
	}

	for _, field := range summary.SortedFields() {
		n, err := fmt.Fprintf(w.output, "    %-10s %d\n", field, summary.Redactions[field])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
