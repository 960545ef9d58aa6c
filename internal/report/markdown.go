package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// summaryDurationUnit is the precision durations are rounded to in
// rendered reports.
const summaryDurationUnit = time.Millisecond

// MarkdownWriter outputs the audit summary in GitHub Flavored Markdown.
// This format is meant for audit records that get attached to tickets or
// checked into documentation.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the summary as markdown with a per-field redaction table.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Redaction Audit")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Session", "Tables", "Rows", "Redactions", "Duration"},
		Rows: [][]string{{
			summary.SessionID,
			strconv.Itoa(len(summary.Tables)),
			strconv.Itoa(summary.Rows),
			strconv.Itoa(summary.TotalRedactions()),
			summary.Duration.Round(summaryDurationUnit).String(),
		}},
	})
	md.PlainText("")

	w.writeFieldTable(md, summary)
	w.writeAlert(md, summary)

	return len(md.String()), md.Build()
}

// writeFieldTable renders the per-field redaction counts.
func (w *MarkdownWriter) writeFieldTable(md *markdown.Markdown, summary *Summary) {
	md.H2("Redactions by Field")
	md.PlainText("")

	fields := summary.SortedFields()
	if len(fields) == 0 {
		md.PlainText("No values were redacted.")
		md.PlainText("")
		return
	}

	caser := cases.Title(language.English)
	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{
			caser.String(field),
			strconv.Itoa(summary.Redactions[field]),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Field", "Values Redacted"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert flags runs whose numbers look suspicious.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *Summary) {
	switch {
	case summary.Rows > 0 && summary.TotalRedactions() == 0:
		md.Warningf("%d rows were streamed without a single redaction. "+
			"Verify that the flagged field list matches the table schema.", summary.Rows)
	case summary.Rows == 0:
		md.Note("No rows were streamed in this session.")
	default:
		md.Tip("All streamed rows passed through redaction.")
	}
	md.PlainText("")
}
