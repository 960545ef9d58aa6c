package logging

import (
	"context"
	"log/slog"

	"github.com/logscrub/logscrub/internal/redact"
)

// RedactHandler wraps an slog.Handler so that every record is scrubbed
// before the underlying handler sees it. The message text is run through
// the redactor's field=value patterns, and structured attributes whose
// keys are flagged are replaced wholesale with the redaction token.
//
// A handler wrapper, rather than a custom logger type, keeps the
// guarantee structural: any logger built on this handler redacts on
// every path, including loggers derived via With and WithGroup.
type RedactHandler struct {
	// handler is the underlying slog handler that receives scrubbed records.
	handler slog.Handler

	// redactor holds the immutable redaction rules shared by all records.
	redactor *redact.Redactor
}

// NewRedactHandler creates a RedactHandler that scrubs records with the
// given redactor before delegating to handler. If handler is nil, the
// returned RedactHandler delegates to slog.Default().Handler().
func NewRedactHandler(handler slog.Handler, redactor *redact.Redactor) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler, redactor: redactor}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle scrubs the record's message and attributes, then passes the
// sanitized record to the underlying handler.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	scrubbed := slog.NewRecord(r.Time, r.Level, h.redactor.Apply(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		scrubbed.AddAttrs(h.scrubAttr(a))
		return true
	})

	return h.handler.Handle(ctx, scrubbed)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are scrubbed before being added, so values bound early via
// Logger.With cannot bypass redaction either.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	scrubbed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		scrubbed[i] = h.scrubAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(scrubbed), redactor: h.redactor}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name), redactor: h.redactor}
}

// scrubAttr scrubs a single attribute, recursively handling groups.
// A flagged key masks the whole value regardless of its kind; string
// values additionally get the field=value pattern scrub so that
// serialized rows passed as attribute values stay covered.
func (h *RedactHandler) scrubAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		scrubbed := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			scrubbed[i] = h.scrubAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(scrubbed...)}
	}

	if h.redactor.Flagged(a.Key) {
		return slog.String(a.Key, h.redactor.Redaction())
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, h.redactor.Apply(a.Value.String()))
	}

	return a
}
