package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// LinePrefix is the fixed tag opening every emitted line.
const LinePrefix = "[LOGSCRUB]"

// timeLayout renders timestamps with millisecond precision.
const timeLayout = "2006-01-02 15:04:05.000"

// LineHandler is an slog.Handler that renders records as single lines in
// the fixed format:
//
//	[LOGSCRUB] <name> <LEVEL> <timestamp>: <message> [key=value ...]
//
// The logger name is part of the handler configuration rather than an
// attribute so that the line shape is identical for every record. The
// handler holds only immutable configuration plus a mutex around the
// sink write, so concurrent logging calls are safe as long as the sink
// tolerates interleaved Write calls.
type LineHandler struct {
	// mu serializes writes to the sink. It is shared by pointer across
	// handlers derived with WithAttrs/WithGroup.
	mu *sync.Mutex

	// w is the attached sink. os.Stdout by default via the factory.
	w io.Writer

	// name is the logical logger name embedded in every line.
	name string

	// level is the minimum severity this handler emits.
	level slog.Leveler

	// attrs holds preformatted attributes bound via WithAttrs.
	attrs string

	// group is the dotted prefix applied to attribute keys inside
	// open groups.
	group string
}

// NewLineHandler creates a LineHandler writing to w with the given
// logger name and minimum level. A nil level defaults to slog.LevelInfo.
func NewLineHandler(w io.Writer, name string, level slog.Leveler) *LineHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &LineHandler{
		mu:    &sync.Mutex{},
		w:     w,
		name:  name,
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record into the fixed line format and writes it to
// the sink as a single Write call.
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var sb strings.Builder
	sb.WriteString(LinePrefix)
	sb.WriteByte(' ')
	sb.WriteString(h.name)
	sb.WriteByte(' ')
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(ts.Format(timeLayout))
	sb.WriteString(": ")
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, a)
		return true
	})

	sb.WriteByte('\n')

	// One locked Write per record keeps lines whole even when the sink
	// is shared across goroutines.
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs returns a new handler with the given attributes rendered
// after the message of every subsequent record.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var sb strings.Builder
	for _, a := range attrs {
		h.appendAttr(&sb, a)
	}

	clone := *h
	clone.attrs = h.attrs + sb.String()
	return &clone
}

// WithGroup returns a new handler that prefixes subsequent attribute
// keys with the group name.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

// appendAttr renders one attribute as " key=value", flattening groups
// into dotted keys.
func (h *LineHandler) appendAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		sub := *h
		sub.group = h.group + a.Key + "."
		for _, groupAttr := range a.Value.Group() {
			sub.appendAttr(sb, groupAttr)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(h.group)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
