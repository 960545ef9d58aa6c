package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/logscrub/logscrub/internal/config"
	"github.com/logscrub/logscrub/internal/redact"
)

// UserDataLoggerName is the logical name of the logger that receives
// serialized user rows.
const UserDataLoggerName = "user_data"

// options collects the configurable parts of a redacting logger.
// Everything defaults to the fixed policy: stdout sink, Info level, the
// built-in PII field list, "***" token, ";" separator.
type options struct {
	sink      io.Writer
	level     slog.Leveler
	fields    []string
	redaction string
	separator string
}

// Option configures a redacting logger at construction time.
// Options are only honored the first time a name is constructed; later
// Get calls for the same name return the cached logger untouched.
type Option func(*options)

// WithSink attaches the handler's output to w instead of os.Stdout.
func WithSink(w io.Writer) Option {
	return func(o *options) {
		o.sink = w
	}
}

// WithLevel sets the severity threshold. Default is slog.LevelInfo.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFields replaces the flagged field list. Default is the built-in
// PII field list (name, email, phone, ssn, password).
func WithFields(fields []string) Option {
	return func(o *options) {
		o.fields = fields
	}
}

// WithRedaction sets the replacement token. Default is "***".
func WithRedaction(token string) Option {
	return func(o *options) {
		o.redaction = token
	}
}

// WithSeparator sets the segment delimiter. Default is ";".
func WithSeparator(separator string) Option {
	return func(o *options) {
		o.separator = separator
	}
}

// registry caches loggers by name so repeated Get calls return the same
// instance instead of stacking duplicate handler chains.
var registry = struct {
	mu      sync.Mutex
	loggers map[string]*slog.Logger
}{loggers: make(map[string]*slog.Logger)}

// New constructs a redacting logger without registering it.
// The handler chain is RedactHandler -> LineHandler -> sink, so the line
// template is only ever applied to post-redaction content. Construction
// fails only on an invalid redaction configuration (see redact.NewRedactor).
func New(name string, opts ...Option) (*slog.Logger, error) {
	o := &options{
		sink:      os.Stdout,
		level:     slog.LevelInfo,
		fields:    config.PIIFields(),
		redaction: config.DefaultRedaction,
		separator: config.DefaultSeparator,
	}
	for _, opt := range opts {
		opt(o)
	}

	r, err := redact.NewRedactor(o.fields, o.redaction, o.separator)
	if err != nil {
		return nil, err
	}

	line := NewLineHandler(o.sink, name, o.level)
	return slog.New(NewRedactHandler(line, r)), nil
}

// Get returns the process-wide logger for name, constructing it on first
// use. Construction is guarded by a mutex, so concurrent first calls for
// the same name still produce exactly one logger with exactly one
// handler chain. Options are applied only on the constructing call;
// callers asking for an existing name get the cached instance as is.
func Get(name string, opts ...Option) (*slog.Logger, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if logger, ok := registry.loggers[name]; ok {
		return logger, nil
	}

	logger, err := New(name, opts...)
	if err != nil {
		return nil, err
	}
	registry.loggers[name] = logger
	return logger, nil
}

// UserData returns the shared "user_data" logger configured with the
// fixed PII field list at level Info, writing to stdout. The defaults
// are trusted constants, so construction cannot fail.
func UserData() *slog.Logger {
	logger, err := Get(UserDataLoggerName)
	if err != nil {
		// Unreachable with the built-in defaults; a panic here means the
		// defaults themselves are broken.
		panic(err)
	}
	return logger
}

// Reset drops every cached logger. It exists for tests that need a clean
// registry; production code has no reason to call it.
func Reset() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers = make(map[string]*slog.Logger)
}
