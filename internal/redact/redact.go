package redact

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultRedaction is the placeholder substituted for sensitive values.
const DefaultRedaction = "***"

// DefaultSeparator is the delimiter marking the end of a field=value segment.
const DefaultSeparator = ";"

// Redact returns message with the value of every listed field obfuscated.
// For each name in fields, every substring of the form
// "name=<value><separator>" is rewritten to "name=<redaction><separator>".
//
// The value match is non-greedy, so it ends at the first following
// separator. Fields absent from the message are skipped silently, and an
// empty fields slice returns the message unchanged. Field names and the
// separator are treated as literal text, never as pattern syntax.
//
// Redact is a pure function with no shared state and is safe to call
// concurrently. For repeated use with a fixed field list, prefer a
// precompiled Redactor.
func Redact(fields []string, redaction, message, separator string) string {
	for _, field := range fields {
		re := regexp.MustCompile(regexp.QuoteMeta(field) + `=.*?` + regexp.QuoteMeta(separator))
		message = re.ReplaceAllLiteralString(message, field+"="+redaction+separator)
	}
	return message
}

// Redactor is a precompiled set of redaction rules.
// It is immutable after construction and safe for concurrent use from
// multiple goroutines without synchronization.
type Redactor struct {
	// fields are the flagged field names, in the order given at construction.
	fields []string

	// flagged allows O(1) exact-match lookups for attribute-level masking.
	flagged map[string]bool

	// patterns holds one compiled pattern per field, index-aligned with fields.
	patterns []*regexp.Regexp

	// replacements holds the literal replacement per field, index-aligned
	// with fields.
	replacements []string

	redaction string
	separator string
}

// NewRedactor compiles redaction rules for the given field names.
// The field list may be empty, in which case Apply is the identity
// function. Construction fails on an empty separator, an empty field
// name, a duplicate field name, or a field name containing "=" or the
// separator, since any of those make segment boundaries ambiguous.
// Validation happens here rather than per message so that a misconfigured
// field list surfaces at startup, not in the middle of a log stream.
func NewRedactor(fields []string, redaction, separator string) (*Redactor, error) {
	if separator == "" {
		return nil, ErrEmptySeparator
	}

	r := &Redactor{
		fields:       make([]string, 0, len(fields)),
		flagged:      make(map[string]bool, len(fields)),
		patterns:     make([]*regexp.Regexp, 0, len(fields)),
		replacements: make([]string, 0, len(fields)),
		redaction:    redaction,
		separator:    separator,
	}

	for _, field := range fields {
		if field == "" {
			return nil, ErrEmptyFieldName
		}
		if strings.Contains(field, "=") || strings.Contains(field, separator) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldName, field)
		}
		if r.flagged[field] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, field)
		}

		r.fields = append(r.fields, field)
		r.flagged[field] = true
		r.patterns = append(r.patterns, regexp.MustCompile(
			regexp.QuoteMeta(field)+`=.*?`+regexp.QuoteMeta(separator)))
		r.replacements = append(r.replacements, field+"="+redaction+separator)
	}

	return r, nil
}

// MustNewRedactor is like NewRedactor but panics on invalid input.
// It is intended for package-level defaults built from trusted constants.
func MustNewRedactor(fields []string, redaction, separator string) *Redactor {
	r, err := NewRedactor(fields, redaction, separator)
	if err != nil {
		panic(err)
	}
	return r
}

// Apply returns message with every flagged field's value obfuscated.
// It never fails: messages that contain none of the flagged fields are
// returned unchanged, byte for byte.
func (r *Redactor) Apply(message string) string {
	for i, re := range r.patterns {
		message = re.ReplaceAllLiteralString(message, r.replacements[i])
	}
	return message
}

// ApplyCount is Apply plus a per-field count of how many segments were
// rewritten. The counts map contains entries only for fields that
// matched at least once. It is used by the audit summary and is slightly
// more expensive than Apply.
func (r *Redactor) ApplyCount(message string) (string, map[string]int) {
	counts := make(map[string]int)
	for i, re := range r.patterns {
		n := len(re.FindAllStringIndex(message, -1))
		if n == 0 {
			continue
		}
		counts[r.fields[i]] = n
		message = re.ReplaceAllLiteralString(message, r.replacements[i])
	}
	return message, counts
}

// Flagged reports whether name is one of the configured field names.
// The comparison is exact and case-sensitive.
func (r *Redactor) Flagged(name string) bool {
	return r.flagged[name]
}

// Fields returns a copy of the configured field names in construction order.
func (r *Redactor) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Redaction returns the configured replacement token.
func (r *Redactor) Redaction() string {
	return r.redaction
}

// Separator returns the configured segment delimiter.
func (r *Redactor) Separator() string {
	return r.separator
}
