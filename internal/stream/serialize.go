package stream

import (
	"strings"

	"github.com/logscrub/logscrub/internal/storage"
)

// Serialize renders a row as "field=value<separator> " segments joined
// in column order, with the trailing space trimmed:
//
//	name=Bob; email=b@x.com; last_login=2019-11-14 06:14:24;
//
// Values are rendered verbatim. A value containing the separator will
// confuse downstream redaction boundaries; see the redact package
// documentation for that limitation.
func Serialize(row storage.Row, separator string) string {
	var sb strings.Builder
	for _, f := range row {
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
		sb.WriteString(separator)
		sb.WriteByte(' ')
	}
	return strings.TrimSuffix(sb.String(), " ")
}
