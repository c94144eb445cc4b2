package logs

// Span identifies one unit of work, such as tokenizing a single file.
// Every record logged with a context carrying a span is tagged with it.
type Span string

type spanKey struct{}

var SpanKey spanKey
