package debugs

import (
	"github.com/reusee/ion/sources"
	"github.com/reusee/ion/syntax"
)

// TokenGlobals binds a token sequence and its source for Tap and Query.
func TokenGlobals(source *sources.Source, tokens []syntax.Token) map[string]any {
	var kinds []string
	for kind := range syntax.Kinds() {
		kinds = append(kinds, kind.String())
	}
	return map[string]any{
		"source": source.Name,
		"lines":  source.Lines(),
		"tokens": tokens,
		"kinds":  kinds,
		// keyword("let") returns the kind name, or "" for non keywords
		"keyword": func(text string) string {
			if kind, ok := syntax.LookupKind(text); ok {
				return kind.String()
			}
			return ""
		},
		"snippet": func(line int, column int) string {
			return source.Snippet(line, column)
		},
	}
}
