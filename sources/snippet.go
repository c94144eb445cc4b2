package sources

import (
	"strings"

	"golang.org/x/text/width"
)

// Snippet renders the 1-based line and a caret under the 0-based column.
// It returns an empty string if line is out of range.
func (s *Source) Snippet(line int, column int) string {
	lines := s.Lines()
	idx := line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	text := strings.TrimRight(lines[idx], "\r")

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n")
	for i, r := range []rune(text) {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		for range runeWidth(r) {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")
	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
