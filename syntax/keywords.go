package syntax

import (
	"fmt"
	"iter"
	"sync"
)

var keywordEntries = []struct {
	text string
	kind Kind
}{
	{"let", LetKeyword},
	{"fn", FnKeyword},
}

var keywordMaps = sync.OnceValues(func() (map[string]Kind, map[Kind]string) {
	byText := make(map[string]Kind, len(keywordEntries))
	byKind := make(map[Kind]string, len(keywordEntries))
	for _, entry := range keywordEntries {
		if _, ok := byText[entry.text]; ok {
			panic(fmt.Errorf("duplicated keyword %q", entry.text))
		}
		if _, ok := byKind[entry.kind]; ok {
			panic(fmt.Errorf("duplicated keyword kind %s", entry.kind))
		}
		byText[entry.text] = entry.kind
		byKind[entry.kind] = entry.text
	}
	return byText, byKind
})

// LookupKind returns the keyword kind of text. Matching is exact and case-sensitive.
func LookupKind(text string) (Kind, bool) {
	byText, _ := keywordMaps()
	kind, ok := byText[text]
	return kind, ok
}

// LookupLexeme returns the canonical text of a keyword kind.
func LookupLexeme(kind Kind) (string, bool) {
	_, byKind := keywordMaps()
	text, ok := byKind[kind]
	return text, ok
}

func Keywords() iter.Seq2[string, Kind] {
	return func(yield func(string, Kind) bool) {
		for _, entry := range keywordEntries {
			if !yield(entry.text, entry.kind) {
				return
			}
		}
	}
}
