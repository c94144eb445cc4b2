package lexer

import (
	"errors"
	"strings"

	"github.com/reusee/ion/sources"
	"github.com/reusee/ion/syntax"
)

var (
	ErrUnexpectedCharacter       = errors.New("unexpected character")
	ErrUnterminatedStringLiteral = errors.New("unterminated string literal")
	ErrMalformedNumberLiteral    = errors.New("malformed number literal")
)

// Error is a fatal lexical error. Err is one of the Err* sentinels.
type Error struct {
	Err      error
	Text     string // offending character or partial lexeme
	Location syntax.Location
	Source   *sources.Source
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Text != "" {
		sb.WriteString(" '")
		sb.WriteString(e.Text)
		sb.WriteString("'")
	}
	sb.WriteString(" at ")
	sb.WriteString(e.Location.String())
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Snippet renders the message followed by the source line and a caret.
func (e *Error) Snippet() string {
	msg := e.Error() + "\n"
	if e.Source == nil {
		return msg
	}
	return msg + e.Source.Snippet(e.Location.Line, e.Location.Column)
}
