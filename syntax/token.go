package syntax

import (
	"fmt"
	"strconv"
)

// Token is a classified lexeme. Text is the exact source text covered by Span.
type Token struct {
	Kind  Kind
	Span  Span
	Text  string
	Value Value
}

// Float64 returns the numeric payload. It panics if the token carries no number.
func (t Token) Float64() float64 {
	v, ok := t.Value.Number()
	if !ok {
		panic(t.payloadMismatch("number"))
	}
	return v
}

// Bool returns the boolean payload. It panics if the token carries no boolean.
func (t Token) Bool() bool {
	v, ok := t.Value.Boolean()
	if !ok {
		panic(t.payloadMismatch("boolean"))
	}
	return v
}

// Str returns the dequoted string payload. It panics if the token carries no text.
func (t Token) Str() string {
	v, ok := t.Value.Text()
	if !ok {
		panic(t.payloadMismatch("text"))
	}
	return v
}

func (t Token) payloadMismatch(want string) error {
	return fmt.Errorf("token %s at %s holds %s payload, not %s",
		t.Kind, t.Span.Start, t.Value.Kind(), want)
}

func (t Token) String() string {
	s := t.Kind.String() + " " + strconv.Quote(t.Text) + " @ " + t.Span.String()
	if !t.Value.IsAbsent() {
		s += " [" + t.Value.String() + "]"
	}
	return s
}
