package syntax

import (
	"errors"
	"fmt"
	"iter"

	"github.com/samber/lo"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEOF   = errors.New("unexpected end of tokens")
)

// ContractError is the panic value of Stream operations used out of contract,
// such as reading past the end or consuming a token of the wrong kind.
type ContractError struct {
	Op  string
	Msg string
}

func (c *ContractError) Error() string {
	return "token stream: " + c.Op + ": " + c.Msg
}

// Stream is a forward cursor over a finished token sequence.
// The sequence is never mutated; each reader should hold its own Stream (see Fork).
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{
		tokens: tokens,
	}
}

// Fork returns an independent cursor at the same position over the same tokens.
func (s *Stream) Fork() *Stream {
	return &Stream{
		tokens: s.tokens,
		pos:    s.pos,
	}
}

func (s *Stream) Len() int {
	return len(s.tokens)
}

func (s *Stream) Position() int {
	return s.pos
}

// Tokens returns the underlying sequence. Callers must not modify it.
func (s *Stream) Tokens() []Token {
	return s.tokens
}

func (s *Stream) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, token := range s.tokens {
			if !yield(i, token) {
				return
			}
		}
	}
}

func (s *Stream) At(index int) Token {
	if index < 0 || index >= len(s.tokens) {
		panic(&ContractError{
			Op:  "at",
			Msg: fmt.Sprintf("index %d out of range [0, %d)", index, len(s.tokens)),
		})
	}
	return s.tokens[index]
}

func (s *Stream) First() Token {
	return s.At(0)
}

func (s *Stream) Current() Token {
	return s.Peek(0)
}

func (s *Stream) Peek(offset int) Token {
	i := s.pos + offset
	if offset < 0 || i >= len(s.tokens) {
		panic(&ContractError{
			Op:  "peek",
			Msg: fmt.Sprintf("offset %d from %d past end %d", offset, s.pos, len(s.tokens)),
		})
	}
	return s.tokens[i]
}

func (s *Stream) PeekPrevious(offset int) Token {
	i := s.pos - offset
	if offset < 0 || i < 0 || i >= len(s.tokens) {
		panic(&ContractError{
			Op:  "peek previous",
			Msg: fmt.Sprintf("offset %d from %d out of range [0, %d)", offset, s.pos, len(s.tokens)),
		})
	}
	return s.tokens[i]
}

// Advance returns the current token and moves past it.
func (s *Stream) Advance() Token {
	token := s.Current()
	s.pos++
	return token
}

func (s *Stream) IsFinished() bool {
	return s.IsFinishedAt(0)
}

func (s *Stream) IsFinishedAt(offset int) bool {
	return s.pos+offset >= len(s.tokens)
}

func (s *Stream) Check(kind Kind) bool {
	return s.CheckAt(kind, 0)
}

// CheckAt reports whether the token at offset has kind. Offsets past the end are false.
func (s *Stream) CheckAt(kind Kind, offset int) bool {
	return !s.IsFinishedAt(offset) && s.Peek(offset).Kind == kind
}

func (s *Stream) CheckSet(kinds ...Kind) bool {
	return s.CheckSetAt(0, kinds...)
}

func (s *Stream) CheckSetAt(offset int, kinds ...Kind) bool {
	if s.IsFinishedAt(offset) {
		return false
	}
	return lo.Contains(kinds, s.Peek(offset).Kind)
}

func (s *Stream) Match(kind Kind) bool {
	if !s.Check(kind) {
		return false
	}
	s.pos++
	return true
}

// Consume requires the current token to be of kind and moves past it.
// It panics when the stream is exhausted or the kind differs.
func (s *Stream) Consume(kind Kind) Token {
	if s.IsFinished() {
		panic(&ContractError{
			Op:  "consume",
			Msg: fmt.Sprintf("expected %s, got EOF", kind),
		})
	}
	token := s.Advance()
	if token.Kind != kind {
		panic(&ContractError{
			Op:  "consume",
			Msg: fmt.Sprintf("expected %s, got %s at %s", kind, token.Kind, token.Span.Start),
		})
	}
	return token
}

// Expect is Consume with an error result. The cursor does not move on failure.
func (s *Stream) Expect(kind Kind) (Token, error) {
	if s.IsFinished() {
		return Token{}, fmt.Errorf("expected %s: %w", kind, ErrUnexpectedEOF)
	}
	token := s.Current()
	if token.Kind != kind {
		return Token{}, fmt.Errorf("expected %s, got %s at %s: %w",
			kind, token.Kind, token.Span.Start, ErrUnexpectedToken)
	}
	s.pos++
	return token, nil
}
