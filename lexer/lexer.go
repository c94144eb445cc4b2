package lexer

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/ion/sources"
	"github.com/reusee/ion/syntax"
)

// Lexer converts one source into tokens in a single forward pass.
// It is used once: Tokenize consumes it.
type Lexer struct {
	source *sources.Source
	runes  []rune
	quotes QuoteMode
	logger *slog.Logger

	// end is the index of the first invalid UTF-8 byte, or len(runes)
	end     int
	badByte byte

	tokens   []syntax.Token
	start    syntax.Location
	pos      int
	line     int
	column   int
	consumed bool
}

func New(source *sources.Source, opts Options) *Lexer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	runes, end, badByte := decode(source.Content)
	return &Lexer{
		source:  source,
		runes:   runes,
		end:     end,
		badByte: badByte,
		quotes:  opts.Quotes,
		logger:  logger,
		start:   syntax.StartLocation(source.Name),
		line:    1,
	}
}

// decode splits content into runes and finds the first byte that is not valid UTF-8.
// A literal U+FFFD in the source is not an error.
func decode(content string) (runes []rune, end int, badByte byte) {
	runes = make([]rune, 0, utf8.RuneCountInString(content))
	end = -1
	for i, r := range content {
		if r == utf8.RuneError && end < 0 {
			if _, size := utf8.DecodeRuneInString(content[i:]); size == 1 {
				end = len(runes)
				badByte = content[i]
			}
		}
		runes = append(runes, r)
	}
	if end < 0 {
		end = len(runes)
	}
	return
}

// Tokenize lexes a whole source.
func Tokenize(source *sources.Source, opts Options) ([]syntax.Token, error) {
	return New(source, opts).Tokenize()
}

// Tokenize scans the whole source and returns the tokens in source order.
// On a lexical error no tokens are returned.
func (l *Lexer) Tokenize() ([]syntax.Token, error) {
	if l.consumed {
		panic(fmt.Errorf("lexer for %s already consumed", l.source.Name))
	}
	l.consumed = true
	defer func() {
		l.runes = nil
		l.tokens = nil
	}()

	for !l.isFinished() {
		if err := l.lex(); err != nil {
			return nil, err
		}
	}
	if l.end < len(l.runes) {
		return nil, l.failInvalid()
	}
	return l.tokens, nil
}

func (l *Lexer) lex() error {
	r := l.current()
	l.start = l.location()
	l.advance()

	switch r {
	case '+':
		l.push(syntax.Plus, syntax.Value{})
	case '-':
		l.push(syntax.Minus, syntax.Value{})
	case '*':
		l.push(syntax.Star, syntax.Value{})
	case '%':
		l.push(syntax.Percent, syntax.Value{})
	case '^':
		l.push(syntax.Carat, syntax.Value{})
	case '~':
		l.push(syntax.Tilde, syntax.Value{})
	case ':':
		l.push(syntax.Colon, syntax.Value{})
	case '/':
		l.pushExtended(syntax.Slash, '/', syntax.SlashSlash)
	case '&':
		l.pushExtended(syntax.Ampersand, '&', syntax.AmpersandAmpersand)
	case '|':
		l.pushExtended(syntax.Pipe, '|', syntax.PipePipe)
	case '!':
		l.pushExtended(syntax.Bang, '=', syntax.BangEquals)
	case '=':
		l.pushExtended(syntax.Equals, '=', syntax.EqualsEquals)
	case '<':
		l.pushExtended(syntax.LT, '=', syntax.LTE)
	case '>':
		l.pushExtended(syntax.GT, '=', syntax.GTE)
	case '"', '\'':
		return l.readString(r)

	default:
		switch {
		case unicode.IsSpace(r):
			l.skipWhitespace()
		case unicode.IsLetter(r) || r == '_':
			l.readIdentifierOrKeyword()
		case unicode.IsNumber(r) || r == '.':
			return l.readNumber(r == '.')
		default:
			return l.fail(ErrUnexpectedCharacter, string(r))
		}
	}

	return nil
}

// pushExtended emits extended if the next character is follow, base otherwise.
func (l *Lexer) pushExtended(base syntax.Kind, follow rune, extended syntax.Kind) {
	if l.match(follow) {
		l.push(extended, syntax.Value{})
		return
	}
	l.push(base, syntax.Value{})
}

func (l *Lexer) skipWhitespace() {
	for !l.isFinished() && unicode.IsSpace(l.current()) {
		l.advance()
	}
	l.start = l.location()
}

func (l *Lexer) readIdentifierOrKeyword() {
	for !l.isFinished() && isIdentifierPart(l.current()) {
		l.advance()
	}

	lexeme := l.lexeme()
	switch lexeme {
	case "true":
		l.push(syntax.BoolLiteral, syntax.BoolValue(true))
		return
	case "false":
		l.push(syntax.BoolLiteral, syntax.BoolValue(false))
		return
	}

	if kind, ok := syntax.LookupKind(lexeme); ok {
		l.push(kind, syntax.Value{})
		return
	}

	l.push(syntax.Identifier, syntax.Value{})
}

func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func (l *Lexer) readNumber(decimalUsed bool) error {
	for !l.isFinished() {
		r := l.current()
		if !unicode.IsNumber(r) && r != '.' {
			break
		}
		if r == '.' {
			if decimalUsed {
				return l.fail(ErrMalformedNumberLiteral, l.lexeme()+".")
			}
			decimalUsed = true
		}
		l.advance()
	}

	lexeme := l.lexeme()
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		l.logger.Warn("number literal not representable, using 0",
			"lexeme", lexeme,
			"location", l.start.String(),
		)
		value = 0
	}

	if decimalUsed {
		l.push(syntax.FloatLiteral, syntax.FloatValue(value))
	} else {
		l.push(syntax.IntLiteral, syntax.IntegerValue(value))
	}
	return nil
}

// readString scans a string literal whose opening quote is already consumed.
func (l *Lexer) readString(open rune) error {
	closing := '"'
	if l.quotes == QuoteMatching {
		closing = open
	}

	for !l.isFinished() && l.current() != closing {
		l.advance()
	}
	if !l.match(closing) {
		if l.end < len(l.runes) {
			return l.failInvalid()
		}
		return l.fail(ErrUnterminatedStringLiteral, string(open))
	}

	delim := string(closing)
	lexeme := l.lexeme()
	text := strings.TrimSuffix(strings.TrimPrefix(lexeme, delim), delim)
	l.push(syntax.StringLiteral, syntax.TextValue(text))
	return nil
}

func (l *Lexer) push(kind syntax.Kind, value syntax.Value) {
	l.tokens = append(l.tokens, syntax.Token{
		Kind: kind,
		Span: syntax.Span{
			Start: l.start,
			End:   l.location(),
		},
		Text:  l.lexeme(),
		Value: value,
	})
}

func (l *Lexer) fail(err error, text string) error {
	return &Error{
		Err:      err,
		Text:     text,
		Location: l.start,
		Source:   l.source,
	}
}

// failInvalid reports the invalid UTF-8 byte the scan stopped at.
func (l *Lexer) failInvalid() error {
	l.start = l.location()
	return l.fail(ErrUnexpectedCharacter, fmt.Sprintf("\\x%02x", l.badByte))
}

func (l *Lexer) lexeme() string {
	return string(l.runes[l.start.Position:l.pos])
}

func (l *Lexer) location() syntax.Location {
	return syntax.Location{
		File:     l.start.File,
		Position: l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) current() rune {
	return l.runes[l.pos]
}

func (l *Lexer) match(expected rune) bool {
	if l.isFinished() || l.current() != expected {
		return false
	}
	l.advance()
	return true
}

// advance moves past the current character, keeping line and column in step.
func (l *Lexer) advance() {
	if l.runes[l.pos] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) isFinished() bool {
	return l.pos >= l.end
}
