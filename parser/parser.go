package parser

import (
	"fmt"

	"github.com/reusee/ion/syntax"
)

var literalKinds = []syntax.Kind{
	syntax.IntLiteral,
	syntax.FloatLiteral,
	syntax.StringLiteral,
	syntax.BoolLiteral,
	syntax.NullLiteral,
}

type Parser struct {
	tokens *syntax.Stream
}

func New(tokens *syntax.Stream) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse parses a single expression that must span all tokens.
func Parse(tokens *syntax.Stream) (Expr, error) {
	p := New(tokens)
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !tokens.IsFinished() {
		tok := tokens.Current()
		return nil, fmt.Errorf("%s %q after expression at %s: %w",
			tok.Kind, tok.Text, tok.Span.Start, syntax.ErrUnexpectedToken)
	}
	return expr, nil
}

// ParseExpression parses one expression and leaves the rest of the stream untouched.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	if p.tokens.CheckSet(literalKinds...) {
		return &Literal{
			Token: p.tokens.Advance(),
		}, nil
	}

	if p.tokens.IsFinished() {
		return nil, fmt.Errorf("expecting expression: %w", syntax.ErrUnexpectedEOF)
	}
	tok := p.tokens.Current()
	return nil, fmt.Errorf("expecting expression, got %s %q at %s: %w",
		tok.Kind, tok.Text, tok.Span.Start, syntax.ErrUnexpectedToken)
}
