package parser

import (
	"fmt"
	"io"

	"github.com/reusee/ion/syntax"
)

type Expr interface {
	Span() syntax.Span
	Accept(Visitor)
}

type Visitor interface {
	VisitLiteral(*Literal)
}

// Literal is a string, number, boolean or null literal.
type Literal struct {
	Token syntax.Token
}

var _ Expr = new(Literal)

func (l *Literal) Span() syntax.Span {
	return l.Token.Span
}

func (l *Literal) Accept(v Visitor) {
	v.VisitLiteral(l)
}

func (l *Literal) Value() syntax.Value {
	return l.Token.Value
}

// Printer writes a one-line description of each visited node.
type Printer struct {
	W   io.Writer
	Err error
}

var _ Visitor = new(Printer)

func (p *Printer) VisitLiteral(l *Literal) {
	if p.Err != nil {
		return
	}
	_, p.Err = fmt.Fprintf(p.W, "Literal %s %s @ %s\n", l.Token.Kind, l.Value(), l.Span())
}
