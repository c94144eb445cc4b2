package main

import (
	"context"
	"io"

	"github.com/reusee/ion/lexer"
	"github.com/reusee/ion/parser"
)

// ParseFile parses a file holding a single literal expression and prints its tree.
type ParseFile func(ctx context.Context, w io.Writer, path string) error

func (Module) ParseFile(
	loadSource LoadSource,
	lex lexer.Lex,
) ParseFile {
	return func(ctx context.Context, w io.Writer, path string) error {
		source, err := loadSource(path)
		if err != nil {
			return err
		}
		stream, err := lex(ctx, source)
		if err != nil {
			return err
		}
		expr, err := parser.Parse(stream)
		if err != nil {
			return err
		}
		printer := &parser.Printer{W: w}
		expr.Accept(printer)
		return printer.Err
	}
}
