package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/ion/debugs"
	"github.com/reusee/ion/lexer"
)

// TapFile tokenizes a file and opens a starlark REPL over the tokens, or evaluates
// expr against them when expr is not empty.
type TapFile func(ctx context.Context, w io.Writer, path string, expr string) error

func (Module) TapFile(
	loadSource LoadSource,
	lex lexer.Lex,
	tap debugs.Tap,
	query debugs.Query,
) TapFile {
	return func(ctx context.Context, w io.Writer, path string, expr string) error {
		source, err := loadSource(path)
		if err != nil {
			return err
		}
		stream, err := lex(ctx, source)
		if err != nil {
			return err
		}
		globals := debugs.TokenGlobals(source, stream.Tokens())

		if expr == "" {
			tap(ctx, source.Name, globals)
			return nil
		}
		value, err := query(ctx, expr, globals)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, value.String())
		return err
	}
}
