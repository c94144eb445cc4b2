package lexer

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/dscope"
	"github.com/reusee/ion/ionconfigs"
	"github.com/reusee/ion/logs"
	"github.com/reusee/ion/modes"
	"github.com/reusee/ion/sources"
	"github.com/reusee/ion/syntax"
)

type Module struct {
	dscope.Module
	Configs ionconfigs.Module
}

// Lex tokenizes one source and wraps the tokens in a stream.
type Lex func(ctx context.Context, source *sources.Source) (*syntax.Stream, error)

func (Module) Lex(
	logger logs.Logger,
	newSpan logs.NewSpan,
	quotes ionconfigs.Quotes,
	mode modes.Mode,
) Lex {
	quoteMode, quotesErr := ParseQuoteMode(string(quotes))

	return func(ctx context.Context, source *sources.Source) (*syntax.Stream, error) {
		if quotesErr != nil {
			return nil, quotesErr
		}

		ctx, _ = newSpan(ctx, "", "tokenize",
			"source", source.Name,
			"quotes", quoteMode.String(),
		)

		tokens, err := Tokenize(source, Options{
			Quotes: quoteMode,
			Logger: logger,
		})
		if err != nil {
			logger.DebugContext(ctx, "tokenize failed", "error", err)
			return nil, logs.WrapSpan(ctx, err)
		}

		if mode.Checked() {
			for _, token := range tokens {
				if err := checkToken(token, source.Name); err != nil {
					panic(err)
				}
			}
		}

		logger.DebugContext(ctx, "tokenized", "tokens", len(tokens))
		return syntax.NewStream(tokens), nil
	}
}

// checkToken verifies the span invariants every produced token must hold.
func checkToken(token syntax.Token, file string) error {
	if !token.Span.Valid() {
		return fmt.Errorf("invalid span %s for %s", token.Span, token.Kind)
	}
	if token.Span.Start.File != file {
		return fmt.Errorf("span file %q of %s, want %q", token.Span.Start.File, token.Kind, file)
	}
	if n := utf8.RuneCountInString(token.Text); n != token.Span.Len() {
		return fmt.Errorf("text %q of %s has %d characters, span length %d",
			token.Text, token.Kind, n, token.Span.Len())
	}
	wantPayload := token.Kind.IsLiteral() && token.Kind != syntax.NullLiteral
	if wantPayload == token.Value.IsAbsent() {
		return fmt.Errorf("payload %s does not fit %s", token.Value.Kind(), token.Kind)
	}
	return nil
}
