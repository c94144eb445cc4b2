package lexer

import (
	"fmt"
	"log/slog"
)

type QuoteMode uint8

const (
	// QuoteDoubleOnly ends every string literal at the next '"', whichever quote opened it.
	QuoteDoubleOnly QuoteMode = iota
	// QuoteMatching ends a string literal at the quote character that opened it.
	QuoteMatching
)

func (q QuoteMode) String() string {
	switch q {
	case QuoteDoubleOnly:
		return "double"
	case QuoteMatching:
		return "matching"
	}
	return fmt.Sprintf("QuoteMode(%d)", q)
}

func ParseQuoteMode(str string) (QuoteMode, error) {
	switch str {
	case "", "double":
		return QuoteDoubleOnly, nil
	case "matching":
		return QuoteMatching, nil
	}
	return 0, fmt.Errorf("unknown quote mode: %s", str)
}

type Options struct {
	Quotes QuoteMode
	Logger *slog.Logger // optional
}
