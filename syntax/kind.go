package syntax

import (
	"iter"
	"strconv"
)

type Kind uint8

const (
	// operators
	Plus Kind = iota
	Minus
	Star
	Slash
	SlashSlash
	Percent
	Carat
	Tilde
	Ampersand
	Pipe
	AmpersandAmpersand
	PipePipe
	Bang
	LT
	LTE
	GT
	GTE
	Equals
	EqualsEquals
	BangEquals
	Colon

	Identifier
	LetKeyword
	FnKeyword

	// literals
	StringLiteral
	IntLiteral
	FloatLiteral
	BoolLiteral
	NullLiteral

	numKinds
)

var kindNames = [numKinds]string{
	Plus:               "Plus",
	Minus:              "Minus",
	Star:               "Star",
	Slash:              "Slash",
	SlashSlash:         "SlashSlash",
	Percent:            "Percent",
	Carat:              "Carat",
	Tilde:              "Tilde",
	Ampersand:          "Ampersand",
	Pipe:               "Pipe",
	AmpersandAmpersand: "AmpersandAmpersand",
	PipePipe:           "PipePipe",
	Bang:               "Bang",
	LT:                 "LT",
	LTE:                "LTE",
	GT:                 "GT",
	GTE:                "GTE",
	Equals:             "Equals",
	EqualsEquals:       "EqualsEquals",
	BangEquals:         "BangEquals",
	Colon:              "Colon",
	Identifier:         "Identifier",
	LetKeyword:         "LetKeyword",
	FnKeyword:          "FnKeyword",
	StringLiteral:      "StringLiteral",
	IntLiteral:         "IntLiteral",
	FloatLiteral:       "FloatLiteral",
	BoolLiteral:        "BoolLiteral",
	NullLiteral:        "NullLiteral",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsLiteral() bool {
	return k >= StringLiteral && k <= NullLiteral
}

func (k Kind) IsKeyword() bool {
	_, ok := LookupLexeme(k)
	return ok
}

// Kinds iterates every defined kind in declaration order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range numKinds {
			if !yield(k) {
				return
			}
		}
	}
}
