package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/ion/cmds"
	"github.com/reusee/ion/modes"
)

var (
	lexPaths   = cmds.Collect[string]("lex", "tokenize a file and print its tokens")
	parsePaths = cmds.Collect[string]("parse", "parse a literal expression file")
	tapPath    = cmds.Var[string]("tap", "open a starlark prompt over the tokens of a file")
	queryExpr  = cmds.Var[string]("-query", "evaluate a starlark expression instead of opening a prompt")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.PrintUsage()
		os.Exit(2)
	}
	if len(*lexPaths) == 0 && len(*parsePaths) == 0 && *tapPath == "" {
		cmds.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	failed := false

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		lexFiles LexFiles,
		parseFile ParseFile,
		tapFile TapFile,
	) {

		if len(*lexPaths) > 0 {
			if err := lexFiles(ctx, os.Stdout, *lexPaths); err != nil {
				report(err)
				failed = true
			}
		}

		for _, path := range *parsePaths {
			if err := parseFile(ctx, os.Stdout, path); err != nil {
				report(err)
				failed = true
			}
		}

		if *tapPath != "" {
			if err := tapFile(ctx, os.Stdout, *tapPath, *queryExpr); err != nil {
				report(err)
				failed = true
			}
		}

	})

	if failed {
		os.Exit(1)
	}
}

func report(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			os.Stderr.WriteString(describeError(e))
		}
		return
	}
	os.Stderr.WriteString(describeError(err))
}
