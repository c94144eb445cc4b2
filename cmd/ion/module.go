package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ion/debugs"
	"github.com/reusee/ion/ionconfigs"
	"github.com/reusee/ion/lexer"
	"github.com/reusee/ion/sources"
)

type Module struct {
	dscope.Module
	Lexer   lexer.Module
	Debugs  debugs.Module
	Configs ionconfigs.Module
}

type LoadSource func(path string) (*sources.Source, error)

func (Module) LoadSource(
	root ionconfigs.SourceRoot,
) LoadSource {
	return func(path string) (*sources.Source, error) {
		return sources.Load(path, string(root))
	}
}
