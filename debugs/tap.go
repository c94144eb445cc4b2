package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/ion/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Query evaluates one starlark expression with globals bound.
type Query func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Query(
	logger logs.Logger,
) Query {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "query",
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<query>", expr, toStringDict(globals))
		if err != nil {
			logger.DebugContext(ctx, "query failed", "expr", expr, "error", err)
			return nil, err
		}
		return value, nil
	}
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
