package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/reusee/ion/ionconfigs"
	"github.com/reusee/ion/lexer"
	"github.com/reusee/ion/logs"
	"github.com/reusee/ion/sources"
	"github.com/reusee/ion/syncs"
	"github.com/reusee/ion/syntax"
	"github.com/samber/lo"
)

type lexResult struct {
	source *sources.Source
	stream *syntax.Stream
	err    error
}

// LexFiles tokenizes files concurrently and prints their tokens in argument order.
type LexFiles func(ctx context.Context, w io.Writer, paths []string) error

func (Module) LexFiles(
	loadSource LoadSource,
	lex lexer.Lex,
	jobs ionconfigs.Jobs,
	newSpan logs.NewSpan,
) LexFiles {
	return func(ctx context.Context, w io.Writer, paths []string) error {
		paths = lo.Uniq(paths)
		ctx, _ = newSpan(ctx, "", "lex files", "files", len(paths), "jobs", int(jobs))

		results := make([]lexResult, len(paths))
		sem := syncs.NewSemaphore(max(int(jobs), 1))
		var wg sync.WaitGroup
		for i, path := range paths {
			wg.Go(func() {
				if err := sem.AcquireContext(ctx); err != nil {
					results[i].err = err
					return
				}
				defer sem.Release()
				source, err := loadSource(path)
				if err != nil {
					results[i].err = err
					return
				}
				results[i].source = source
				results[i].stream, results[i].err = lex(ctx, source)
			})
		}
		wg.Wait()

		var errs []error
		for _, result := range results {
			if result.err != nil {
				errs = append(errs, result.err)
				continue
			}
			for _, token := range result.stream.Tokens() {
				if _, err := fmt.Fprintf(w, "%s\n", token); err != nil {
					return err
				}
			}
		}
		return errors.Join(errs...)
	}
}

// describeError renders lexical errors with their source line.
func describeError(err error) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Snippet()
	}
	return err.Error() + "\n"
}
