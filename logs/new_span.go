package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span of ctx if parent is empty.
// args are logged with the span start record.
type NewSpan func(ctx context.Context, parent Span, what string, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, what string, args ...any) (context.Context, Span) {

		var creator Span
		if v, ok := ctx.Value(SpanKey).(Span); ok {
			creator = v
		}
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, what, args...)

		return ctx, span
	}
}
