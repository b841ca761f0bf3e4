// Package ctxlog threads a *slog.Logger through context.Context so that
// operators and commands log through whatever handler the caller installed.
//
// Library code never configures logging; it asks the context. A context
// without a logger yields slog.Default().
package ctxlog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger returns ctx carrying l. A nil l leaves ctx unchanged.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, l)
}

// With returns ctx carrying the current logger extended with args,
// e.g. With(ctx, "leg", "corr") before handing ctx to a concurrent run.
func With(ctx context.Context, args ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}

	return slog.Default()
}
