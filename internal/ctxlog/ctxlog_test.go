package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/seisgrad/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctxlog.FromContext(ctx).Info("hello", "k", 1)

	assert.Same(t, logger, ctxlog.FromContext(ctx))
	assert.Contains(t, buf.String(), "msg=hello k=1")
}

func TestFromContext_Fallback(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestWithLogger_NilKeepsParent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxlog.FromContext(ctxlog.WithLogger(ctx, nil)))
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctxlog.FromContext(ctxlog.With(ctx, "leg", "corr")).Info("step")
	ctxlog.FromContext(ctx).Info("plain")

	assert.Contains(t, buf.String(), "msg=step leg=corr")
	assert.Contains(t, buf.String(), "msg=plain\n", "the parent context is not modified")
}
