package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	ctx := With(WithLogger(context.Background(), logger), "action", "like")

	FromContext(ctx).Info("Rendered.")

	assert.Contains(t, out.String(), "action=like")
	assert.Contains(t, out.String(), "Rendered.")
}
