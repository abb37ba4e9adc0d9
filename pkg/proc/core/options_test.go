package core

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger_Default(t *testing.T) {
	t.Parallel()

	def := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, def, GetLogger(context.Background(), def))

	custom := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, GetLogger(ctx, def))

	assert.Same(t, def, GetLogger(WithLogger(context.Background(), nil), def))
}

func TestRunID(t *testing.T) {
	t.Parallel()

	_, ok := GetRunID(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetRunID(WithRunID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestEnsureRunID(t *testing.T) {
	t.Parallel()

	ctx, id := EnsureRunID(context.Background())
	assert.NotEqual(t, uuid.Nil, id)

	again, sameID := EnsureRunID(ctx)
	assert.Equal(t, id, sameID)
	assert.Equal(t, ctx, again)
}
