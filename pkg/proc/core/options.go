package core

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	RunOptionKey    OptionKey = "run_options"
)

type LoggerOptions struct {
	Logger *slog.Logger
}

type RunOptions struct {
	ID uuid.UUID
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func GetLogger(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return defaultLogger
}

func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, RunOptionKey, RunOptions{ID: id})
}

func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	options, ok := ctx.Value(RunOptionKey).(RunOptions)
	if ok {
		return options.ID, true
	}
	return uuid.Nil, false
}

// EnsureRunID returns ctx unchanged when it already carries a run id and a
// derived context with a fresh one otherwise.
func EnsureRunID(ctx context.Context) (context.Context, uuid.UUID) {
	if id, ok := GetRunID(ctx); ok {
		return ctx, id
	}
	id := uuid.New()
	return WithRunID(ctx, id), id
}
