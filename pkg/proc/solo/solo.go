package solo

import (
	"context"
	"errors"

	"github.com/ib-77/procompose/pkg/proc"
)

// Map replaces the content with onData(content). Records without content are
// left unchanged.
func Map(onData func(ctx context.Context, data string) string) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		data, ok := in.Data()
		if !ok {
			return nil, nil
		}
		return proc.Content(onData(ctx, data)), nil
	})
}

// Try is Map for functions that may fail; the error aborts the chain.
func Try(onData func(ctx context.Context, data string) (string, error)) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		data, ok := in.Data()
		if !ok {
			return nil, nil
		}
		out, err := onData(ctx, data)
		if err != nil {
			return nil, err
		}
		return proc.Content(out), nil
	})
}

func Tee(sideEffect func(ctx context.Context, in proc.Record)) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		sideEffect(ctx, in)
		return proc.Empty(), nil
	})
}

func Validate(validate func(ctx context.Context, in proc.Record) (isValid bool, errMsg string)) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return nil, errors.New(errMsg)
		}
		return proc.Empty(), nil
	})
}

// When runs p only when condition holds for the incoming record.
func When(condition func(ctx context.Context, in proc.Record) bool, p proc.Processor) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		if !condition(ctx, in) {
			return proc.Empty(), nil
		}
		return p.Process(ctx, in)
	})
}

// ContentType is a When condition matching the "content_type" field.
func ContentType(contentType string) func(ctx context.Context, in proc.Record) bool {
	return func(_ context.Context, in proc.Record) bool {
		v, _ := in.Value(KeyContentType)
		return v == contentType
	}
}

const KeyContentType = "content_type"

func Set(fields map[string]any) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		out := make(map[string]any, len(fields))
		for k, v := range fields {
			out[k] = v
		}
		return proc.Partial(out), nil
	})
}

// Annotate stores value(ctx, in) under key in the record metadata.
func Annotate(key string, value func(ctx context.Context, in proc.Record) any) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		return proc.Partial(map[string]any{
			proc.KeyMetadata: proc.Metadata{key: value(ctx, in)},
		}), nil
	})
}

// Trace appends value to the []any list stored under key in the metadata.
// The list held by the incoming record is copied, never appended to.
func Trace(key string, value any) proc.Processor {
	return proc.Func(func(ctx context.Context, in proc.Record) (any, error) {
		var old []any
		switch v := in.Metadata()[key].(type) {
		case []any:
			old = v
		case nil:
		default:
			old = []any{v}
		}
		next := make([]any, 0, len(old)+1)
		next = append(next, old...)
		next = append(next, value)
		return proc.Partial(map[string]any{
			proc.KeyMetadata: proc.Metadata{key: next},
		}), nil
	})
}
