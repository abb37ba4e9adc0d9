package proc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ib-77/procompose/internal/logging"
	"github.com/ib-77/procompose/pkg/proc/core"
)

type step struct {
	position int
	name     string
	p        Processor
}

// Compose returns a processor equivalent to running processors from the last
// declared to the first: Compose(d, c, b, a) computes d(c(b(a(in)))).
//
// Compose() is the identity and Compose(a) behaves like a, except that the
// composed processor always returns a full Record. Nil processors are skipped.
// A processor returning an unsupported shape aborts the chain with a
// *ReturnTypeError; errors returned by processors are passed through as is.
//
// The returned record may share maps with in, Compose() returns in itself.
// Use Run to get a record independent from the input.
func Compose(processors ...Processor) Processor {
	steps := make([]step, 0, len(processors))
	for i := len(processors) - 1; i >= 0; i-- {
		if IsNil(processors[i]) {
			continue
		}
		steps = append(steps, step{position: i, name: NameOf(processors[i]), p: processors[i]})
	}

	fallback := logging.New("compose")

	return Func(func(ctx context.Context, in Record) (any, error) {
		logger := core.GetLogger(ctx, fallback)
		debug := logger.Enabled(ctx, slog.LevelDebug)

		current := in
		for _, s := range steps {
			next, kind, err := s.apply(ctx, current)
			if err != nil {
				return nil, err
			}
			if debug {
				runID, _ := core.GetRunID(ctx)
				logger.DebugContext(ctx, "processor applied",
					slog.String("run", runID.String()),
					slog.Int("position", s.position),
					slog.String("processor", s.name),
					slog.String("kind", kind.String()))
			}
			current = next
		}
		return current, nil
	})
}

func (s step) apply(ctx context.Context, current Record) (Record, Kind, error) {
	out, err := s.p.Process(ctx, current)
	if err != nil {
		return nil, KindEmpty, err
	}
	res, err := Normalize(out)
	if err != nil {
		var rte *ReturnTypeError
		if errors.As(err, &rte) {
			rte.Position = s.position
			rte.Name = s.name
		}
		return nil, KindEmpty, err
	}
	return res.Apply(current), res.Kind(), nil
}

// Apply runs p once against in and normalizes its output into a full record.
func Apply(ctx context.Context, p Processor, in Record) (Record, error) {
	if IsNil(p) {
		return in, nil
	}
	next, _, err := step{position: -1, name: NameOf(p), p: p}.apply(ctx, in)
	return next, err
}

// Run is the top-level entry point: it tags ctx with a run id when none is
// set and applies p to in. The returned record never shares its top-level
// map or its metadata map with in.
func Run(ctx context.Context, p Processor, in Record) (Record, error) {
	ctx, _ = core.EnsureRunID(ctx)
	out, err := Apply(ctx, p, in)
	if err != nil || out == nil {
		return out, err
	}
	return out.Clone(), nil
}
