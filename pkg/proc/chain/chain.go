package chain

import (
	"context"

	"github.com/ib-77/procompose/pkg/proc"
	"github.com/ib-77/procompose/pkg/proc/core"
)

// Chain wraps a record with context to enable fluent chaining
type Chain struct {
	ctx    context.Context
	record proc.Record
	err    error
}

// Start creates a new chain from a record and tags ctx with a run id.
func Start(ctx context.Context, record proc.Record) *Chain {
	ctx, _ = core.EnsureRunID(ctx)
	return &Chain{
		ctx:    ctx,
		record: record,
	}
}

// FromData creates a new chain from content alone
func FromData(ctx context.Context, data string) *Chain {
	return Start(ctx, proc.NewRecord(data))
}

// Result returns the current record or the first error met
func (c *Chain) Result() (proc.Record, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.record, nil
}

func (c *Chain) Err() error {
	return c.err
}

// Then applies p to the current record
func (c *Chain) Then(p proc.Processor) *Chain {
	if c.err != nil {
		return c
	}
	next, err := proc.Apply(c.ctx, p, c.record)
	return &Chain{ctx: c.ctx, record: next, err: err}
}

// Ensure performs a side effect without changing the record
func (c *Chain) Ensure(onSuccess func(context.Context, proc.Record)) *Chain {
	if c.err == nil {
		onSuccess(c.ctx, c.record)
	}
	return c
}

// Processor turns the steps into a reusable processor, in chain order.
func Processor(steps ...proc.Processor) proc.Processor {
	reversed := make([]proc.Processor, len(steps))
	for i, p := range steps {
		reversed[len(steps)-1-i] = p
	}
	return proc.Compose(reversed...)
}

// Finally collapses the chain into a final value
func Finally[U any](c *Chain, onSuccess func(context.Context, proc.Record) U, onFailure func(context.Context, error) U) U {
	if c.err != nil {
		return onFailure(c.ctx, c.err)
	}
	return onSuccess(c.ctx, c.record)
}
