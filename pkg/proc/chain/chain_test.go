package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/procompose/pkg/proc"
	"github.com/ib-77/procompose/pkg/proc/core"
	"github.com/ib-77/procompose/pkg/proc/solo"
)

func suffix(tag string) proc.Processor {
	return solo.Map(func(_ context.Context, s string) string { return s + "," + tag })
}

func TestThen_RunsLeftToRight(t *testing.T) {
	t.Parallel()

	res, err := FromData(context.Background(), " ").
		Then(suffix("a")).
		Then(suffix("b")).
		Then(suffix("c")).
		Result()

	require.NoError(t, err)
	assert.Equal(t, " ,a,b,c", res[proc.KeyData])
}

func TestThen_MatchesCompose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := proc.Record{proc.KeyData: "x", proc.KeyMetadata: proc.Metadata{"trace": []any{}}}

	viaChain, err := Start(ctx, in).Then(solo.Trace("trace", "a")).Then(suffix("b")).Result()
	require.NoError(t, err)

	viaCompose, err := proc.Run(ctx, proc.Compose(suffix("b"), solo.Trace("trace", "a")), in)
	require.NoError(t, err)

	if diff := cmp.Diff(viaCompose, viaChain); diff != "" {
		t.Fatalf("chain and compose disagree (-compose +chain):\n%s", diff)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	called := false

	c := FromData(context.Background(), "x").
		Then(solo.Try(func(context.Context, string) (string, error) { return "", boom })).
		Then(solo.Tee(func(context.Context, proc.Record) { called = true }))

	_, err := c.Result()
	assert.Same(t, boom, err)
	assert.Same(t, boom, c.Err())
	assert.False(t, called, "steps after a failure must not run")
}

func TestThen_BadReturnType(t *testing.T) {
	t.Parallel()

	bad := proc.Func(func(context.Context, proc.Record) (any, error) { return 3.14, nil })

	_, err := FromData(context.Background(), "x").Then(bad).Result()
	assert.ErrorIs(t, err, proc.ErrInvalidReturn)
}

func TestEnsure_SideEffectOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	var seen []string
	record := func(_ context.Context, r proc.Record) {
		data, _ := r.Data()
		seen = append(seen, data)
	}

	FromData(context.Background(), "ok").Ensure(record)
	FromData(context.Background(), "ko").
		Then(solo.Validate(func(context.Context, proc.Record) (bool, string) { return false, "invalid" })).
		Ensure(record)

	assert.Equal(t, []string{"ok"}, seen)
}

func TestStart_CarriesRunID(t *testing.T) {
	t.Parallel()

	c := Start(context.Background(), proc.Record{})
	c.Ensure(func(ctx context.Context, _ proc.Record) {
		_, ok := core.GetRunID(ctx)
		assert.True(t, ok)
	})
}

func TestProcessor_ChainOrder(t *testing.T) {
	t.Parallel()

	p := Processor(suffix("a"), suffix("b"), nil, suffix("c"))

	out, err := proc.Run(context.Background(), p, proc.NewRecord(" "))
	require.NoError(t, err)
	assert.Equal(t, " ,a,b,c", out[proc.KeyData])
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onSuccess := func(_ context.Context, r proc.Record) string {
		data, _ := r.Data()
		return "ok:" + data
	}
	onFailure := func(_ context.Context, err error) string { return "err:" + err.Error() }

	assert.Equal(t, "ok:x,a", Finally(FromData(context.Background(), "x").Then(suffix("a")), onSuccess, onFailure))

	failed := FromData(context.Background(), "x").
		Then(solo.Validate(func(context.Context, proc.Record) (bool, string) { return false, "nope" }))
	assert.Equal(t, "err:nope", Finally(failed, onSuccess, onFailure))
}
