package lazy

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_SuccessToTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := MapSuccess(OfSuccess[string, string](1), func(ctx context.Context, v int) rop.Element[int, string] {
		return rop.Success[int, string](v + 1)
	}).OnSuccess(func(ctx context.Context, v int) string {
		return "v" + strconv.Itoa(v)
	})

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestEvaluate_FailureHandledBeforeUnreachable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := MapSuccess(OfSuccess[string, string](0), func(ctx context.Context, v int) rop.Element[int, string] {
		return rop.Fail[int]("e1")
	}).
		OnFailure(func(ctx context.Context, c string) string { return "handled:" + c }).
		OnSuccess(func(ctx context.Context, v int) string {
			t.Fatalf("unreachable step invoked")
			return ""
		})

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "handled:e1", out)
}

func TestEvaluate_FailureChannelMapping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := MapFailure(OfFailure[int, string]("e0"), func(ctx context.Context, c string) string {
		return "e1"
	}).OnFailure(func(ctx context.Context, c string) string {
		if c != "e1" {
			return "unexpected:" + c
		}
		return "x2"
	})

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "x2", out)
}

func TestEvaluate_MissingTerminalStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := Evaluate(ctx, OfSuccess[error, string](0))
	assert.ErrorIs(t, err, rop.ErrMissingTerminalStep)

	p := Map(OfSuccess[error, string](0), func(ctx context.Context, v int) int { return v })
	_, err = Evaluate(ctx, p)
	assert.ErrorIs(t, err, rop.ErrMissingTerminalStep)

	// a terminal step on the other channel does not count
	onFailure := OfSuccess[error, string](0).OnFailure(func(ctx context.Context, err error) string { return "f" })
	_, err = Evaluate(ctx, onFailure)
	assert.True(t, rop.IsFault(err, rop.KindMissingTerminalStep))
}

func TestChannelIsolation_SuccessStepsSkipFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	var captured rop.Element[int, error]
	p := OfFailure[int, string](boom)
	p = MapSuccess(p, func(ctx context.Context, v int) rop.Element[int, error] {
		t.Fatalf("success step invoked on failure")
		return rop.Success[int, error](v)
	})
	p = Map(p, func(ctx context.Context, v int) int {
		t.Fatalf("map invoked on failure")
		return v
	})
	p = p.Tee(func(ctx context.Context, v int) { t.Fatalf("tee invoked on failure") })
	p = Append[int, error](p, StepOf(func(ctx context.Context, in rop.Element[int, error]) (rop.Element[int, error], error) {
		captured = in
		return in, nil
	}))
	p = p.OnFailure(func(ctx context.Context, c error) string { return c.Error() })

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "boom", out)
	assert.Same(t, boom, captured.Context())
}

func TestChannelIsolation_FailureStepsSkipSuccesses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := MapFailure(OfSuccess[string, int](7), func(ctx context.Context, c string) error {
		t.Fatalf("failure step invoked on success")
		return nil
	}).Recover(func(ctx context.Context, c error) rop.Element[int, error] {
		t.Fatalf("recover invoked on success")
		return rop.Success[int, error](0)
	}).OnSuccess(func(ctx context.Context, v int) int { return v })

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 7, out)
}

func TestShortCircuit_SentinelNeverRuns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sentinel := func(ctx context.Context, in rop.Element[any, any]) (rop.Signal, error) {
		t.Fatalf("step after stop invoked")
		return rop.Signal{}, nil
	}

	p := OfSuccess[error, int](1).OnSuccess(func(ctx context.Context, v int) int { return v * 10 })
	p = Append[int, error](p, sentinel)

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 10, out)
}

func TestAppend_DoesNotAliasSharedPrefix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := Map(OfSuccess[error, string](1), func(ctx context.Context, v int) int { return v + 1 })
	left := base.OnSuccess(func(ctx context.Context, v int) string { return "left:" + strconv.Itoa(v) })
	right := base.OnSuccess(func(ctx context.Context, v int) string { return "right:" + strconv.Itoa(v) })

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 2, right.Len())

	l, err := Evaluate(ctx, left)
	require.NoError(t, err)
	r, err := Evaluate(ctx, right)
	require.NoError(t, err)
	assert.Equal(t, "left:2", l)
	assert.Equal(t, "right:2", r)

	_, err = Evaluate(ctx, base)
	assert.ErrorIs(t, err, rop.ErrMissingTerminalStep)
}

func TestEvaluate_PreservesAppendOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var order []int
	p := OfSuccess[error, []int](0)
	for i := 1; i <= 5; i++ {
		p = p.Tee(func(ctx context.Context, v int) { order = append(order, i) })
	}
	p = p.OnSuccess(func(ctx context.Context, v int) []int { return order })

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, out)
}

func TestEvaluate_Repeatable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := Map(OfSuccess[error, int](3), func(ctx context.Context, v int) int { return v * v }).
		OnSuccess(func(ctx context.Context, v int) int { return v })

	first, err := Evaluate(ctx, p)
	require.NoError(t, err)
	second, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 9, first)
	assert.Equal(t, first, second)
}

func TestCompose_SplicesSubPipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(p Pipeline[string, error, int]) Pipeline[int, error, int] {
		return Try(p, func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	}
	double := func(p Pipeline[int, error, int]) Pipeline[int, error, int] {
		return Map(p, func(ctx context.Context, v int) int { return v * 2 })
	}

	p := Compose(OfSuccess[error, int]("21"), parse).
		Compose(double).
		Finally(func(ctx context.Context, v int) int { return v },
			func(ctx context.Context, err error) int { return -1 })

	out, err := Evaluate(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	bad := Compose(OfSuccess[error, int]("x"), parse).
		Compose(double).
		Finally(func(ctx context.Context, v int) int { return v },
			func(ctx context.Context, err error) int { return -1 })
	out, err = Evaluate(ctx, bad)
	require.NoError(t, err)
	assert.Equal(t, -1, out)
}

func TestValidateAndRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	build := func(v int) Pipeline[int, error, string] {
		p := Validate(OfSuccess[error, string](v), func(ctx context.Context, v int) (bool, string) {
			return v >= 0, "negative"
		})
		return p.Recover(func(ctx context.Context, err error) rop.Element[int, error] {
			if err.Error() == "negative" {
				return rop.Success[int, error](0)
			}
			return rop.Fail[int](err)
		}).OnSuccess(func(ctx context.Context, v int) string { return strconv.Itoa(v) })
	}

	out, err := Evaluate(ctx, build(5))
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	out, err = Evaluate(ctx, build(-5))
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestDoubleTee_SeesBothChannels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	track := func(p Pipeline[int, string, string]) Pipeline[int, string, string] {
		return p.DoubleTee(
			func(ctx context.Context, v int) { seen = append(seen, "s:"+strconv.Itoa(v)) },
			func(ctx context.Context, c string) { seen = append(seen, "f:"+c) })
	}
	finish := func(p Pipeline[int, string, string]) Pipeline[int, string, string] {
		return p.Finally(
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, c string) string { return "fail" })
	}

	_, err := Evaluate(ctx, OfSuccess[string, string](1).Compose(track).Compose(finish))
	require.NoError(t, err)
	_, err = Evaluate(ctx, OfFailure[int, string]("e").Compose(track).Compose(finish))
	require.NoError(t, err)
	assert.Equal(t, []string{"s:1", "f:e"}, seen)
}

func TestEvaluate_InvalidElementFromStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := MapSuccess(OfSuccess[string, string](1), func(ctx context.Context, v int) rop.Element[int, string] {
		return rop.Element[int, string]{}
	}).OnSuccess(func(ctx context.Context, v int) string { return "unreachable" })

	_, err := Evaluate(ctx, p)
	assert.ErrorIs(t, err, rop.ErrInvalidElement)

	_, err = Evaluate(ctx, Of[string](rop.Element[int, string]{}).
		OnSuccess(func(ctx context.Context, v int) string { return "unreachable" }))
	assert.ErrorIs(t, err, rop.ErrInvalidElement)
}

func TestMustEvaluate_PanicsOnFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Panics(t, func() { MustEvaluate(ctx, OfSuccess[error, int](1)) })
	assert.Equal(t, 1, MustEvaluate(ctx, OfSuccess[error, int](1).OnSuccess(func(ctx context.Context, v int) int { return v })))
}
