package solo

import (
	"context"
	"errors"

	"github.com/ib-77/rail/pkg/rop"
)

func Succeed[T, E any](input T) rop.Element[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](c E) rop.Element[T, E] {
	return rop.Fail[T, E](c)
}

func Validate[T any](ctx context.Context, input rop.Element[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Element[T, error] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return rop.Fail[T, error](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Element[In, E],
	onSuccess func(ctx context.Context, r In) rop.Element[Out, E]) rop.Element[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Element[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Element[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In, Out any](ctx context.Context, input rop.Element[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Element[Out, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.Fail[Out, error](err)
		}
		return rop.Success[Out, error](out)
	}
	return rop.FailFrom[In, Out](input)
}

// MapFailure replaces the context of a failure. Successes and failures
// without a payload pass through.
func MapFailure[T, In, Out any](ctx context.Context, input rop.Element[T, In],
	onFailure func(ctx context.Context, c In) Out) rop.Element[T, Out] {

	if input.IsFailure() {
		if !input.HasContext() {
			return rop.FailEmpty[T, Out]()
		}
		return rop.Fail[T, Out](onFailure(ctx, input.Context()))
	}
	return rop.SuccessFrom[T, In, Out](input)
}

// Recover lets a failure switch back to the success channel.
func Recover[T, E any](ctx context.Context, input rop.Element[T, E],
	onFailure func(ctx context.Context, c E) rop.Element[T, E]) rop.Element[T, E] {

	if input.IsFailure() {
		return onFailure(ctx, input.Context())
	}
	return input
}

func Tee[T, E any](ctx context.Context,
	input rop.Element[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Element[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Element[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, c E)) rop.Element[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else if input.IsFailure() {
		onFailure(ctx, input.Context())
	}
	return input
}

func Finally[T, E, Out any](ctx context.Context, input rop.Element[T, E],
	onSuccess func(ctx context.Context, r T) Out,
	onFailure func(ctx context.Context, c E) Out) (Out, error) {
	return rop.Reduce[T, E, Out](ctx, input, onSuccess, onFailure)
}
