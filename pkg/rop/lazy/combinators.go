package lazy

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/solo"
)

// MapSuccess appends a success-channel step. onSuccess decides the channel of
// the next element by returning rop.Success or rop.Fail; failures pass
// through without calling it.
func MapSuccess[T, U, E, R any](p Pipeline[T, E, R],
	onSuccess func(ctx context.Context, v T) rop.Element[U, E]) Pipeline[U, E, R] {
	return Append[U, E](p, lift(func(ctx context.Context, in rop.Element[T, E]) rop.Element[U, E] {
		return solo.Switch(ctx, in, onSuccess)
	}))
}

// Map appends a success-channel transformation that cannot fail.
func Map[T, U, E, R any](p Pipeline[T, E, R], onSuccess func(ctx context.Context, v T) U) Pipeline[U, E, R] {
	return Append[U, E](p, lift(func(ctx context.Context, in rop.Element[T, E]) rop.Element[U, E] {
		return solo.Map(ctx, in, onSuccess)
	}))
}

// Try appends a success-channel step written as a (value, error) function.
func Try[T, U, R any](p Pipeline[T, error, R],
	onSuccess func(ctx context.Context, v T) (U, error)) Pipeline[U, error, R] {
	return Append[U, error](p, lift(func(ctx context.Context, in rop.Element[T, error]) rop.Element[U, error] {
		return solo.Try(ctx, in, onSuccess)
	}))
}

// MapFailure appends a failure-channel step that replaces the failure
// context. Successes pass through without calling onFailure.
func MapFailure[T, E, G, R any](p Pipeline[T, E, R],
	onFailure func(ctx context.Context, c E) G) Pipeline[T, G, R] {
	return Append[T, G](p, lift(func(ctx context.Context, in rop.Element[T, E]) rop.Element[T, G] {
		return solo.MapFailure(ctx, in, onFailure)
	}))
}

// Recover appends a failure-channel step that may return the element to the
// success channel.
func (p Pipeline[T, E, R]) Recover(onFailure func(ctx context.Context, c E) rop.Element[T, E]) Pipeline[T, E, R] {
	return Append[T, E](p, lift(func(ctx context.Context, in rop.Element[T, E]) rop.Element[T, E] {
		return solo.Recover(ctx, in, onFailure)
	}))
}

// Validate fails the element with errMsg when validate rejects its value.
func Validate[T, R any](p Pipeline[T, error, R],
	validate func(ctx context.Context, v T) (valid bool, errMsg string)) Pipeline[T, error, R] {
	return Append[T, error](p, lift(func(ctx context.Context, in rop.Element[T, error]) rop.Element[T, error] {
		return solo.Validate(ctx, in, validate)
	}))
}

// Tee runs a side effect on success without changing the element.
func (p Pipeline[T, E, R]) Tee(onSuccess func(ctx context.Context, v T)) Pipeline[T, E, R] {
	return Append[T, E](p, lift(func(ctx context.Context, in rop.Element[T, E]) rop.Element[T, E] {
		return solo.Tee(ctx, in, onSuccess)
	}))
}

// DoubleTee runs a side effect on either channel without changing the element.
func (p Pipeline[T, E, R]) DoubleTee(onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, c E)) Pipeline[T, E, R] {
	return Append[T, E](p, lift(func(ctx context.Context, in rop.Element[T, E]) rop.Element[T, E] {
		return solo.DoubleTee(ctx, in, onSuccess, onFailure)
	}))
}

// OnSuccess appends a terminal step: a success stops the pipeline with the
// result of onSuccess, a failure continues to the next step.
func (p Pipeline[T, E, R]) OnSuccess(onSuccess func(ctx context.Context, v T) R) Pipeline[T, E, R] {
	return Append[T, E](p, terminal(func(ctx context.Context, in rop.Element[T, E]) (R, bool, error) {
		var zero R
		if !in.IsSuccess() {
			return zero, false, nil
		}
		return onSuccess(ctx, in.Value()), true, nil
	}))
}

// OnFailure appends a terminal step: a failure stops the pipeline with the
// result of onFailure, a success continues to the next step.
func (p Pipeline[T, E, R]) OnFailure(onFailure func(ctx context.Context, c E) R) Pipeline[T, E, R] {
	return Append[T, E](p, terminal(func(ctx context.Context, in rop.Element[T, E]) (R, bool, error) {
		var zero R
		if !in.IsFailure() {
			return zero, false, nil
		}
		return onFailure(ctx, in.Context()), true, nil
	}))
}

// Finally appends a terminal step that always stops, reducing the element
// with exactly one of the handlers.
func (p Pipeline[T, E, R]) Finally(onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, c E) R) Pipeline[T, E, R] {
	return Append[T, E](p, terminal(func(ctx context.Context, in rop.Element[T, E]) (R, bool, error) {
		r, err := solo.Finally(ctx, in, onSuccess, onFailure)
		return r, err == nil, err
	}))
}
