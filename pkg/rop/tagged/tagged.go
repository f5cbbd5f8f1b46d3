package tagged

import (
	"context"
	"fmt"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/lazy"
)

type noPayload struct{}

func (noPayload) String() string { return "<no payload>" }

// NoPayload is the Output of a Failure whose step failed without a payload.
var NoPayload any = noPayload{}

// Failure records which step failed, what it received and what it returned.
// Two steps failing with the same payload stay apart by Tag.
type Failure[K comparable] struct {
	Tag    K
	Input  any
	Output any
}

// HasPayload is false when the failing step returned no payload.
func (f Failure[K]) HasPayload() bool {
	return f.Output != NoPayload
}

func (f Failure[K]) String() string {
	return fmt.Sprintf("%v: input=%v output=%v", f.Tag, f.Input, f.Output)
}

// Pipeline is a lazy pipeline whose failure channel carries Failure[K].
type Pipeline[T any, K comparable, R any] = lazy.Pipeline[T, Failure[K], R]

func OfSuccess[K comparable, R, T any](value T) Pipeline[T, K, R] {
	return lazy.OfSuccess[Failure[K], R](value)
}

func OfFailure[T, R any, K comparable](f Failure[K]) Pipeline[T, K, R] {
	return lazy.OfFailure[T, R](f)
}

// LiftFallible appends f as a success-channel step. A failure returned by f
// becomes Failure{tag, input, payload}; elements that already failed pass
// through with their original tag and f is not called.
func LiftFallible[T, U any, K comparable, R any](p Pipeline[T, K, R], tag K,
	f func(ctx context.Context, in T) rop.Element[U, any]) Pipeline[U, K, R] {

	return lazy.Append[U, Failure[K]](p, lazy.StepOf(
		func(ctx context.Context, in rop.Element[T, Failure[K]]) (rop.Element[U, Failure[K]], error) {
			if !in.IsSuccess() {
				return rop.FailFrom[T, U](in), nil
			}

			v := in.Value()
			out := f(ctx, v)
			switch {
			case out.IsSuccess():
				return rop.SuccessFrom[U, any, Failure[K]](out), nil
			case out.IsFailure():
				return rop.Fail[U](Failure[K]{Tag: tag, Input: v, Output: payloadOf(out)}), nil
			default:
				return rop.Element[U, Failure[K]]{}, rop.NewFault(rop.KindInvalidElement,
					fmt.Sprintf("step %v returned an empty element", tag)).WithDetail("input", v)
			}
		}))
}

// LiftTry is LiftFallible for (value, error) functions; the error is the
// failure payload.
func LiftTry[T, U any, K comparable, R any](p Pipeline[T, K, R], tag K,
	f func(ctx context.Context, in T) (U, error)) Pipeline[U, K, R] {

	return LiftFallible(p, tag, func(ctx context.Context, in T) rop.Element[U, any] {
		out, err := f(ctx, in)
		if err != nil {
			return rop.Fail[U, any](err)
		}
		return rop.Success[U, any](out)
	})
}

// LiftInfallible appends f as a success-channel step that must not fail.
// If f returns a failure the evaluation aborts with an InfallibleStepFailed
// fault holding the input and the returned payload. Elements that already
// failed pass through and f is not called.
func LiftInfallible[T, U any, K comparable, R any](p Pipeline[T, K, R],
	f func(ctx context.Context, in T) rop.Element[U, any]) Pipeline[U, K, R] {

	return lazy.Append[U, Failure[K]](p, lazy.StepOf(
		func(ctx context.Context, in rop.Element[T, Failure[K]]) (rop.Element[U, Failure[K]], error) {
			if !in.IsSuccess() {
				return rop.FailFrom[T, U](in), nil
			}

			v := in.Value()
			out := f(ctx, v)
			if !out.IsSuccess() {
				return rop.Element[U, Failure[K]]{}, rop.InfallibleStepFailed(v, payloadOf(out))
			}
			return rop.SuccessFrom[U, any, Failure[K]](out), nil
		}))
}

// Reduce hands a final element to exactly one of the handlers.
func Reduce[T any, K comparable, R any](ctx context.Context, el rop.Element[T, Failure[K]],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, f Failure[K]) R) (R, error) {
	return rop.Reduce[T, Failure[K], R](ctx, el, onSuccess, onFailure)
}

// Run closes p with a reducing terminal step and evaluates it.
func Run[T any, K comparable, R any](ctx context.Context, p Pipeline[T, K, R],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, f Failure[K]) R) (R, error) {
	return lazy.Evaluate(ctx, p.Finally(onSuccess, onFailure))
}

func payloadOf[U any](out rop.Element[U, any]) any {
	if !out.IsFailure() || !out.HasContext() || rop.IsNil(out.Context()) {
		return NoPayload
	}
	return out.Context()
}
