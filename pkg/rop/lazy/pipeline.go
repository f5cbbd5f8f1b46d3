package lazy

import (
	"context"
	"fmt"
	"slices"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

// Pipeline is an ordered sequence of steps plus the element they start from.
// T and E are the payload types the next step will see, R is the type of the
// final result. Nothing runs until Evaluate.
type Pipeline[T, E, R any] struct {
	initial rop.Element[any, any]
	steps   []rop.Step
}

func Of[R, T, E any](el rop.Element[T, E]) Pipeline[T, E, R] {
	return Pipeline[T, E, R]{initial: el.Any()}
}

func OfSuccess[E, R, T any](value T) Pipeline[T, E, R] {
	return Of[R](rop.Success[T, E](value))
}

func OfFailure[T, R, E any](c E) Pipeline[T, E, R] {
	return Of[R](rop.Fail[T, E](c))
}

// Append returns a new pipeline with step evaluated after the existing ones.
// U and G declare the payload types step hands to its successor.
func Append[U, G, T, E, R any](p Pipeline[T, E, R], step rop.Step) Pipeline[U, G, R] {
	steps := slices.Clone(p.steps)
	return Pipeline[U, G, R]{
		initial: p.initial,
		steps:   append(steps, step),
	}
}

// Compose splices a reusable sub-pipeline into p.
func Compose[T, E, U, G, R any](p Pipeline[T, E, R],
	transform func(Pipeline[T, E, R]) Pipeline[U, G, R]) Pipeline[U, G, R] {
	return transform(p)
}

func (p Pipeline[T, E, R]) Compose(transform func(Pipeline[T, E, R]) Pipeline[T, E, R]) Pipeline[T, E, R] {
	return transform(p)
}

// Len is the number of steps appended so far.
func (p Pipeline[T, E, R]) Len() int {
	return len(p.steps)
}

// Evaluate runs the steps in the order they were appended. It returns the
// result of the first terminal step that fires. Faults (a missing terminal
// step, an invalid element, a broken infallible step) are returned as
// *rop.Fault errors.
func Evaluate[T, E, R any](ctx context.Context, p Pipeline[T, E, R]) (R, error) {
	var zero R

	out, err := core.Locomotive(ctx, p.initial, p.steps)
	if err != nil {
		return zero, err
	}

	if out == nil {
		return zero, nil
	}
	r, ok := out.(R)
	if !ok {
		return zero, rop.NewFault(rop.KindInvalidElement,
			fmt.Sprintf("terminal step returned %T", out))
	}
	return r, nil
}

// MustEvaluate is like Evaluate but panics on a fault.
func MustEvaluate[T, E, R any](ctx context.Context, p Pipeline[T, E, R]) R {
	r, err := Evaluate(ctx, p)
	if err != nil {
		panic(err)
	}
	return r
}

// StepOf adapts a typed element function into a step that always
// continues. An error returned by f aborts the evaluation.
func StepOf[T, E, U, G any](f func(ctx context.Context, in rop.Element[T, E]) (rop.Element[U, G], error)) rop.Step {
	return func(ctx context.Context, in rop.Element[any, any]) (rop.Signal, error) {
		el, err := rop.As[T, E](in)
		if err != nil {
			return rop.Signal{}, err
		}
		out, err := f(ctx, el)
		if err != nil {
			return rop.Signal{}, err
		}
		return rop.Continue(out.Any()), nil
	}
}

func lift[T, E, U, G any](f func(ctx context.Context, in rop.Element[T, E]) rop.Element[U, G]) rop.Step {
	return StepOf(func(ctx context.Context, in rop.Element[T, E]) (rop.Element[U, G], error) {
		return f(ctx, in), nil
	})
}

// terminal adapts a typed element function into an erased step that stops
// when f reports done.
func terminal[T, E, R any](f func(ctx context.Context, in rop.Element[T, E]) (r R, done bool, err error)) rop.Step {
	return func(ctx context.Context, in rop.Element[any, any]) (rop.Signal, error) {
		el, err := rop.As[T, E](in)
		if err != nil {
			return rop.Signal{}, err
		}
		r, done, err := f(ctx, el)
		if err != nil {
			return rop.Signal{}, err
		}
		if done {
			return rop.Stop(r), nil
		}
		return rop.Continue(in), nil
	}
}
