package rop

import "context"

// Reduce converts an element into a final result by calling exactly one of
// the handlers. It returns an InvalidElement fault for nil or empty outcomes.
func Reduce[T, E, R any](ctx context.Context, in Outcome[T, E],
	onSuccess func(ctx context.Context, v T) R,
	onFailure func(ctx context.Context, c E) R) (R, error) {

	var zero R
	if IsNil(in) || !in.IsValid() {
		return zero, invalidElement("cannot reduce an empty element", nil)
	}

	if in.IsSuccess() {
		return onSuccess(ctx, in.Value()), nil
	}
	return onFailure(ctx, in.Context()), nil
}
