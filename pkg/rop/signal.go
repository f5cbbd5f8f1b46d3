package rop

import "context"

// Signal is a step's instruction to the evaluator: continue with a new
// element or stop with the pipeline's final result.
type Signal struct {
	next   Element[any, any]
	result any
	stop   bool
}

func Continue(next Element[any, any]) Signal {
	return Signal{next: next}
}

func Stop(result any) Signal {
	return Signal{result: result, stop: true}
}

func (s Signal) IsStop() bool {
	return s.stop
}

// Next is the element handed to the following step. Meaningless after Stop.
func (s Signal) Next() Element[any, any] {
	return s.next
}

// Result is the final output of the pipeline. Meaningless after Continue.
func (s Signal) Result() any {
	return s.result
}

// Step is one unit of a pipeline. A non-nil error is a fault and aborts the
// evaluation.
type Step func(ctx context.Context, in Element[any, any]) (Signal, error)
