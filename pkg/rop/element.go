package rop

import (
	"time"

	"github.com/google/uuid"
)

type state uint8

const (
	stateEmpty state = iota
	stateSuccess
	stateFailure
)

// Element is the two-state value threaded through a pipeline: a success
// carrying a value of type T or a failure carrying a context of type E.
// The zero Element is empty and is rejected wherever an Element is consumed.
type Element[T, E any] struct {
	id         uuid.UUID
	createdAt  time.Time
	value      T
	context    E
	state      state
	hasContext bool
}

func Success[T, E any](v T) Element[T, E] {
	return Element[T, E]{
		value:     v,
		state:     stateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](c E) Element[T, E] {
	return Element[T, E]{
		context:    c,
		state:      stateFailure,
		hasContext: true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// FailEmpty is a failure signaled without a payload.
func FailEmpty[T, E any]() Element[T, E] {
	return Element[T, E]{
		state:     stateFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom retypes the success side of a failed element, keeping its id,
// creation time and context.
func FailFrom[In, Out, E any](from Element[In, E]) Element[Out, E] {
	return Element[Out, E]{
		id:         from.id,
		createdAt:  from.createdAt,
		context:    from.context,
		state:      from.state,
		hasContext: from.hasContext,
	}
}

// SuccessFrom retypes the failure side of a successful element.
func SuccessFrom[T, In, Out any](from Element[T, In]) Element[T, Out] {
	return Element[T, Out]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     from.value,
		state:     from.state,
	}
}

func (e Element[T, E]) Value() T {
	return e.value
}

func (e Element[T, E]) Context() E {
	return e.context
}

// HasContext reports whether a failure carries a payload.
func (e Element[T, E]) HasContext() bool {
	return e.hasContext
}

func (e Element[T, E]) IsSuccess() bool {
	return e.state == stateSuccess
}

func (e Element[T, E]) IsFailure() bool {
	return e.state == stateFailure
}

// IsValid is false only for the zero Element.
func (e Element[T, E]) IsValid() bool {
	return e.state != stateEmpty
}

func (e Element[T, E]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Element[T, E]) Id() uuid.UUID {
	return e.id
}

// Any erases the payload types so elements of different stages can share one
// step sequence.
func (e Element[T, E]) Any() Element[any, any] {
	out := Element[any, any]{
		id:         e.id,
		createdAt:  e.createdAt,
		state:      e.state,
		hasContext: e.hasContext,
	}
	switch e.state {
	case stateSuccess:
		out.value = e.value
	case stateFailure:
		if e.hasContext {
			out.context = e.context
		}
	}
	return out
}

// As restores the payload types of an erased element. It returns an
// InvalidElement fault when the element is empty or its payload is not of
// the requested type.
func As[T, E any](e Element[any, any]) (Element[T, E], error) {
	out := Element[T, E]{
		id:         e.id,
		createdAt:  e.createdAt,
		state:      e.state,
		hasContext: e.hasContext,
	}

	switch e.state {
	case stateSuccess:
		v, ok := e.value.(T)
		if !ok && e.value != nil {
			return Element[T, E]{}, invalidElement("success value has unexpected type", e.value)
		}
		out.value = v
	case stateFailure:
		if !e.hasContext {
			return out, nil
		}
		c, ok := e.context.(E)
		if !ok && e.context != nil {
			return Element[T, E]{}, invalidElement("failure context has unexpected type", e.context)
		}
		out.context = c
	default:
		return Element[T, E]{}, invalidElement("element is neither success nor failure", nil)
	}
	return out, nil
}
