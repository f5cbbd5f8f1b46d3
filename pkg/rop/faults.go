package rop

import (
	"errors"
	"fmt"
)

// FaultKind identifies an engine fault. Faults signal a malformed pipeline,
// never a data failure.
type FaultKind string

const (
	KindMissingTerminalStep  FaultKind = "MISSING_TERMINAL_STEP"
	KindInvalidElement       FaultKind = "INVALID_ELEMENT"
	KindInfallibleStepFailed FaultKind = "INFALLIBLE_STEP_FAILED"
)

var (
	ErrMissingTerminalStep  = &Fault{Kind: KindMissingTerminalStep, Message: "pipeline ended without a terminal step"}
	ErrInvalidElement       = &Fault{Kind: KindInvalidElement, Message: "value is not a valid element"}
	ErrInfallibleStepFailed = &Fault{Kind: KindInfallibleStepFailed, Message: "infallible step returned a failure"}
)

// Fault is the error returned when evaluation aborts.
type Fault struct {
	// Kind is the machine-readable fault kind.
	Kind FaultKind
	// Message is a human-readable description.
	Message string
	// Details carries the values needed to locate the fault, e.g. the input
	// and output of an infallible step.
	Details map[string]any
	// Cause is the underlying error, if any.
	Cause error
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s: %s", f.Kind, f.Message)
	if len(f.Details) > 0 {
		msg = fmt.Sprintf("%s %v", msg, f.Details)
	}
	if f.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, f.Cause)
	}
	return msg
}

func (f *Fault) Unwrap() error { return f.Cause }

// Is matches any Fault of the same kind, so errors.Is(err, ErrInvalidElement)
// holds for every InvalidElement fault.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return f.Kind == t.Kind
}

// WithDetail sets a single detail and returns the receiver.
func (f *Fault) WithDetail(key string, value any) *Fault {
	if f.Details == nil {
		f.Details = make(map[string]any)
	}
	f.Details[key] = value
	return f
}

func NewFault(kind FaultKind, message string) *Fault {
	return &Fault{Kind: kind, Message: message}
}

// FaultKindOf returns the kind of the first Fault in err's chain.
func FaultKindOf(err error) (FaultKind, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return "", false
}

func IsFault(err error, kind FaultKind) bool {
	k, ok := FaultKindOf(err)
	return ok && k == kind
}

func MissingTerminalStep(steps int) *Fault {
	return NewFault(KindMissingTerminalStep, "pipeline ended without a terminal step").
		WithDetail("steps", steps)
}

func InfallibleStepFailed(input, output any) *Fault {
	return NewFault(KindInfallibleStepFailed, "infallible step returned a failure").
		WithDetail("input", input).
		WithDetail("output", output)
}

func invalidElement(reason string, payload any) *Fault {
	f := NewFault(KindInvalidElement, reason)
	if payload != nil {
		f.WithDetail("payload_type", fmt.Sprintf("%T", payload))
	}
	return f
}
