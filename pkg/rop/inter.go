package rop

// Outcome is the read side of an element, enough to reduce it to a result.
type Outcome[T, E any] interface {
	// Value returns the success value
	Value() T
	// Context returns the failure context
	Context() E
	// IsSuccess returns true on the success channel
	IsSuccess() bool
	// IsFailure returns true on the failure channel
	IsFailure() bool
	// IsValid returns false for values that are neither success nor failure
	IsValid() bool
}
