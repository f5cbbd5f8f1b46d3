// Package solo contains single-element, synchronous ROP primitives that
// operate on rop.Element[T, E]. They define what one step does to one
// element; package lazy turns them into pipeline steps.
//
// Highlights:
// - Succeed/Fail: construct an Element
// - Validate: fail an element whose value is rejected
// - Switch/Map/Try: success channel, failures pass through untouched
// - MapFailure/Recover: failure channel, successes pass through untouched
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
