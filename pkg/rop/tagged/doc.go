// Package tagged is the lazy pipeline with a structured failure channel.
//
// Every failure is a Failure[K]{Tag, Input, Output}: the tag of the step
// that failed, the value it received and the payload it returned (or
// NoPayload). Steps with the same failure shape stay distinguishable by tag.
//
// Key operations:
// - OfSuccess/OfFailure: start a pipeline
// - LiftFallible/LiftTry: add a step that may fail, tagging its failures
// - LiftInfallible: add a step asserted never to fail; a failure is a fault
// - Reduce/Run: collapse the final element into a result
package tagged
