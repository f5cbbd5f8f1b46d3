// Package lazy builds railway pipelines without running them.
//
// A Pipeline starts from one element (OfSuccess, OfFailure, Of) and grows by
// appending steps. Every combinator returns a new Pipeline; the one it was
// called on is left untouched, so a shared prefix can be extended in several
// directions. Nothing is executed until Evaluate walks the steps in the order
// they were appended.
//
// Steps observe one channel:
// - MapSuccess/Map/Try/Validate/Tee: success channel, failures pass through
// - MapFailure/Recover: failure channel, successes pass through
// - OnSuccess/OnFailure: terminal, stop the pipeline on their channel
// - Finally: terminal on both channels
//
// A pipeline must stop in a terminal step. Evaluate returns a
// rop.ErrMissingTerminalStep fault when the steps run out first.
package lazy
