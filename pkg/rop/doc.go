// Package rop defines the element that flows through a railway pipeline,
// the continue/stop signal a step returns, and the faults the evaluator
// raises for malformed pipelines.
package rop
