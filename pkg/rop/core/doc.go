// Package core contains the evaluation plumbing shared by the pipeline
// packages: the locomotive that folds a step sequence over an element and
// the evaluation options carried by the context. It defines no combinators;
// packages like lazy and tagged build pipelines and hand them to Locomotive.
package core
