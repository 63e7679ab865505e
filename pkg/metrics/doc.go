// Package metrics exports the cache behaviour of expression graph
// evaluations as OpenTelemetry counters.
//
// An Observer is registered at a graph.Evaluator and counts every
// resolved computable node either as cache hit or as cache miss
// (operator invocation), attributed with the operator name.
package metrics
