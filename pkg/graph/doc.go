// Package graph provides lazily cached arithmetic expression graphs.
//
// A graph consists of variable nodes holding settable values and
// computable nodes applying one of the operators add, sub, mul, div,
// sin and pow to an ordered list of input nodes. Nodes may be used as
// input for any number of other nodes. Because a node can only be
// built from already existing nodes, a graph never contains cycles.
//
// Every computable node caches its results keyed by the exact bit
// patterns of the input values observed during an evaluation. An
// operator is therefore invoked only once per distinct input tuple,
// and setting a variable back to an earlier value reuses the earlier
// results. Caches are never invalidated and grow with the number of
// distinct input tuples.
//
// Numeric edge cases like division by zero or a negative base raised
// to a fractional exponent yield IEEE-754 infinities or NaN, which
// propagate through the graph. The only error is an attempt to set the
// value of a computable node (ErrInvalidMutation).
//
// Graphs are not safe for concurrent use.
package graph
