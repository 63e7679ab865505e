package graph

import (
	"errors"
)

var (
	// ErrInvalidMutation is returned when setting the value of a
	// computable node.
	ErrInvalidMutation = errors.New("cannot set a computable node")

	// ErrUnknownOperator indicates an operator outside the supported set.
	// It is reported by NewOperatorNode like ErrArity and ErrNilInput.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrArity indicates an input count not matching the operator arity.
	ErrArity = errors.New("invalid number of inputs")
	// ErrNilInput indicates a missing input node.
	ErrNilInput = errors.New("nil input node")
)
