package graph

import (
	"fmt"
	"math"
)

type Operator string

const OP_ADD = Operator("add")
const OP_SUB = Operator("sub")
const OP_MUL = Operator("mul")
const OP_DIV = Operator("div")
const OP_SIN = Operator("sin")
const OP_POW = Operator("pow")

var operators = []Operator{OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_SIN, OP_POW}

// Operators returns all supported operators.
func Operators() []Operator {
	return append([]Operator(nil), operators...)
}

func ParseOperator(name string) (Operator, error) {
	for _, o := range operators {
		if string(o) == name {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}

// Arity returns the number of inputs the operator consumes.
// It is 0 for unknown operators.
func (o Operator) Arity() int {
	switch o {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_POW:
		return 2
	case OP_SIN:
		return 1
	default:
		return 0
	}
}

// Symbol returns the infix symbol of a binary operator or
// the empty string for operators rendered in function notation.
func (o Operator) Symbol() string {
	switch o {
	case OP_ADD:
		return "+"
	case OP_SUB:
		return "-"
	case OP_MUL:
		return "*"
	case OP_DIV:
		return "/"
	default:
		return ""
	}
}

func (o Operator) Validate() error {
	if o.Arity() == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, string(o))
	}
	return nil
}

// Apply evaluates the operator for the given operands.
// The operands must match the arity of the operator.
// No numeric case is treated as an error: division by zero
// and invalid power bases yield IEEE-754 infinities or NaN.
func (o Operator) Apply(operands []float64) float64 {
	switch o {
	case OP_ADD:
		return operands[0] + operands[1]
	case OP_SUB:
		return operands[0] - operands[1]
	case OP_MUL:
		return operands[0] * operands[1]
	case OP_DIV:
		return operands[0] / operands[1]
	case OP_SIN:
		return math.Sin(operands[0])
	case OP_POW:
		return math.Pow(operands[0], operands[1])
	}
	panic(fmt.Sprintf("invalid operator %q", string(o)))
}
