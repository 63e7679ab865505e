package graph

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/mandelsoft/exprgraph/pkg/utils"
)

// Node is a vertex of an expression graph. It is either a variable
// holding a settable value or a computable node applying an operator
// to a fixed list of input nodes.
//
// Nodes may be shared by any number of parent nodes. The variable value
// and the result cache are modified through shared references without
// any synchronization, therefore a graph must only be used by a single
// goroutine at a time.
type Node struct {
	name     string
	operator Operator
	inputs   []*Node
	value    float64
	cache    *cache
}

// NewInput creates a variable node with an initial value and an
// optional name.
func NewInput(v float64, name ...string) *Node {
	return &Node{
		name:  utils.Optional(name...),
		value: v,
	}
}

// NewOperatorNode creates a computable node for the given operator.
func NewOperatorNode(op Operator, inputs ...*Node) (*Node, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != op.Arity() {
		return nil, fmt.Errorf("%w: operator %q requires %d, but got %d", ErrArity, op, op.Arity(), len(inputs))
	}
	for i, n := range inputs {
		if n == nil {
			return nil, fmt.Errorf("%w: input %d of operator %q", ErrNilInput, i, op)
		}
	}
	return &Node{
		operator: op,
		inputs:   slices.Clone(inputs),
		cache:    newCache(),
	}, nil
}

func newOperatorNode(op Operator, inputs ...*Node) *Node {
	n, err := NewOperatorNode(op, inputs...)
	if err != nil {
		panic(err)
	}
	return n
}

func Add(augend, addend *Node) *Node {
	return newOperatorNode(OP_ADD, augend, addend)
}

func Sub(minuend, subtrahend *Node) *Node {
	return newOperatorNode(OP_SUB, minuend, subtrahend)
}

func Mul(multiplier, multiplicand *Node) *Node {
	return newOperatorNode(OP_MUL, multiplier, multiplicand)
}

func Div(dividend, divisor *Node) *Node {
	return newOperatorNode(OP_DIV, dividend, divisor)
}

// Sin computes the sine of an angle given in radians.
func Sin(angle *Node) *Node {
	return newOperatorNode(OP_SIN, angle)
}

func Pow(base, exponent *Node) *Node {
	return newOperatorNode(OP_POW, base, exponent)
}

////////////////////////////////////////////////////////////////////////////////

func (n *Node) IsVariable() bool {
	return n.operator == ""
}

func (n *Node) Name() string {
	return n.name
}

// Operator returns the operator of a computable node
// or the empty operator for a variable.
func (n *Node) Operator() Operator {
	return n.operator
}

func (n *Node) Inputs() []*Node {
	return slices.Clone(n.inputs)
}

// Set replaces the value of a variable node.
// Computable nodes cannot be set, they are left untouched and
// ErrInvalidMutation is returned.
func (n *Node) Set(v float64) error {
	if !n.IsVariable() {
		return fmt.Errorf("%w: %s", ErrInvalidMutation, n)
	}
	n.value = v
	return nil
}

// Compute evaluates the node with the default evaluator.
func (n *Node) Compute() float64 {
	return defaultEvaluator.Compute(n)
}

// Stats returns the cache statistics of a computable node.
func (n *Node) Stats() Stats {
	if n.cache == nil {
		return Stats{}
	}
	return n.cache.stats()
}

// Variables returns the distinct variable nodes the node depends on
// in the order they are reached.
func (n *Node) Variables() []*Node {
	var result []*Node
	seen := map[*Node]struct{}{}
	stack := []*Node{n}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if c.IsVariable() {
			result = append(result, c)
			continue
		}
		for i := len(c.inputs) - 1; i >= 0; i-- {
			stack = append(stack, c.inputs[i])
		}
	}
	return result
}

func (n *Node) String() string {
	if n.IsVariable() {
		if n.name != "" {
			return n.name
		}
		return strconv.FormatFloat(n.value, 'g', -1, 64)
	}
	if sym := n.operator.Symbol(); sym != "" {
		return fmt.Sprintf("(%s%s%s)", n.inputs[0], sym, n.inputs[1])
	}
	return fmt.Sprintf("%s(%s)", n.operator, utils.Join(n.inputs))
}
