package expression

import (
	"fmt"

	"github.com/mandelsoft/exprgraph/pkg/graph"
)

// Scope maps variable names to graph variables.
type Scope map[string]*graph.Node

var symbols = map[string]graph.Operator{
	"+": graph.OP_ADD,
	"-": graph.OP_SUB,
	"*": graph.OP_MUL,
	"/": graph.OP_DIV,
	"^": graph.OP_POW,
}

// Compile creates a graph for a parsed expression.
// Variables are taken from the scope. Unknown variables are created
// with value 0 and added to the scope, so that every name maps to
// exactly one shared graph node.
func Compile(n *Node, scope Scope) (*graph.Node, error) {
	if scope == nil {
		return nil, fmt.Errorf("no scope given")
	}
	if n.Value != nil {
		return graph.NewInput(*n.Value), nil
	}
	if len(n.Parents) == 0 {
		if v := scope[n.Name]; v != nil {
			if !v.IsVariable() {
				return nil, fmt.Errorf("scope entry %q is no variable", n.Name)
			}
			return v, nil
		}
		v := graph.NewInput(0, n.Name)
		scope[n.Name] = v
		return v, nil
	}

	op, ok := symbols[n.Name]
	if !ok {
		var err error
		op, err = graph.ParseOperator(n.Name)
		if err != nil {
			return nil, err
		}
	}
	var inputs []*graph.Node
	for _, p := range n.Parents {
		i, err := Compile(p, scope)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, i)
	}
	r, err := graph.NewOperatorNode(op, inputs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n, err)
	}
	return r, nil
}

// CompileString parses and compiles an expression.
func CompileString(in string, scope Scope) (*graph.Node, error) {
	n, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return Compile(n, scope)
}
