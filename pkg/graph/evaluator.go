package graph

import (
	"github.com/mandelsoft/logging"
)

// Observer gets informed about every computable node resolved
// by an Evaluator.
type Observer interface {
	// Hit is called when the result is taken from the cache.
	Hit(n *Node, inputs []float64, result float64)
	// Miss is called after the operator has been invoked.
	Miss(n *Node, inputs []float64, result float64)
}

// Evaluator computes node values using the per-node result caches.
// The graph is walked with an explicit stack, so the nesting depth
// of a graph is not limited by the goroutine stack.
type Evaluator struct {
	log       logging.UnboundLogger
	observers []Observer
}

var defaultEvaluator = &Evaluator{log: log}

// NewEvaluator creates an evaluator logging to the given context.
// If no context is given the default logging context is used.
func NewEvaluator(lctx logging.AttributionContextProvider, observers ...Observer) *Evaluator {
	if lctx == nil {
		lctx = logging.DefaultContext()
	}
	return &Evaluator{
		log:       logging.DynamicLogger(lctx.AttributionContext(), REALM),
		observers: observers,
	}
}

type frame struct {
	node     *Node
	expanded bool
}

// Compute returns the current value of a node.
// The inputs of every computable node are resolved in input order and
// the operator is invoked only for input tuples not yet cached.
// Within a single call every node is resolved at most once.
func (e *Evaluator) Compute(n *Node) float64 {
	if n.IsVariable() {
		return n.value
	}

	resolved := map[*Node]float64{}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top].node
		if _, ok := resolved[cur]; ok {
			stack = stack[:top]
			continue
		}
		if cur.IsVariable() {
			resolved[cur] = cur.value
			stack = stack[:top]
			continue
		}
		if !stack[top].expanded {
			stack[top].expanded = true
			// reverse order, so that the first input is resolved first
			for i := len(cur.inputs) - 1; i >= 0; i-- {
				if _, ok := resolved[cur.inputs[i]]; !ok {
					stack = append(stack, frame{node: cur.inputs[i]})
				}
			}
			continue
		}
		values := make([]float64, len(cur.inputs))
		for i, in := range cur.inputs {
			values[i] = resolved[in]
		}
		resolved[cur] = e.evaluate(cur, values)
		stack = stack[:top]
	}
	return resolved[n]
}

func (e *Evaluator) evaluate(n *Node, values []float64) float64 {
	key := newCacheKey(values)
	if r, ok := n.cache.get(key); ok {
		e.log.Trace("using cached value {{result}} for {{operator}}{{inputs}}", "operator", n.operator, "inputs", values, "result", r)
		for _, o := range e.observers {
			o.Hit(n, values, r)
		}
		return r
	}
	r := n.operator.Apply(values)
	n.cache.put(key, r)
	e.log.Trace("computing {{operator}}{{inputs}}: {{result}}", "operator", n.operator, "inputs", values, "result", r)
	for _, o := range e.observers {
		o.Miss(n, values, r)
	}
	return r
}
