package expression

import (
	"fmt"
	"slices"
	"strconv"
	"unicode"

	"github.com/mandelsoft/exprgraph/pkg/utils"
)

// Node is a node of a parsed expression.
// A node with a value is a literal, a node with parents
// is an operator (infix symbol) or a function call (name), and
// a node with a name only is a variable.
type Node struct {
	Name    string
	Parents []*Node
	Value   *float64
}

func (n *Node) String() string {
	if n.Value != nil {
		return strconv.FormatFloat(*n.Value, 'g', -1, 64)
	}
	if len(n.Parents) > 0 {
		if n.IsFunction() {
			return fmt.Sprintf("%s(%s)", n.Name, utils.Join(n.Parents))
		}
		s := ""
		sep := ""
		for _, p := range n.Parents {
			s = fmt.Sprintf("%s%s%s", s, sep, p)
			sep = n.Name
		}
		return fmt.Sprintf("(%s)", s)
	}
	return n.Name
}

func (n *Node) IsFunction() bool {
	r := []rune(n.Name)
	return len(n.Parents) > 0 && len(r) > 0 && unicode.IsLetter(r[0])
}

func NewValueNode(v float64) *Node {
	return &Node{
		Value: utils.Pointer(v),
	}
}

func NewOperandNode(n string) *Node {
	return &Node{
		Name: n,
	}
}

func NewOperatorNode(op string, ops ...*Node) *Node {
	return &Node{
		Name:    op,
		Parents: ops,
	}
}

// Operands returns the distinct variable names in order of appearance.
func (n *Node) Operands() []string {
	if n.Value != nil {
		return nil
	}
	if len(n.Parents) > 0 {
		var result []string
		for _, p := range n.Parents {
			for _, o := range p.Operands() {
				if !slices.Contains(result, o) {
					result = append(result, o)
				}
			}
		}
		return result
	}
	return []string{n.Name}
}
