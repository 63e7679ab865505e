package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/exprgraph/pkg/expression"
	"github.com/mandelsoft/exprgraph/pkg/graph"
)

type Run struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewRun(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario file>",
		Short: "evaluate an expression for a sequence of variable assignments",
		Long: `
The scenario file is a YAML document with an expression and a list
of steps. Every step assigns values to variables and evaluates the
expression afterwards. Values not assigned keep the value of the
previous step.

  expression: x1 + x2 * sin(x2 + pow(x3, x4))
  steps:
  - x1: 1
    x2: 2
    x3: 3
    x4: 3
  - x1: 2
`,
		Args: cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Run{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Run) Run(args []string) error {
	s, err := ReadScenario(c.mainopts.fs, args[0])
	if err != nil {
		return err
	}

	scope := expression.Scope{}
	n, err := expression.CompileString(s.Expression, scope)
	if err != nil {
		return err
	}

	cnt := &invocations{}
	ev, err := c.mainopts.Evaluator(cnt)
	if err != nil {
		return err
	}

	log := c.mainopts.lctx.Logger(REALM)
	out := c.cmd.OutOrStdout()
	for i, step := range s.Steps {
		err = assign(scope, step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		cnt.count = 0
		r := ev.Compute(n)
		log.Debug("step {{step}} evaluated to {{result}}", "step", i+1, "result", r)
		fmt.Fprintf(out, "step %d: Graph output = %v (%d operator invocations)\n", i+1, c.mainopts.Round(r), cnt.count)
	}
	return c.mainopts.PrintMetrics(out)
}

// invocations counts operator invocations.
type invocations struct {
	count int
}

var _ graph.Observer = (*invocations)(nil)

func (c *invocations) Hit(n *graph.Node, inputs []float64, result float64) {}

func (c *invocations) Miss(n *graph.Node, inputs []float64, result float64) {
	c.count++
}
