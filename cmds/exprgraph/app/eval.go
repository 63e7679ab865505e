package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/exprgraph/pkg/expression"
)

type Eval struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewEval(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression> {<name>=<value>}",
		Short: "evaluate an expression for a set of variable values",
		Args:  cobra.MinimumNArgs(1),
	}
	TweakCommand(cmd)

	c := &Eval{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Eval) Run(args []string) error {
	values := map[string]float64{}
	for _, a := range args[1:] {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("invalid assignment %q: <name>=<value> expected", a)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid value for %q: %w", name, err)
		}
		values[strings.TrimSpace(name)] = v
	}

	scope := expression.Scope{}
	n, err := expression.CompileString(args[0], scope)
	if err != nil {
		return err
	}
	err = assign(scope, values)
	if err != nil {
		return err
	}

	ev, err := c.mainopts.Evaluator()
	if err != nil {
		return err
	}
	out := c.cmd.OutOrStdout()
	fmt.Fprintf(out, "Graph output = %v\n", c.mainopts.Round(ev.Compute(n)))
	return c.mainopts.PrintMetrics(out)
}

func assign(scope expression.Scope, values map[string]float64) error {
	for name, v := range values {
		n := scope[name]
		if n == nil {
			return fmt.Errorf("variable %q not used in expression", name)
		}
		err := n.Set(v)
		if err != nil {
			return err
		}
	}
	return nil
}
