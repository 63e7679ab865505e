package app

import (
	"context"
	"fmt"
	"io"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/mandelsoft/exprgraph/pkg/graph"
	"github.com/mandelsoft/exprgraph/pkg/metrics"
	"github.com/mandelsoft/exprgraph/pkg/utils"
)

// MaxPrecision is the maximum number of decimal digits a float64
// result can carry.
const MaxPrecision = 17

type Options struct {
	fs        vfs.FileSystem
	level     string
	precision int
	metrics   bool

	lctx   logging.Context
	reader *sdkmetric.ManualReader
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.level, "log-level", "L", o.level, "log level")
	flags.IntVarP(&o.precision, "precision", "p", o.precision, "number of decimal digits of printed results")
	flags.BoolVarP(&o.metrics, "metrics", "m", false, "print cache metrics after evaluation")
}

func (o *Options) Complete() error {
	lctx, err := configureLogging(o.level)
	if err != nil {
		return err
	}
	o.lctx = lctx
	if o.precision < 0 || o.precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
	}
	return nil
}

// Evaluator provides an evaluator for the configured logging and metrics
// settings. Additional observers are passed through.
func (o *Options) Evaluator(observers ...graph.Observer) (*graph.Evaluator, error) {
	if o.metrics {
		o.reader = sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(o.reader))
		m, err := metrics.New(mp.Meter("exprgraph"))
		if err != nil {
			return nil, err
		}
		observers = append(observers, m)
	}
	return graph.NewEvaluator(o.lctx, observers...), nil
}

func (o *Options) Round(v float64) float64 {
	return utils.RoundTo(v, o.precision)
}

func (o *Options) PrintMetrics(w io.Writer) error {
	if o.reader == nil {
		return nil
	}
	counts, err := metrics.Collect(context.Background(), o.reader)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "OPERATOR HITS MISSES\n")
	for _, c := range counts {
		fmt.Fprintf(w, "%8s %4d %6d\n", c.Operator, c.Hits, c.Misses)
	}
	return nil
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:        utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		level:     "info",
		precision: 5,
	}

	maincmd := &cobra.Command{
		Use:   "exprgraph <options> <cmd> <args>",
		Short: "evaluate cached expression graphs",
		Long: `
This command evaluates arithmetic expressions built from variables, the
operators +, -, *, /, ^ and the functions add, sub, mul, div, sin and pow.
Results of sub expressions are cached by their input values.
`,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Complete()
		},
	}
	TweakCommand(maincmd)
	opts.AddFlags(maincmd.PersistentFlags())

	maincmd.AddCommand(NewEval(opts))
	maincmd.AddCommand(NewRun(opts))
	return maincmd
}

func TweakCommand(cmd *cobra.Command) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.DisableFlagsInUseLine = true
}
