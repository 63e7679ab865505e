package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mandelsoft/exprgraph/pkg/graph"
)

const (
	MetricHits   = "exprgraph.cache.hits"
	MetricMisses = "exprgraph.cache.misses"

	AttrOperator = "operator"
)

// Observer records cache hits and misses of an evaluator.
type Observer struct {
	ctx    context.Context
	hits   metric.Int64Counter
	misses metric.Int64Counter
}

var _ graph.Observer = (*Observer)(nil)

// New creates an observer recording to counters created with
// the given meter.
func New(meter metric.Meter) (*Observer, error) {
	hits, err := meter.Int64Counter(
		MetricHits,
		metric.WithDescription("Number of node evaluations answered from the cache"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		MetricMisses,
		metric.WithDescription("Number of operator invocations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	return &Observer{
		ctx:    context.Background(),
		hits:   hits,
		misses: misses,
	}, nil
}

func (o *Observer) Hit(n *graph.Node, inputs []float64, result float64) {
	o.hits.Add(o.ctx, 1, attributes(n))
}

func (o *Observer) Miss(n *graph.Node, inputs []float64, result float64) {
	o.misses.Add(o.ctx, 1, attributes(n))
}

func attributes(n *graph.Node) metric.AddOption {
	return metric.WithAttributes(attribute.String(AttrOperator, string(n.Operator())))
}
