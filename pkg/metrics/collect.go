package metrics

import (
	"context"
	"sort"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Count is the cache usage recorded for one operator.
type Count struct {
	Operator string
	Hits     int64
	Misses   int64
}

// Collect reads the recorded counters from a manual reader,
// sorted by operator name.
func Collect(ctx context.Context, reader *sdkmetric.ManualReader) ([]Count, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}

	counts := map[string]*Count{}
	get := func(op string) *Count {
		c := counts[op]
		if c == nil {
			c = &Count{Operator: op}
			counts[op] = c
		}
		return c
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(AttrOperator)
				switch m.Name {
				case MetricHits:
					get(v.AsString()).Hits += dp.Value
				case MetricMisses:
					get(v.AsString()).Misses += dp.Value
				}
			}
		}
	}

	var result []Count
	for _, c := range counts {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Operator < result[j].Operator })
	return result, nil
}
