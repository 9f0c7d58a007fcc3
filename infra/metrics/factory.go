package metrics

import (
	coremetrics "github.com/kilianp07/readingschedule/core/metrics"
)

// init registers the Prometheus sink next to the built-in nop sink.
func init() {
	_ = coremetrics.RegisterMetricsSink("prometheus", func(map[string]any) (coremetrics.MetricsSink, error) {
		return NewPromSink(coremetrics.Config{})
	})
}
