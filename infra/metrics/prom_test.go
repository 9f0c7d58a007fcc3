package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/readingschedule/core/factory"
	coremetrics "github.com/kilianp07/readingschedule/core/metrics"
)

func TestPromSink_RecordAggregation(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	ev := coremetrics.AggregationEvent{
		RunID:    "run-1",
		Shape:    "roster",
		Variant:  "dated",
		Rows:     3,
		Placed:   4,
		Skipped:  map[string]int{"closed_slot": 2, "off_grid": 0},
		Duration: 20 * time.Millisecond,
		Time:     time.Now(),
	}
	require.NoError(t, sink.RecordAggregation(ev))
	require.NoError(t, sink.RecordAggregation(ev))

	expected := `
# HELP schedule_aggregations_total Total number of datasets resolved into a schedule
# TYPE schedule_aggregations_total counter
schedule_aggregations_total{shape="roster",variant="dated"} 2
`
	if err := testutil.CollectAndCompare(sink.runs, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	assert.Equal(t, 8.0, testutil.ToFloat64(sink.placed))
	assert.Equal(t, 4.0, testutil.ToFloat64(sink.skipped.WithLabelValues("closed_slot")))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.skipped), "zero counts are not exported")
	assert.Equal(t, 3.0, testutil.ToFloat64(sink.rows))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.duration))
}

func TestPromSink_RecordRejection(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordRejection(coremetrics.RejectionEvent{Shape: "grid", Missing: []string{"Saturday"}}))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.rejections.WithLabelValues("grid")))
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordAggregation(coremetrics.AggregationEvent{Shape: "grid", Variant: "bare"}))
	require.NoError(t, second.RecordAggregation(coremetrics.AggregationEvent{Shape: "grid", Variant: "bare"}))
	assert.Equal(t, 2.0, testutil.ToFloat64(second.runs.WithLabelValues("grid", "bare")))
}

func TestFactoryRegistersPrometheus(t *testing.T) {
	sink, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "prometheus"}})
	require.NoError(t, err)
	multi, ok := sink.(*coremetrics.MultiSink)
	require.True(t, ok)
	require.Len(t, multi.Sinks, 2)
	_, ok = multi.Sinks[1].(*PromSink)
	assert.True(t, ok)
}
