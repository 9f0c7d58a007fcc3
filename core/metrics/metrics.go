package metrics

import "time"

// AggregationEvent summarises one schedule run.
type AggregationEvent struct {
	RunID   string
	Shape   string
	Variant string
	// Rows is the number of time rows in the produced grid.
	Rows          int
	Registrations int
	Active        int
	Placed        int
	// Skipped counts recovered problems by reason, e.g. "unparseable_column".
	Skipped  map[string]int
	Duration time.Duration
	Time     time.Time
}

// MetricsSink records schedule runs for observability purposes.
type MetricsSink interface {
	RecordAggregation(ev AggregationEvent) error
}

// RejectionEvent describes a dataset refused before aggregation.
type RejectionEvent struct {
	Shape   string
	Missing []string
	Time    time.Time
}

// RejectionRecorder records rejected datasets.
type RejectionRecorder interface {
	RecordRejection(ev RejectionEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAggregation(AggregationEvent) error { return nil }
func (NopSink) RecordRejection(RejectionEvent) error     { return nil }

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAggregation forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordAggregation(ev AggregationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAggregation(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRejection forwards the event to the sinks implementing RejectionRecorder.
func (m *MultiSink) RecordRejection(ev RejectionEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(RejectionRecorder); ok {
			if err := rec.RecordRejection(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
