// Package metrics defines the observability contract of schedule runs.
// Sinks such as the Prometheus sink in infra/metrics record one
// AggregationEvent per resolved dataset and, when they implement
// RejectionRecorder, every dataset refused for a schema mismatch. Several
// sinks can be combined with NewMultiSink; the factory helpers return one
// automatically when multiple sinks are configured.
package metrics
