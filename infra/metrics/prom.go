package metrics

import (
	coremetrics "github.com/kilianp07/readingschedule/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records schedule runs in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	placed     prometheus.Counter
	skipped    *prometheus.CounterVec
	rejections *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rows       prometheus.Gauge
}

// NewPromSink registers schedule metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	s, err := NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by a previous sink are reused.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_aggregations_total",
		Help: "Total number of datasets resolved into a schedule",
	}, []string{"shape", "variant"}))
	if err != nil {
		return nil, err
	}
	placed, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_names_placed_total",
		Help: "Total number of names placed into schedule cells",
	}))
	if err != nil {
		return nil, err
	}
	skipped, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_skipped_total",
		Help: "Rows, columns and flags skipped during aggregation",
	}, []string{"reason"}))
	if err != nil {
		return nil, err
	}
	rejections, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_rejections_total",
		Help: "Datasets rejected for missing required columns",
	}, []string{"shape"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schedule_aggregation_duration_seconds",
		Help:    "Time spent resolving one dataset",
		Buckets: prometheus.DefBuckets,
	}, []string{"shape"}))
	if err != nil {
		return nil, err
	}
	rows, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_rows",
		Help: "Number of time rows in the last produced schedule",
	}))
	if err != nil {
		return nil, err
	}
	return &PromSink{runs: runs, placed: placed, skipped: skipped, rejections: rejections, duration: duration, rows: rows}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordAggregation updates the run counters, skip reasons and duration.
func (s *PromSink) RecordAggregation(ev coremetrics.AggregationEvent) error {
	s.runs.WithLabelValues(ev.Shape, ev.Variant).Inc()
	s.placed.Add(float64(ev.Placed))
	for reason, n := range ev.Skipped {
		if n > 0 {
			s.skipped.WithLabelValues(reason).Add(float64(n))
		}
	}
	s.duration.WithLabelValues(ev.Shape).Observe(ev.Duration.Seconds())
	s.rows.Set(float64(ev.Rows))
	return nil
}

// RecordRejection counts a dataset refused for missing columns.
func (s *PromSink) RecordRejection(ev coremetrics.RejectionEvent) error {
	s.rejections.WithLabelValues(ev.Shape).Inc()
	return nil
}
