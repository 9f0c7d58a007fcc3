package metrics

import "github.com/kilianp07/readingschedule/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusPort is the listen address of the /metrics endpoint, e.g. ":9100".
	// An empty value disables the endpoint.
	PrometheusPort string `json:"prometheus_port"`
}
