// Package metrics defines the sink interfaces used to publish consumption
// reports for observability. Sinks like PromSink and InfluxSink live in
// infra/metrics and can be combined with NewMultiSink.
package metrics

import "github.com/mverdier/fuelscope/core/consumption"

// ReportSink records a computed consumption report.
type ReportSink interface {
	RecordReport(r consumption.Report) error
}

// NopSink discards every report.
type NopSink struct{}

func (NopSink) RecordReport(consumption.Report) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

type multiSink struct {
	sinks []ReportSink
}

// NewMultiSink fans a report out to every sink, returning the first error.
func NewMultiSink(sinks ...ReportSink) ReportSink {
	return &multiSink{sinks: sinks}
}

func (m *multiSink) RecordReport(r consumption.Report) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordReport(r); err != nil && first == nil {
			first = err
		}
	}
	return first
}
