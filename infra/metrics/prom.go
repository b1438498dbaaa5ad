package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mverdier/fuelscope/core/consumption"
	coremetrics "github.com/mverdier/fuelscope/core/metrics"
)

// PromSink exposes the latest consumption report as Prometheus gauges.
type PromSink struct {
	consumed   *prometheus.GaugeVec
	distance   *prometheus.GaugeVec
	per100     *prometheus.GaugeVec
	vehicles   *prometheus.GaugeVec
	confidence *prometheus.GaugeVec
	reports    prometheus.Counter
}

// NewPromSink registers the report metrics on the default registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		consumed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fuel_consumed_volume",
			Help: "Consumed fuel or energy per fuel type in the tank native unit",
		}, []string{"fuel_type"}),
		distance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fuel_consumption_distance_km",
			Help: "Distance covered by usable consumption segments per fuel type",
		}, []string{"fuel_type"}),
		per100: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fuel_consumption_per_100km",
			Help: "Consumption per 100 km per fuel type",
		}, []string{"fuel_type"}),
		vehicles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fuel_consumption_vehicles",
			Help: "Distinct vehicles contributing to the report per fuel type",
		}, []string{"fuel_type"}),
		confidence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fuel_consumption_confidence",
			Help: "Report confidence per fuel type: 1 for the active tier, 0 otherwise",
		}, []string{"fuel_type", "confidence"}),
		reports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fuel_consumption_reports_total",
			Help: "Number of consumption reports computed",
		}),
	}
	var err error
	for _, g := range []**prometheus.GaugeVec{&s.consumed, &s.distance, &s.per100, &s.vehicles, &s.confidence} {
		if *g, err = registerGaugeVec(reg, *g); err != nil {
			return nil, err
		}
	}
	if err := reg.Register(s.reports); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.reports = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	return s, nil
}

func registerGaugeVec(reg prometheus.Registerer, g *prometheus.GaugeVec) (*prometheus.GaugeVec, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec), nil
		}
		return nil, err
	}
	return g, nil
}

// RecordReport updates the gauges from the report.
func (s *PromSink) RecordReport(r consumption.Report) error {
	for _, f := range r.FuelTypes {
		s.consumed.WithLabelValues(f.FuelType).Set(f.Consumed)
		s.distance.WithLabelValues(f.FuelType).Set(f.Distance)
		if f.Per100 != nil {
			s.per100.WithLabelValues(f.FuelType).Set(*f.Per100)
		}
		s.vehicles.WithLabelValues(f.FuelType).Set(float64(f.Vehicles))
		for _, tier := range []consumption.Confidence{
			consumption.ConfidenceHigh, consumption.ConfidenceMedium, consumption.ConfidenceLow,
		} {
			v := 0.0
			if tier == f.Confidence {
				v = 1
			}
			s.confidence.WithLabelValues(f.FuelType, tier.String()).Set(v)
		}
	}
	s.reports.Inc()
	return nil
}

var _ coremetrics.ReportSink = (*PromSink)(nil)
