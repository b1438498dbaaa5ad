package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mverdier/fuelscope/core/consumption"
	"github.com/mverdier/fuelscope/core/model"
)

func TestPromSink_RecordReport(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	per100 := 6.5
	report := consumption.Report{
		FuelTypes: []consumption.FuelTypeConsumption{{
			FuelType:   model.FuelDiesel,
			Consumed:   32.5,
			Distance:   500,
			Per100:     &per100,
			Confidence: consumption.ConfidenceHigh,
			Vehicles:   3,
		}},
		TotalDistance: 500,
		TotalVehicles: 3,
	}
	if err := sink.RecordReport(report); err != nil {
		t.Fatalf("record: %v", err)
	}

	expected := `
# HELP fuel_consumption_per_100km Consumption per 100 km per fuel type
# TYPE fuel_consumption_per_100km gauge
fuel_consumption_per_100km{fuel_type="diesel"} 6.5
`
	if err := testutil.CollectAndCompare(sink.per100, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if got := testutil.ToFloat64(sink.vehicles.WithLabelValues(model.FuelDiesel)); got != 3 {
		t.Errorf("expected 3 vehicles, got %v", got)
	}
	if got := testutil.ToFloat64(sink.confidence.WithLabelValues(model.FuelDiesel, "high")); got != 1 {
		t.Errorf("expected active high tier, got %v", got)
	}
	if got := testutil.ToFloat64(sink.confidence.WithLabelValues(model.FuelDiesel, "low")); got != 0 {
		t.Errorf("expected inactive low tier, got %v", got)
	}
	if got := testutil.ToFloat64(sink.reports); got != 1 {
		t.Errorf("expected 1 report, got %v", got)
	}
}
