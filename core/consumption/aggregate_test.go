package consumption

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/mverdier/fuelscope/core/model"
)

func TestAggregationAdditivity(t *testing.T) {
	segments := []Segment{
		{VehicleID: "v1", FuelType: model.FuelDiesel, Consumed: 30, Distance: 300, Confidence: ConfidenceHigh, Refuels: 2, Points: 4},
		{VehicleID: "v2", FuelType: model.FuelDiesel, Consumed: 20, Distance: 200, Confidence: ConfidenceMedium, Refuels: 1, Points: 3},
	}
	report := aggregate(segments)
	if len(report.FuelTypes) != 1 {
		t.Fatalf("expected one fuel type, got %d", len(report.FuelTypes))
	}
	f := report.FuelTypes[0]
	if f.Consumed != 50 || f.Distance != 500 {
		t.Fatalf("expected 50/500, got %v/%v", f.Consumed, f.Distance)
	}
	if f.Per100 == nil || math.Abs(*f.Per100-10) > 1e-9 {
		t.Fatalf("expected per-100 of 10, got %v", f.Per100)
	}
	if f.Vehicles != 2 {
		t.Fatalf("expected 2 vehicles, got %d", f.Vehicles)
	}
	if f.Confidence != ConfidenceMedium {
		t.Fatalf("worst member confidence wins, got %v", f.Confidence)
	}
	if f.Refuels != 3 || f.Points != 7 || f.UsableSegments != 2 {
		t.Fatalf("bad counters %+v", f)
	}
	if report.TotalDistance != 500 || report.TotalVehicles != 2 {
		t.Fatalf("bad totals %+v", report)
	}
}

func TestAggregationWorstConfidenceAndNilPer100(t *testing.T) {
	segments := []Segment{
		{VehicleID: "v1", FuelType: model.FuelGasoline, Confidence: ConfidenceLow,
			Reasons: []Reason{ReasonDistanceTooShort}, Points: 2,
			Excluded: []ExcludedSegment{{VehicleID: "v1", Distance: 4, Reason: ReasonDistanceTooShort}}},
	}
	report := aggregate(segments)
	f := report.FuelTypes[0]
	if f.Per100 != nil {
		t.Fatalf("per-100 must be nil at zero distance, got %v", *f.Per100)
	}
	if f.Confidence != ConfidenceLow {
		t.Fatalf("expected low, got %v", f.Confidence)
	}
	if f.UsableSegments != 0 {
		t.Fatalf("zero-distance segments are not usable")
	}
	if len(f.Excluded) != 1 {
		t.Fatalf("exclusions must surface in the aggregate: %v", f.Excluded)
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	th := DefaultThresholds()
	report := Compute(nil, nil, th)
	if len(report.FuelTypes) != 0 || report.TotalDistance != 0 || report.TotalVehicles != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	report = Compute([]model.TelemetryPoint{fullRefuel("v1", 0, 10)}, nil, th)
	if len(report.FuelTypes) != 0 {
		t.Fatalf("no tank config means no output, got %+v", report)
	}
}

func TestComputeSkipsInvalidTankConfig(t *testing.T) {
	pts := []model.TelemetryPoint{
		fullRefuel("v1", 0, 10),
		fullRefuel("v1", 500, 30),
	}
	configs := []model.TankConfig{
		{VehicleID: "v1", PrimaryCapacity: f64(-5), PrimaryFuelType: model.FuelDiesel},
	}
	if report := Compute(pts, configs, DefaultThresholds()); len(report.FuelTypes) != 0 {
		t.Fatalf("non-positive capacity must be skipped, got %+v", report)
	}
	configs[0] = model.TankConfig{VehicleID: "v1", PrimaryCapacity: f64(60)}
	if report := Compute(pts, configs, DefaultThresholds()); len(report.FuelTypes) != 0 {
		t.Fatalf("missing fuel type must be skipped, got %+v", report)
	}
}

func TestComputeTwoFuelTypes(t *testing.T) {
	pts := []model.TelemetryPoint{
		fullRefuel("d1", 0, 10),
		fullRefuel("d1", 500, 30),
		fullRefuel("e1", 0, 20),
		fullRefuel("e1", 400, 60),
	}
	configs := []model.TankConfig{
		tank("d1", 60, model.FuelDiesel),
		tank("e1", 80, model.FuelElectric),
	}
	report := Compute(pts, configs, DefaultThresholds())
	if len(report.FuelTypes) != 2 {
		t.Fatalf("expected 2 fuel types, got %d", len(report.FuelTypes))
	}
	// Output sorted by fuel type name.
	if report.FuelTypes[0].FuelType != model.FuelDiesel || report.FuelTypes[1].FuelType != model.FuelElectric {
		t.Fatalf("unexpected order: %v %v", report.FuelTypes[0].FuelType, report.FuelTypes[1].FuelType)
	}
	if report.TotalDistance != 900 || report.TotalVehicles != 2 {
		t.Fatalf("bad totals %+v", report)
	}
}

func TestComputeIdempotent(t *testing.T) {
	pts := []model.TelemetryPoint{
		fullRefuel("v1", 0, 10),
		partialRefuel("v1", 300, 25),
		fullRefuel("v1", 900, 45),
		partialRefuel("v2", 0, 30),
		partialRefuel("v2", 650, 35),
	}
	configs := []model.TankConfig{
		tank("v1", 60, model.FuelDiesel),
		tank("v2", 55, model.FuelDiesel),
	}
	th := DefaultThresholds()
	a, err := json.Marshal(Compute(pts, configs, th))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(Compute(pts, configs, th))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same input must yield byte-identical output:\n%s\n%s", a, b)
	}
}
