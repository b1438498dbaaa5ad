package consumption

import (
	"time"

	"github.com/mverdier/fuelscope/core/model"
)

func f64(v float64) *float64 { return &v }
func bp(v bool) *bool        { return &v }

var testTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fullRefuel is a refuel with the filled-to-full flag set.
func fullRefuel(vid string, odo, vol float64) model.TelemetryPoint {
	return model.TelemetryPoint{
		VehicleID:    vid,
		Odometer:     odo,
		Timestamp:    testTime,
		Kind:         model.KindRefuel,
		FillVolume:   f64(vol),
		FilledToFull: bp(true),
	}
}

// partialRefuel is a refuel without any tank-level signal.
func partialRefuel(vid string, odo, vol float64) model.TelemetryPoint {
	return model.TelemetryPoint{
		VehicleID:  vid,
		Odometer:   odo,
		Timestamp:  testTime,
		Kind:       model.KindRefuel,
		FillVolume: f64(vol),
	}
}

// gaugePoint is a non-refuel row carrying a gauge fraction.
func gaugePoint(vid string, odo, fraction float64) model.TelemetryPoint {
	return model.TelemetryPoint{
		VehicleID:    vid,
		Odometer:     odo,
		Timestamp:    testTime,
		Kind:         model.KindCheckpoint,
		FillFraction: f64(fraction),
	}
}

func checkpoint(vid string, odo float64) model.TelemetryPoint {
	return model.TelemetryPoint{
		VehicleID: vid,
		Odometer:  odo,
		Timestamp: testTime,
		Kind:      model.KindCheckpoint,
	}
}

func tank(vid string, capacity float64, fuelType string) model.TankConfig {
	return model.TankConfig{VehicleID: vid, PrimaryCapacity: f64(capacity), PrimaryFuelType: fuelType}
}

func hasReason(reasons []Reason, r Reason) bool {
	for _, have := range reasons {
		if have == r {
			return true
		}
	}
	return false
}
