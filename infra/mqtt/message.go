package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mverdier/fuelscope/core/model"
)

// telemetryMessage is the wire form of one telemetry row. The odometer is
// nullable on the wire; rows without one cannot anchor a consumption
// segment and are rejected at ingest.
type telemetryMessage struct {
	VehicleID    string    `json:"vehicle_id"`
	Odometer     *float64  `json:"odometer"`
	Timestamp    time.Time `json:"timestamp"`
	Kind         string    `json:"kind"`
	FillFraction *float64  `json:"fill_fraction,omitempty"`
	FillVolume   *float64  `json:"fill_volume,omitempty"`
	FilledToFull *bool     `json:"filled_to_full,omitempty"`
	Tank         string    `json:"tank,omitempty"`
}

// tankConfigMessage is the wire form of a vehicle's tank layout.
type tankConfigMessage struct {
	VehicleID         string   `json:"vehicle_id"`
	PrimaryCapacity   *float64 `json:"primary_capacity,omitempty"`
	PrimaryFuelType   string   `json:"primary_fuel_type,omitempty"`
	SecondaryCapacity *float64 `json:"secondary_capacity,omitempty"`
	SecondaryFuelType string   `json:"secondary_fuel_type,omitempty"`
}

func decodePoint(payload []byte) (model.TelemetryPoint, error) {
	var m telemetryMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		return model.TelemetryPoint{}, fmt.Errorf("decode telemetry: %w", err)
	}
	if m.VehicleID == "" {
		return model.TelemetryPoint{}, fmt.Errorf("vehicle_id is required")
	}
	if m.Odometer == nil {
		return model.TelemetryPoint{}, fmt.Errorf("odometer is required")
	}
	kind, err := model.ParseRecordKind(m.Kind)
	if err != nil {
		return model.TelemetryPoint{}, err
	}
	p := model.TelemetryPoint{
		VehicleID:    m.VehicleID,
		Odometer:     *m.Odometer,
		Timestamp:    m.Timestamp.UTC(),
		Kind:         kind,
		FillFraction: m.FillFraction,
		FillVolume:   m.FillVolume,
		FilledToFull: m.FilledToFull,
	}
	if m.Tank != "" {
		slot, err := model.ParseTankSlot(m.Tank)
		if err != nil {
			return model.TelemetryPoint{}, err
		}
		p.Tank = &slot
	}
	return p, nil
}

func decodeTankConfig(payload []byte) (model.TankConfig, error) {
	var m tankConfigMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		return model.TankConfig{}, fmt.Errorf("decode tank config: %w", err)
	}
	if m.VehicleID == "" {
		return model.TankConfig{}, fmt.Errorf("vehicle_id is required")
	}
	return model.TankConfig{
		VehicleID:         m.VehicleID,
		PrimaryCapacity:   m.PrimaryCapacity,
		PrimaryFuelType:   m.PrimaryFuelType,
		SecondaryCapacity: m.SecondaryCapacity,
		SecondaryFuelType: m.SecondaryFuelType,
	}, nil
}
