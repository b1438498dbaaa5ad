package model

import (
	"fmt"
	"time"
)

// RecordKind distinguishes refuel rows from the other telemetry row kinds.
type RecordKind int

const (
	KindRefuel RecordKind = iota
	KindExpense
	KindCheckpoint
)

// String returns the wire representation of the record kind.
func (k RecordKind) String() string {
	switch k {
	case KindRefuel:
		return "refuel"
	case KindExpense:
		return "expense"
	case KindCheckpoint:
		return "checkpoint"
	}
	return "unknown"
}

// ParseRecordKind converts a wire string into a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	switch s {
	case "refuel":
		return KindRefuel, nil
	case "expense":
		return KindExpense, nil
	case "checkpoint":
		return KindCheckpoint, nil
	}
	return 0, fmt.Errorf("unknown record kind %q", s)
}

// TankSlot selects one of the up to two physical tanks of a vehicle.
type TankSlot int

const (
	TankPrimary TankSlot = iota
	TankSecondary
)

func (t TankSlot) String() string {
	if t == TankSecondary {
		return "secondary"
	}
	return "primary"
}

// ParseTankSlot converts a wire string into a TankSlot. The empty string
// maps to the primary tank.
func ParseTankSlot(s string) (TankSlot, error) {
	switch s {
	case "", "primary":
		return TankPrimary, nil
	case "secondary":
		return TankSecondary, nil
	}
	return 0, fmt.Errorf("unknown tank slot %q", s)
}

// TelemetryPoint is a single odometer-stamped telemetry row. Nullable
// signals are pointers; nil means the signal was not reported.
type TelemetryPoint struct {
	VehicleID string
	Odometer  float64 // vehicle's own distance unit, conventionally km
	Timestamp time.Time
	Kind      RecordKind

	// FillFraction is an approximate gauge reading in [0,1].
	FillFraction *float64

	// Refuel-only signals.
	FillVolume   *float64 // added volume in the tank's native unit
	FilledToFull *bool
	Tank         *TankSlot // nil means primary
}

// AssignedTank returns the tank the point belongs to. Non-refuel rows and
// refuels without a selector are assigned to the primary tank.
func (p TelemetryPoint) AssignedTank() TankSlot {
	if p.Kind == KindRefuel && p.Tank != nil {
		return *p.Tank
	}
	return TankPrimary
}

// IsRefuel reports whether the point counts as a refuel for consumption
// purposes: a refuel row with a positive fill volume.
func (p TelemetryPoint) IsRefuel() bool {
	return p.Kind == KindRefuel && p.FillVolume != nil && *p.FillVolume > 0
}
