package model

// Well-known fuel and energy type identifiers. The consumption pipeline
// treats the fuel type as an opaque string; these constants only matter to
// the unit-label helpers and the default outlier bands.
const (
	FuelGasoline = "gasoline"
	FuelDiesel   = "diesel"
	FuelLPG      = "lpg"
	FuelElectric = "electric"
	FuelHydrogen = "hydrogen"
)

// TankConfig describes the tank layout of one vehicle. A nil or
// non-positive capacity, or an empty fuel type, marks the slot as
// unconfigured and excludes it from all calculation.
type TankConfig struct {
	VehicleID string

	PrimaryCapacity *float64 // tank native unit: liters, kWh or kg
	PrimaryFuelType string

	SecondaryCapacity *float64
	SecondaryFuelType string
}

// Tank returns the capacity and fuel type for the given slot. ok is false
// when the slot is unconfigured or invalid.
func (c TankConfig) Tank(slot TankSlot) (capacity float64, fuelType string, ok bool) {
	var cap *float64
	var fuel string
	if slot == TankSecondary {
		cap, fuel = c.SecondaryCapacity, c.SecondaryFuelType
	} else {
		cap, fuel = c.PrimaryCapacity, c.PrimaryFuelType
	}
	if cap == nil || *cap <= 0 || fuel == "" {
		return 0, "", false
	}
	return *cap, fuel, true
}
