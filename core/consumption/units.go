package consumption

import "github.com/mverdier/fuelscope/core/model"

// IsElectric reports whether the fuel type denotes electric energy.
func IsElectric(fuelType string) bool { return fuelType == model.FuelElectric }

// IsHydrogen reports whether the fuel type denotes hydrogen.
func IsHydrogen(fuelType string) bool { return fuelType == model.FuelHydrogen }

// VolumeUnitLabel maps a generic liquid volume label (e.g. "l" or "gal") to
// the label matching the fuel type: kWh for electric, kg for hydrogen,
// unchanged otherwise.
func VolumeUnitLabel(fuelType, liquidLabel string) string {
	switch {
	case IsElectric(fuelType):
		return "kWh"
	case IsHydrogen(fuelType):
		return "kg"
	}
	return liquidLabel
}

// ConsumptionUnitLabel maps a generic consumption label (e.g. "l/100km") to
// the label matching the fuel type: kWh/100km for electric, kg/100km for
// hydrogen, unchanged otherwise.
func ConsumptionUnitLabel(fuelType, liquidLabel string) string {
	switch {
	case IsElectric(fuelType):
		return "kWh/100km"
	case IsHydrogen(fuelType):
		return "kg/100km"
	}
	return liquidLabel
}
