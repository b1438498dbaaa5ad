package consumption

import (
	"testing"

	"github.com/mverdier/fuelscope/core/model"
)

func TestFuelTypePredicates(t *testing.T) {
	if !IsElectric(model.FuelElectric) || IsElectric(model.FuelDiesel) {
		t.Fatalf("IsElectric wrong")
	}
	if !IsHydrogen(model.FuelHydrogen) || IsHydrogen(model.FuelElectric) {
		t.Fatalf("IsHydrogen wrong")
	}
}

func TestUnitLabels(t *testing.T) {
	if got := VolumeUnitLabel(model.FuelElectric, "l"); got != "kWh" {
		t.Fatalf("electric volume label: %s", got)
	}
	if got := VolumeUnitLabel(model.FuelHydrogen, "l"); got != "kg" {
		t.Fatalf("hydrogen volume label: %s", got)
	}
	if got := VolumeUnitLabel(model.FuelGasoline, "gal"); got != "gal" {
		t.Fatalf("liquid labels pass through: %s", got)
	}
	if got := ConsumptionUnitLabel(model.FuelElectric, "l/100km"); got != "kWh/100km" {
		t.Fatalf("electric consumption label: %s", got)
	}
	if got := ConsumptionUnitLabel(model.FuelDiesel, "mpg"); got != "mpg" {
		t.Fatalf("liquid consumption labels pass through: %s", got)
	}
}
