package mqtt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverdier/fuelscope/core/model"
)

func TestDecodePoint(t *testing.T) {
	payload := []byte(`{
		"vehicle_id": "v1",
		"odometer": 12345.6,
		"timestamp": "2025-05-01T08:00:00Z",
		"kind": "refuel",
		"fill_volume": 42.5,
		"filled_to_full": true,
		"tank": "secondary"
	}`)
	p, err := decodePoint(payload)
	require.NoError(t, err)
	assert.Equal(t, "v1", p.VehicleID)
	assert.Equal(t, 12345.6, p.Odometer)
	assert.Equal(t, time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), p.Timestamp)
	assert.Equal(t, model.KindRefuel, p.Kind)
	require.NotNil(t, p.FillVolume)
	assert.Equal(t, 42.5, *p.FillVolume)
	require.NotNil(t, p.FilledToFull)
	assert.True(t, *p.FilledToFull)
	require.NotNil(t, p.Tank)
	assert.Equal(t, model.TankSecondary, *p.Tank)
}

func TestDecodePointRejectsMissingFields(t *testing.T) {
	_, err := decodePoint([]byte(`{"odometer": 1, "kind": "refuel"}`))
	assert.Error(t, err, "missing vehicle_id")
	_, err = decodePoint([]byte(`{"vehicle_id": "v1", "kind": "refuel"}`))
	assert.Error(t, err, "missing odometer")
	_, err = decodePoint([]byte(`{"vehicle_id": "v1", "odometer": 1, "kind": "x"}`))
	assert.Error(t, err, "bad kind")
	_, err = decodePoint([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeTankConfig(t *testing.T) {
	payload := []byte(`{
		"vehicle_id": "v1",
		"primary_capacity": 60,
		"primary_fuel_type": "diesel"
	}`)
	c, err := decodeTankConfig(payload)
	require.NoError(t, err)
	assert.Equal(t, "v1", c.VehicleID)
	require.NotNil(t, c.PrimaryCapacity)
	assert.Equal(t, 60.0, *c.PrimaryCapacity)
	assert.Equal(t, model.FuelDiesel, c.PrimaryFuelType)
	assert.Nil(t, c.SecondaryCapacity)

	_, err = decodeTankConfig([]byte(`{}`))
	assert.Error(t, err)
}
