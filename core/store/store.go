package store

import (
	"time"

	"github.com/mverdier/fuelscope/core/model"
)

// Filter narrows a telemetry query. Zero-valued fields are ignored.
type Filter struct {
	VehicleIDs []string
	Start      time.Time
	End        time.Time
}

// Matches reports whether the point satisfies the filter.
func (f Filter) Matches(p model.TelemetryPoint) bool {
	if !f.Start.IsZero() && p.Timestamp.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && p.Timestamp.After(f.End) {
		return false
	}
	if len(f.VehicleIDs) == 0 {
		return true
	}
	for _, id := range f.VehicleIDs {
		if id == p.VehicleID {
			return true
		}
	}
	return false
}

// Store persists telemetry points and per-vehicle tank configurations and
// feeds the consumption pipeline. Points come back ordered by (vehicle,
// odometer, timestamp) so repeated queries are reproducible.
type Store interface {
	AddPoint(p model.TelemetryPoint) error
	PutTankConfig(c model.TankConfig) error
	Points(f Filter) ([]model.TelemetryPoint, error)
	TankConfigs() ([]model.TankConfig, error)
	Close() error
}
