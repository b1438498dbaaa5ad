package config

import (
	"fmt"

	"github.com/mverdier/fuelscope/core/consumption"
)

// ReportConfig tunes the consumption pipeline and the periodic snapshot
// pushed to the metrics sinks.
type ReportConfig struct {
	// MinimumDistanceKm is the hard gate below which a segment is excluded.
	MinimumDistanceKm float64 `json:"minimum_distance_km"`
	// ShortDistanceKm is the softer cutoff that demotes confidence.
	ShortDistanceKm float64 `json:"short_distance_km"`
	// OutlierBands overrides the plausible per-100 rate range per fuel type.
	OutlierBands map[string]consumption.Band `json:"outlier_bands"`
	// SnapshotIntervalMinutes is how often the service recomputes the
	// report and pushes it to the sinks. 0 disables snapshots.
	SnapshotIntervalMinutes int `json:"snapshot_interval_minutes"`
	// WindowDays bounds the trailing telemetry window of each snapshot.
	WindowDays int `json:"window_days"`
}

// SetDefaults applies the standard pipeline cutoffs.
func (c *ReportConfig) SetDefaults() {
	def := consumption.DefaultThresholds()
	if c.MinimumDistanceKm == 0 {
		c.MinimumDistanceKm = def.MinimumDistance
	}
	if c.ShortDistanceKm == 0 {
		c.ShortDistanceKm = def.ShortDistance
	}
	if c.WindowDays == 0 {
		c.WindowDays = 90
	}
}

// Validate checks the cutoffs are coherent.
func (c ReportConfig) Validate() error {
	if c.MinimumDistanceKm < 0 || c.ShortDistanceKm < 0 {
		return fmt.Errorf("distance cutoffs must be non-negative")
	}
	if c.ShortDistanceKm < c.MinimumDistanceKm {
		return fmt.Errorf("short_distance_km must not be below minimum_distance_km")
	}
	for fuel, b := range c.OutlierBands {
		if b.Min < 0 || b.Max <= b.Min {
			return fmt.Errorf("invalid outlier band for %s", fuel)
		}
	}
	return nil
}

// Thresholds builds the pipeline thresholds, layering configured outlier
// bands over the defaults.
func (c ReportConfig) Thresholds() consumption.Thresholds {
	th := consumption.DefaultThresholds()
	th.MinimumDistance = c.MinimumDistanceKm
	th.ShortDistance = c.ShortDistanceKm
	for fuel, b := range c.OutlierBands {
		th.OutlierBands[fuel] = b
	}
	return th
}
