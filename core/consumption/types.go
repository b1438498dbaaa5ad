package consumption

import (
	"encoding/json"
	"fmt"

	"github.com/mverdier/fuelscope/core/model"
)

// Confidence grades how reliable a consumption figure is. The order is a
// total order from best to worst so that demotion is a simple comparison.
type Confidence int

const (
	ConfidenceHigh Confidence = iota
	ConfidenceMedium
	ConfidenceLow
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	}
	return "unknown"
}

// Demote returns the worse of c and other. Confidence never improves.
func (c Confidence) Demote(other Confidence) Confidence {
	if other > c {
		return other
	}
	return c
}

// MarshalJSON renders the tier as its string form.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses the string form of a tier.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "high":
		*c = ConfidenceHigh
	case "medium":
		*c = ConfidenceMedium
	case "low":
		*c = ConfidenceLow
	default:
		return fmt.Errorf("unknown confidence %q", s)
	}
	return nil
}

// LevelSource tags how a tank level was derived for a point.
type LevelSource int

const (
	SourceUnknown LevelSource = iota
	SourceExact               // filled-to-full flag
	SourceApproximate         // gauge fraction
)

// Reason explains how a figure was derived or why its confidence was
// demoted. Reasons accumulate; they are not mutually exclusive.
type Reason string

const (
	ReasonFullToFull          Reason = "full-to-full"
	ReasonTankPercentage      Reason = "tank-percentage"
	ReasonMixedSources        Reason = "mixed-sources"
	ReasonShortDistance       Reason = "short-distance"
	ReasonConsumptionOutlier  Reason = "consumption-outlier"
	ReasonApproximation       Reason = "approximation"
	ReasonDistanceTooShort    Reason = "distance-too-short"
	ReasonNegativeConsumption Reason = "negative-consumption"
)

// ExcludedSegment records a discarded span of data together with the reason
// it was discarded, so reports can show that data existed but was unusable.
type ExcludedSegment struct {
	VehicleID string         `json:"vehicle_id"`
	Tank      model.TankSlot `json:"-"`
	TankName  string         `json:"tank"`
	Distance  float64        `json:"distance"`
	Reason    Reason         `json:"reason"`
}

func newExcluded(key groupKey, distance float64, reason Reason) ExcludedSegment {
	return ExcludedSegment{
		VehicleID: key.vehicleID,
		Tank:      key.tank,
		TankName:  key.tank.String(),
		Distance:  distance,
		Reason:    reason,
	}
}

// Segment is the reconstructed consumption over one vehicle+tank group.
type Segment struct {
	VehicleID  string            `json:"vehicle_id"`
	Tank       model.TankSlot    `json:"-"`
	FuelType   string            `json:"fuel_type"`
	Consumed   float64           `json:"consumed"`
	Distance   float64           `json:"distance"`
	Confidence Confidence        `json:"confidence"`
	Reasons    []Reason          `json:"reasons"`
	Refuels    int               `json:"refuels"`
	Points     int               `json:"points"`
	Excluded   []ExcludedSegment `json:"excluded,omitempty"`
}

// Per100 returns the consumption per 100 distance units, or 0 when the
// segment covers no distance.
func (s Segment) Per100() float64 {
	if s.Distance <= 0 {
		return 0
	}
	return s.Consumed / s.Distance * 100
}

// FuelTypeConsumption sums every contributing segment of one fuel type.
type FuelTypeConsumption struct {
	FuelType       string            `json:"fuel_type"`
	Consumed       float64           `json:"consumed"`
	Distance       float64           `json:"distance"`
	Per100         *float64          `json:"per_100,omitempty"` // nil when Distance is 0
	Confidence     Confidence        `json:"confidence"`
	Reasons        []Reason          `json:"reasons"`
	Vehicles       int               `json:"vehicles"`
	Refuels        int               `json:"refuels"`
	Points         int               `json:"points"`
	UsableSegments int               `json:"usable_segments"`
	Excluded       []ExcludedSegment `json:"excluded,omitempty"`
}

// Report is the outcome of one consumption computation.
type Report struct {
	FuelTypes     []FuelTypeConsumption `json:"fuel_types"`
	TotalDistance float64               `json:"total_distance"`
	TotalVehicles int                   `json:"total_vehicles"`
}

// Band is an inclusive range of plausible per-100 consumption rates.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether rate falls inside the band.
func (b Band) Contains(rate float64) bool {
	return rate >= b.Min && rate <= b.Max
}

// Thresholds holds the numeric cutoffs of the pipeline. Zero values are
// not meaningful; start from DefaultThresholds.
type Thresholds struct {
	// MinimumDistance is the hard gate below which a segment is excluded
	// outright.
	MinimumDistance float64
	// ShortDistance is the softer cutoff below which confidence drops to
	// medium.
	ShortDistance float64
	// OutlierBands maps fuel types to their plausible per-100 rate range.
	// Fuel types without an entry use DefaultBand.
	OutlierBands map[string]Band
	// DefaultBand is calibrated for liquid fuels in metric units.
	DefaultBand Band
}

// DefaultThresholds returns the standard cutoffs: 10 km minimum distance,
// 100 km short-distance demotion, and per-fuel outlier bands. The liquid
// band of 1-50 l/100km does not fit electric or hydrogen magnitudes, so
// those get their own defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinimumDistance: 10,
		ShortDistance:   100,
		DefaultBand:     Band{Min: 1, Max: 50},
		OutlierBands: map[string]Band{
			model.FuelElectric: {Min: 5, Max: 35},
			model.FuelHydrogen: {Min: 0.5, Max: 3},
		},
	}
}

func (t Thresholds) band(fuelType string) Band {
	if b, ok := t.OutlierBands[fuelType]; ok {
		return b
	}
	return t.DefaultBand
}
