package consumption

import (
	"sort"

	"github.com/mverdier/fuelscope/core/model"
)

// approximateSegment estimates consumption from refuel-to-refuel spacing
// alone, for groups without a reliable tank-level anchor pair. The first
// refuel's volume is excluded from the sum: it covers distance driven
// before the tracked window began. The result is always low confidence.
// Returns nil when fewer than two qualifying refuels exist, in which case
// the group is omitted from aggregation.
func approximateSegment(key groupKey, points []model.TelemetryPoint, fuelType string, th Thresholds) *Segment {
	var refuels []model.TelemetryPoint
	for _, p := range points {
		if p.IsRefuel() {
			refuels = append(refuels, p)
		}
	}
	if len(refuels) < 2 {
		return nil
	}
	sort.SliceStable(refuels, func(i, j int) bool { return refuels[i].Odometer < refuels[j].Odometer })

	seg := Segment{
		VehicleID:  key.vehicleID,
		Tank:       key.tank,
		FuelType:   fuelType,
		Confidence: ConfidenceLow,
		Refuels:    len(refuels),
		Points:     len(points),
	}
	distance := refuels[len(refuels)-1].Odometer - refuels[0].Odometer
	if distance < th.MinimumDistance {
		seg.Reasons = []Reason{ReasonApproximation, ReasonDistanceTooShort}
		seg.Excluded = []ExcludedSegment{newExcluded(key, distance, ReasonDistanceTooShort)}
		return &seg
	}
	consumed := 0.0
	for _, p := range refuels[1:] {
		consumed += *p.FillVolume
	}
	seg.Consumed = consumed
	seg.Distance = distance
	seg.Reasons = []Reason{ReasonApproximation}
	return &seg
}
