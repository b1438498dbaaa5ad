package consumption

import "github.com/mverdier/fuelscope/core/model"

// computeSegment reconstructs the consumption of one sorted vehicle+tank
// group using the conservation equation between the first and last points
// with a known tank level:
//
//	consumed = firstLevel + refuelsBetween - lastLevel
//
// When no usable anchor pair exists the group falls through to the
// refuel-spacing approximation. A nil return means the group produced no
// result at all and is omitted from aggregation.
func computeSegment(key groupKey, points []model.TelemetryPoint, capacity float64, fuelType string, th Thresholds) *Segment {
	if len(points) < 2 {
		return approximateSegment(key, points, fuelType, th)
	}

	levels := make([]levelEstimate, len(points))
	for i, p := range points {
		levels[i] = estimateLevel(p, capacity)
	}
	first, last := -1, -1
	for i := range points {
		if levels[i].source != SourceUnknown {
			first = i
			break
		}
	}
	for i := len(points) - 1; i >= 0; i-- {
		if levels[i].source != SourceUnknown {
			last = i
			break
		}
	}
	if first < 0 || last < 0 || first >= last {
		return approximateSegment(key, points, fuelType, th)
	}

	distance := points[last].Odometer - points[first].Odometer
	base := Segment{
		VehicleID: key.vehicleID,
		Tank:      key.tank,
		FuelType:  fuelType,
		Points:    len(points),
	}
	if distance < th.MinimumDistance {
		seg := base
		seg.Confidence = ConfidenceLow
		seg.Reasons = []Reason{ReasonDistanceTooShort}
		seg.Excluded = []ExcludedSegment{newExcluded(key, distance, ReasonDistanceTooShort)}
		return &seg
	}

	// Refuels strictly after the first anchor up to and including the last.
	// The first anchor's own volume is already accounted for in its level.
	refuelSum := 0.0
	refuelCount := 0
	for i := first + 1; i <= last; i++ {
		if points[i].IsRefuel() {
			refuelSum += *points[i].FillVolume
			refuelCount++
		}
	}

	consumed := levels[first].level + refuelSum - levels[last].level
	conf, reasons := classify(points[first], points[last], levels[first], levels[last], distance, consumed, fuelType, th)

	seg := base
	seg.Refuels = refuelCount
	if consumed < 0 {
		// Conservation violated: a missed refuel or a bad gauge reading.
		seg.Confidence = ConfidenceLow
		seg.Reasons = append([]Reason{ReasonNegativeConsumption}, reasons...)
		seg.Excluded = []ExcludedSegment{newExcluded(key, distance, ReasonNegativeConsumption)}
		return &seg
	}
	seg.Consumed = consumed
	seg.Distance = distance
	seg.Confidence = conf
	seg.Reasons = reasons
	return &seg
}
