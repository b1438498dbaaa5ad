package consumption

import (
	"sort"

	"github.com/mverdier/fuelscope/core/model"
)

// ComputeSegments runs the per-group pipeline and returns one segment per
// vehicle+tank group that produced a result. Groups for vehicles without a
// valid tank configuration, and groups the approximation declined, are
// omitted. Segments come back in deterministic (vehicle, tank) order.
func ComputeSegments(points []model.TelemetryPoint, configs []model.TankConfig, th Thresholds) []Segment {
	byVehicle := make(map[string]model.TankConfig, len(configs))
	for _, c := range configs {
		byVehicle[c.VehicleID] = c
	}

	groups := groupPoints(points)
	var segments []Segment
	for _, key := range sortedKeys(groups) {
		cfg, ok := byVehicle[key.vehicleID]
		if !ok {
			continue
		}
		capacity, fuelType, ok := cfg.Tank(key.tank)
		if !ok {
			continue
		}
		if seg := computeSegment(key, groups[key], capacity, fuelType, th); seg != nil {
			segments = append(segments, *seg)
		}
	}
	return segments
}

// Compute is the primary entry point: it reconstructs consumption for every
// vehicle+tank group and folds the results into one summary per fuel type
// plus grand totals. Empty inputs yield an empty report; the computation
// never fails.
func Compute(points []model.TelemetryPoint, configs []model.TankConfig, th Thresholds) Report {
	return aggregate(ComputeSegments(points, configs, th))
}

// aggregate folds segments by fuel type. The fold is commutative and
// associative (sums and set unions), so the merge order does not affect
// the outcome beyond the deterministic ordering applied at the end.
func aggregate(segments []Segment) Report {
	byType := make(map[string]*FuelTypeConsumption)
	vehiclesByType := make(map[string]map[string]struct{})
	allVehicles := make(map[string]struct{})

	for _, s := range segments {
		f := byType[s.FuelType]
		if f == nil {
			f = &FuelTypeConsumption{FuelType: s.FuelType, Confidence: ConfidenceHigh}
			byType[s.FuelType] = f
			vehiclesByType[s.FuelType] = make(map[string]struct{})
		}
		f.Consumed += s.Consumed
		f.Distance += s.Distance
		f.Refuels += s.Refuels
		f.Points += s.Points
		if s.Distance > 0 {
			f.UsableSegments++
		}
		f.Confidence = f.Confidence.Demote(s.Confidence)
		f.Reasons = mergeReasons(f.Reasons, s.Reasons)
		f.Excluded = append(f.Excluded, s.Excluded...)
		vehiclesByType[s.FuelType][s.VehicleID] = struct{}{}
		allVehicles[s.VehicleID] = struct{}{}
	}

	report := Report{TotalVehicles: len(allVehicles)}
	for fuelType, f := range byType {
		f.Vehicles = len(vehiclesByType[fuelType])
		if f.Distance > 0 {
			per100 := f.Consumed / f.Distance * 100
			f.Per100 = &per100
		}
		report.FuelTypes = append(report.FuelTypes, *f)
		report.TotalDistance += f.Distance
	}
	sort.Slice(report.FuelTypes, func(i, j int) bool {
		return report.FuelTypes[i].FuelType < report.FuelTypes[j].FuelType
	})
	return report
}

// mergeReasons unions src into dst preserving first-seen order.
func mergeReasons(dst, src []Reason) []Reason {
	for _, r := range src {
		seen := false
		for _, have := range dst {
			if have == r {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, r)
		}
	}
	return dst
}
