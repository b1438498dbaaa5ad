package consumption

import (
	"sort"

	"github.com/mverdier/fuelscope/core/model"
)

// groupKey identifies one physical tank of one vehicle.
type groupKey struct {
	vehicleID string
	tank      model.TankSlot
}

// groupPoints partitions the flat input sequence into per-(vehicle, tank)
// groups, each sorted ascending by odometer. The sort is stable so rows
// sharing an odometer reading keep their input order. No point is dropped
// or duplicated; tank configuration is validated downstream.
func groupPoints(points []model.TelemetryPoint) map[groupKey][]model.TelemetryPoint {
	groups := make(map[groupKey][]model.TelemetryPoint)
	for _, p := range points {
		key := groupKey{vehicleID: p.VehicleID, tank: p.AssignedTank()}
		groups[key] = append(groups[key], p)
	}
	for key, pts := range groups {
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Odometer < pts[j].Odometer })
		groups[key] = pts
	}
	return groups
}

// sortedKeys returns the group keys in a deterministic order so that the
// same input always yields byte-identical output.
func sortedKeys(groups map[groupKey][]model.TelemetryPoint) []groupKey {
	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].vehicleID != keys[j].vehicleID {
			return keys[i].vehicleID < keys[j].vehicleID
		}
		return keys[i].tank < keys[j].tank
	})
	return keys
}
