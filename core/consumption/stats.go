package consumption

import "gonum.org/v1/gonum/stat"

// RateStats summarises the per-100 consumption rates of the usable
// segments in a computation, for fleet-level reporting.
type RateStats struct {
	Segments int     `json:"segments"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// ComputeRateStats derives rate statistics from the segments with positive
// distance. Fewer than two usable segments yield a zero standard deviation.
func ComputeRateStats(segments []Segment) RateStats {
	var rates []float64
	for _, s := range segments {
		if s.Distance > 0 {
			rates = append(rates, s.Per100())
		}
	}
	if len(rates) == 0 {
		return RateStats{}
	}
	rs := RateStats{
		Segments: len(rates),
		Mean:     stat.Mean(rates, nil),
		Min:      rates[0],
		Max:      rates[0],
	}
	if len(rates) > 1 {
		rs.StdDev = stat.StdDev(rates, nil)
	}
	for _, r := range rates[1:] {
		if r < rs.Min {
			rs.Min = r
		}
		if r > rs.Max {
			rs.Max = r
		}
	}
	return rs
}
