package consumption

import (
	"math"
	"testing"
)

func TestComputeRateStats(t *testing.T) {
	segments := []Segment{
		{Consumed: 30, Distance: 300}, // 10 per 100
		{Consumed: 20, Distance: 400}, // 5 per 100
		{Consumed: 0, Distance: 0},    // excluded, not usable
	}
	rs := ComputeRateStats(segments)
	if rs.Segments != 2 {
		t.Fatalf("expected 2 usable segments, got %d", rs.Segments)
	}
	if math.Abs(rs.Mean-7.5) > 1e-9 {
		t.Fatalf("expected mean 7.5, got %v", rs.Mean)
	}
	if rs.Min != 5 || rs.Max != 10 {
		t.Fatalf("expected min 5 max 10, got %v/%v", rs.Min, rs.Max)
	}
	if rs.StdDev <= 0 {
		t.Fatalf("expected positive stddev, got %v", rs.StdDev)
	}
}

func TestComputeRateStatsEmpty(t *testing.T) {
	if rs := ComputeRateStats(nil); rs.Segments != 0 || rs.Mean != 0 {
		t.Fatalf("expected zero stats, got %+v", rs)
	}
}
