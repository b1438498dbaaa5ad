package consumption

import "github.com/mverdier/fuelscope/core/model"

// levelEstimate is a point's absolute tank level in the tank's native unit,
// tagged with how it was derived.
type levelEstimate struct {
	level  float64
	source LevelSource
}

// estimateLevel derives the tank level for a single point. A filled-to-full
// flag pins the level to the tank capacity and wins over a gauge fraction;
// a gauge fraction in [0,1] scales the capacity; anything else is unknown.
// The derivation is stateless and never looks at neighboring points.
func estimateLevel(p model.TelemetryPoint, capacity float64) levelEstimate {
	if p.FilledToFull != nil && *p.FilledToFull {
		return levelEstimate{level: capacity, source: SourceExact}
	}
	if p.FillFraction != nil && *p.FillFraction >= 0 && *p.FillFraction <= 1 {
		return levelEstimate{level: *p.FillFraction * capacity, source: SourceApproximate}
	}
	return levelEstimate{source: SourceUnknown}
}
