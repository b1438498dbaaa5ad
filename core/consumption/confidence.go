package consumption

import "github.com/mverdier/fuelscope/core/model"

// classify grades a reconstructed segment. The tier starts high and is only
// ever demoted as negative signals accumulate; the returned reasons list
// every signal that fired, in the order checked.
//
// Both anchors are known here: classify is only called once a usable anchor
// pair was found.
func classify(first, last model.TelemetryPoint, firstLevel, lastLevel levelEstimate, distance, consumed float64, fuelType string, th Thresholds) (Confidence, []Reason) {
	conf := ConfidenceHigh
	var reasons []Reason

	if firstLevel.source == SourceExact && lastLevel.source == SourceExact {
		reasons = append(reasons, ReasonFullToFull)
	} else {
		reasons = append(reasons, ReasonTankPercentage)
		conf = conf.Demote(ConfidenceMedium)
	}

	if first.Kind != model.KindRefuel || last.Kind != model.KindRefuel {
		reasons = append(reasons, ReasonMixedSources)
		conf = conf.Demote(ConfidenceMedium)
	}

	if distance < th.ShortDistance {
		reasons = append(reasons, ReasonShortDistance)
		conf = conf.Demote(ConfidenceMedium)
	}

	if distance > 0 {
		rate := consumed / distance * 100
		if !th.band(fuelType).Contains(rate) {
			reasons = append(reasons, ReasonConsumptionOutlier)
			conf = ConfidenceLow
		}
	}

	return conf, reasons
}
