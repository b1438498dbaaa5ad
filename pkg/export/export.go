package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/mverdier/fuelscope/core/consumption"
)

// WriteJSON writes the consumption report to w in JSON format.
func WriteJSON(w io.Writer, report consumption.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteCSV writes one row per fuel type. The per-100 column is empty when
// no distance was covered.
func WriteCSV(w io.Writer, report consumption.Report) error {
	cw := csv.NewWriter(w)
	header := []string{
		"fuel_type", "consumed", "distance", "per_100", "confidence",
		"vehicles", "refuels", "points", "usable_segments",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, f := range report.FuelTypes {
		per100 := ""
		if f.Per100 != nil {
			per100 = strconv.FormatFloat(*f.Per100, 'f', -1, 64)
		}
		rec := []string{
			f.FuelType,
			strconv.FormatFloat(f.Consumed, 'f', -1, 64),
			strconv.FormatFloat(f.Distance, 'f', -1, 64),
			per100,
			f.Confidence.String(),
			strconv.Itoa(f.Vehicles),
			strconv.Itoa(f.Refuels),
			strconv.Itoa(f.Points),
			strconv.Itoa(f.UsableSegments),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
