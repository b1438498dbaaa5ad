package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mverdier/fuelscope/core/consumption"
	"github.com/mverdier/fuelscope/core/model"
)

func sampleReport() consumption.Report {
	per100 := 5.5
	return consumption.Report{
		FuelTypes: []consumption.FuelTypeConsumption{{
			FuelType:       model.FuelDiesel,
			Consumed:       55,
			Distance:       1000,
			Per100:         &per100,
			Confidence:     consumption.ConfidenceHigh,
			Reasons:        []consumption.Reason{consumption.ReasonFullToFull},
			Vehicles:       1,
			Refuels:        1,
			Points:         2,
			UsableSegments: 1,
		}},
		TotalDistance: 1000,
		TotalVehicles: 1,
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var round consumption.Report
	if err := json.Unmarshal(buf.Bytes(), &round); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if !strings.Contains(buf.String(), `"confidence": "high"`) {
		t.Fatalf("confidence must serialize as a string:\n%s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[1] != "diesel,55,1000,5.5,high,1,1,2,1" {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestWriteCSVEmptyPer100(t *testing.T) {
	report := sampleReport()
	report.FuelTypes[0].Per100 = nil
	var buf bytes.Buffer
	if err := WriteCSV(&buf, report); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "diesel,55,1000,,high") {
		t.Fatalf("per-100 must be empty: %s", buf.String())
	}
}
