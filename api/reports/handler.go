package reports

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mverdier/fuelscope/core/consumption"
	"github.com/mverdier/fuelscope/core/store"
)

// NewConsumptionHandler exposes consumption reports via
// GET /api/reports/consumption?start=&end=&vehicle=. Timestamps are
// RFC3339; vehicle may repeat to select multiple vehicles.
func NewConsumptionHandler(st store.Store, th consumption.Thresholds) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var f store.Filter
		if v := r.URL.Query().Get("start"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "invalid start", http.StatusBadRequest)
				return
			}
			f.Start = t
		}
		if v := r.URL.Query().Get("end"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "invalid end", http.StatusBadRequest)
				return
			}
			f.End = t
		}
		f.VehicleIDs = r.URL.Query()["vehicle"]

		points, err := st.Points(f)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		configs, err := st.TankConfigs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		report := consumption.Compute(points, configs, th)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
