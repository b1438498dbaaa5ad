package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mverdier/fuelscope/core/model"
	corestore "github.com/mverdier/fuelscope/core/store"
)

// MemoryStore keeps telemetry in memory for tests and lightweight usage.
type MemoryStore struct {
	mu      sync.Mutex
	points  []model.TelemetryPoint
	configs map[string]model.TankConfig
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{configs: map[string]model.TankConfig{}}
}

// AddPoint appends one telemetry row.
func (s *MemoryStore) AddPoint(p model.TelemetryPoint) error {
	if p.VehicleID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	if p.Odometer < 0 {
		return fmt.Errorf("odometer must be non-negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
	return nil
}

// PutTankConfig inserts or replaces the tank layout of a vehicle.
func (s *MemoryStore) PutTankConfig(c model.TankConfig) error {
	if c.VehicleID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[c.VehicleID] = c
	return nil
}

// Points returns the rows matching the filter in (vehicle, odometer,
// timestamp) order, insertion order on ties.
func (s *MemoryStore) Points(f corestore.Filter) ([]model.TelemetryPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []model.TelemetryPoint
	for _, p := range s.points {
		if f.Matches(p) {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].VehicleID != res[j].VehicleID {
			return res[i].VehicleID < res[j].VehicleID
		}
		if res[i].Odometer != res[j].Odometer {
			return res[i].Odometer < res[j].Odometer
		}
		return res[i].Timestamp.Before(res[j].Timestamp)
	})
	return res, nil
}

// TankConfigs returns every stored tank configuration.
func (s *MemoryStore) TankConfigs() ([]model.TankConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]model.TankConfig, 0, len(s.configs))
	for _, c := range s.configs {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].VehicleID < res[j].VehicleID })
	return res, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
