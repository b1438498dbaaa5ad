package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mverdier/fuelscope/core/model"
	corestore "github.com/mverdier/fuelscope/core/store"
)

// SQLiteStore persists telemetry in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema. Rows
// without an odometer reading are rejected at insert, so queries only ever
// return points the consumption pipeline can use.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := []string{
		`CREATE TABLE IF NOT EXISTS telemetry (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        vehicle_id TEXT NOT NULL,
        odometer REAL NOT NULL,
        ts INTEGER NOT NULL,
        kind TEXT NOT NULL,
        fill_fraction REAL,
        fill_volume REAL,
        filled_full INTEGER,
        tank TEXT
    )`,
		`CREATE INDEX IF NOT EXISTS idx_telemetry_vehicle ON telemetry(vehicle_id, odometer, ts)`,
		`CREATE TABLE IF NOT EXISTS tank_config (
        vehicle_id TEXT PRIMARY KEY,
        primary_capacity REAL,
        primary_fuel TEXT,
        secondary_capacity REAL,
        secondary_fuel TEXT
    )`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return &SQLiteStore{db: db}, nil
}

// AddPoint appends one telemetry row.
func (s *SQLiteStore) AddPoint(p model.TelemetryPoint) error {
	if p.VehicleID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	if p.Odometer < 0 {
		return fmt.Errorf("odometer must be non-negative")
	}
	var full *int
	if p.FilledToFull != nil {
		v := 0
		if *p.FilledToFull {
			v = 1
		}
		full = &v
	}
	var tank *string
	if p.Tank != nil {
		v := p.Tank.String()
		tank = &v
	}
	_, err := s.db.Exec(`INSERT INTO telemetry
        (vehicle_id, odometer, ts, kind, fill_fraction, fill_volume, filled_full, tank)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.VehicleID, p.Odometer, p.Timestamp.UTC().Unix(), p.Kind.String(),
		p.FillFraction, p.FillVolume, full, tank)
	return err
}

// PutTankConfig inserts or replaces the tank layout of a vehicle.
func (s *SQLiteStore) PutTankConfig(c model.TankConfig) error {
	if c.VehicleID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	_, err := s.db.Exec(`INSERT INTO tank_config
        (vehicle_id, primary_capacity, primary_fuel, secondary_capacity, secondary_fuel)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(vehicle_id) DO UPDATE SET
            primary_capacity = excluded.primary_capacity,
            primary_fuel = excluded.primary_fuel,
            secondary_capacity = excluded.secondary_capacity,
            secondary_fuel = excluded.secondary_fuel`,
		c.VehicleID, c.PrimaryCapacity, c.PrimaryFuelType,
		c.SecondaryCapacity, c.SecondaryFuelType)
	return err
}

// Points returns the rows matching the filter ordered by
// (vehicle, odometer, timestamp, insertion order).
func (s *SQLiteStore) Points(f corestore.Filter) ([]model.TelemetryPoint, error) {
	q := `SELECT vehicle_id, odometer, ts, kind, fill_fraction, fill_volume, filled_full, tank
        FROM telemetry`
	var conds []string
	var args []any
	if len(f.VehicleIDs) > 0 {
		conds = append(conds, "vehicle_id IN (?"+strings.Repeat(",?", len(f.VehicleIDs)-1)+")")
		for _, id := range f.VehicleIDs {
			args = append(args, id)
		}
	}
	if !f.Start.IsZero() {
		conds = append(conds, "ts >= ?")
		args = append(args, f.Start.UTC().Unix())
	}
	if !f.End.IsZero() {
		conds = append(conds, "ts <= ?")
		args = append(args, f.End.UTC().Unix())
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY vehicle_id, odometer, ts, id"

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var res []model.TelemetryPoint
	for rows.Next() {
		var (
			vid, kind string
			odometer  float64
			ts        int64
			fraction  sql.NullFloat64
			volume    sql.NullFloat64
			full      sql.NullInt64
			tankStr   sql.NullString
		)
		if err := rows.Scan(&vid, &odometer, &ts, &kind, &fraction, &volume, &full, &tankStr); err != nil {
			return nil, err
		}
		p := model.TelemetryPoint{
			VehicleID: vid,
			Odometer:  odometer,
			Timestamp: time.Unix(ts, 0).UTC(),
		}
		if p.Kind, err = model.ParseRecordKind(kind); err != nil {
			return nil, err
		}
		if fraction.Valid {
			v := fraction.Float64
			p.FillFraction = &v
		}
		if volume.Valid {
			v := volume.Float64
			p.FillVolume = &v
		}
		if full.Valid {
			v := full.Int64 != 0
			p.FilledToFull = &v
		}
		if tankStr.Valid {
			slot, err := model.ParseTankSlot(tankStr.String)
			if err != nil {
				return nil, err
			}
			p.Tank = &slot
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// TankConfigs returns every stored tank configuration.
func (s *SQLiteStore) TankConfigs() ([]model.TankConfig, error) {
	rows, err := s.db.Query(`SELECT vehicle_id, primary_capacity, primary_fuel,
        secondary_capacity, secondary_fuel FROM tank_config ORDER BY vehicle_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var res []model.TankConfig
	for rows.Next() {
		var (
			c              model.TankConfig
			priCap, secCap sql.NullFloat64
			priFuel, sFuel sql.NullString
		)
		if err := rows.Scan(&c.VehicleID, &priCap, &priFuel, &secCap, &sFuel); err != nil {
			return nil, err
		}
		if priCap.Valid {
			v := priCap.Float64
			c.PrimaryCapacity = &v
		}
		if secCap.Valid {
			v := secCap.Float64
			c.SecondaryCapacity = &v
		}
		c.PrimaryFuelType = priFuel.String
		c.SecondaryFuelType = sFuel.String
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
