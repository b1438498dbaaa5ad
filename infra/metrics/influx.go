package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/mverdier/fuelscope/core/consumption"
	coremetrics "github.com/mverdier/fuelscope/core/metrics"
	"github.com/mverdier/fuelscope/infra/logger"
)

// InfluxSink writes consumption reports to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
	now      func() time.Time
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
		now:      time.Now,
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink when the health check fails, so a broken sink never blocks
// report computation.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.ReportSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordReport writes one point per fuel type.
func (s *InfluxSink) RecordReport(r consumption.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	at := s.now()
	for _, f := range r.FuelTypes {
		p := write.NewPointWithMeasurement("fuel_consumption").
			AddTag("fuel_type", f.FuelType).
			AddTag("confidence", f.Confidence.String()).
			AddField("consumed", f.Consumed).
			AddField("distance", f.Distance).
			AddField("vehicles", f.Vehicles).
			AddField("refuels", f.Refuels).
			AddField("usable_segments", f.UsableSegments).
			SetTime(at)
		if f.Per100 != nil {
			p.AddField("per_100", *f.Per100)
		}
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close shuts the underlying client down.
func (s *InfluxSink) Close() { s.client.Close() }
