package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mverdier/fuelscope/api/reports"
	"github.com/mverdier/fuelscope/config"
	"github.com/mverdier/fuelscope/core/consumption"
	coremetrics "github.com/mverdier/fuelscope/core/metrics"
	corestore "github.com/mverdier/fuelscope/core/store"
	"github.com/mverdier/fuelscope/infra/logger"
	"github.com/mverdier/fuelscope/infra/metrics"
	"github.com/mverdier/fuelscope/infra/mqtt"
	"github.com/mverdier/fuelscope/infra/store"
)

// Service wires the telemetry store, the MQTT ingestor, the report API and
// the metrics sinks together.
type Service struct {
	cfg      *config.Config
	store    corestore.Store
	ingestor *mqtt.Ingestor
	sink     coremetrics.ReportSink
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	log := logger.New("service")

	st, err := OpenStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	svc := &Service{cfg: cfg, store: st, log: log}

	if cfg.MQTT.Enabled {
		ing, err := mqtt.NewIngestor(cfg.MQTT, st)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("mqtt ingestor: %w", err)
		}
		svc.ingestor = ing
	}

	var sinks []coremetrics.ReportSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			svc.Close()
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	switch len(sinks) {
	case 0:
		svc.sink = coremetrics.NopSink{}
	case 1:
		svc.sink = sinks[0]
	default:
		svc.sink = coremetrics.NewMultiSink(sinks...)
	}

	return svc, nil
}

// OpenStore builds the configured store backend.
func OpenStore(cfg config.StoreConfig) (corestore.Store, error) {
	if cfg.Backend == "memory" {
		return store.NewMemoryStore(), nil
	}
	return store.NewSQLiteStore(cfg.Path)
}

// Run blocks until ctx is canceled, serving the report API and pushing
// periodic report snapshots to the metrics sinks.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.API.Enabled {
		go s.serveAPI(ctx)
	}
	if interval := s.cfg.Report.SnapshotIntervalMinutes; interval > 0 {
		go s.snapshotLoop(ctx, time.Duration(interval)*time.Minute)
	}
	<-ctx.Done()
	return nil
}

func (s *Service) serveAPI(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/api/reports/consumption", reports.NewConsumptionHandler(s.store, s.cfg.Report.Thresholds()))
	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	s.log.Infof("report API listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.log.Errorf("api server: %v", err)
	}
}

func (s *Service) snapshotLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Snapshot(); err != nil {
				s.log.Errorf("report snapshot: %v", err)
			}
		}
	}
}

// Snapshot computes a report over the trailing window and pushes it to the
// metrics sinks.
func (s *Service) Snapshot() error {
	filter := corestore.Filter{}
	if days := s.cfg.Report.WindowDays; days > 0 {
		filter.Start = time.Now().UTC().AddDate(0, 0, -days)
	}
	points, err := s.store.Points(filter)
	if err != nil {
		return fmt.Errorf("query points: %w", err)
	}
	configs, err := s.store.TankConfigs()
	if err != nil {
		return fmt.Errorf("query tank configs: %w", err)
	}
	report := consumption.Compute(points, configs, s.cfg.Report.Thresholds())
	s.log.Debugw("report snapshot", map[string]any{
		"fuel_types": len(report.FuelTypes),
		"distance":   report.TotalDistance,
		"vehicles":   report.TotalVehicles,
	})
	return s.sink.RecordReport(report)
}

// Close releases the store and the MQTT connection.
func (s *Service) Close() error {
	if s.ingestor != nil {
		s.ingestor.Close()
	}
	return s.store.Close()
}
