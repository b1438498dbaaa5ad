package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mverdier/fuelscope/app"
	"github.com/mverdier/fuelscope/config"
	"github.com/mverdier/fuelscope/core/consumption"
	"github.com/mverdier/fuelscope/core/store"
	"github.com/mverdier/fuelscope/infra/logger"
	"github.com/mverdier/fuelscope/pkg/export"
)

var (
	reportStart    string
	reportEnd      string
	reportVehicles []string
	reportCSV      bool
	reportStats    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute a one-shot consumption report and write it to stdout",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportStart, "start", "", "start of the window (RFC3339)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "end of the window (RFC3339)")
	reportCmd.Flags().StringSliceVar(&reportVehicles, "vehicle", nil, "restrict to specific vehicle IDs")
	reportCmd.Flags().BoolVar(&reportCSV, "csv", false, "write CSV instead of JSON")
	reportCmd.Flags().BoolVar(&reportStats, "stats", false, "log fleet-level rate statistics")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := app.OpenStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	filter := store.Filter{VehicleIDs: reportVehicles}
	if reportStart != "" {
		if filter.Start, err = time.Parse(time.RFC3339, reportStart); err != nil {
			return fmt.Errorf("parse start: %w", err)
		}
	}
	if reportEnd != "" {
		if filter.End, err = time.Parse(time.RFC3339, reportEnd); err != nil {
			return fmt.Errorf("parse end: %w", err)
		}
	}

	points, err := st.Points(filter)
	if err != nil {
		return fmt.Errorf("query points: %w", err)
	}
	configs, err := st.TankConfigs()
	if err != nil {
		return fmt.Errorf("query tank configs: %w", err)
	}

	th := cfg.Report.Thresholds()
	segments := consumption.ComputeSegments(points, configs, th)
	if reportStats {
		rs := consumption.ComputeRateStats(segments)
		logger.New("report").Infof("fleet rates: segments=%d mean=%.2f stddev=%.2f min=%.2f max=%.2f",
			rs.Segments, rs.Mean, rs.StdDev, rs.Min, rs.Max)
	}

	report := consumption.Compute(points, configs, th)
	if reportCSV {
		return export.WriteCSV(os.Stdout, report)
	}
	return export.WriteJSON(os.Stdout, report)
}
