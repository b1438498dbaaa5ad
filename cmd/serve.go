package cmd

import "github.com/spf13/cobra"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the telemetry ingestion and reporting service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
