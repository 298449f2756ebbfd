// Package main provides the entry point for the Argo workflow timeline
// reporter.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "argo_report",
	Short:         "Argo workflow timeline reporter",
	Long:          "argo_report queries the Argo Workflows API for historical runs, filters them by date window, phase and name pattern, renders a self-contained HTML timeline report, and optionally publishes it to S3 for static hosting.",
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Each pipeline stage logs its own failure line; Execute only maps the
	// error to the exit status.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
