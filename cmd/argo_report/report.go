package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/argo-timeline/internal/argo"
	"github.com/jonathan/argo-timeline/internal/config"
	"github.com/jonathan/argo-timeline/internal/logging"
	"github.com/jonathan/argo-timeline/internal/observability"
	"github.com/jonathan/argo-timeline/internal/publish"
	"github.com/jonathan/argo-timeline/internal/render"
	"github.com/jonathan/argo-timeline/internal/report"
)

// publishTimeout bounds the upload call so a stalled connection cannot hang
// the process indefinitely.
const publishTimeout = 60 * time.Second

var (
	flagDate     string
	flagDays     int
	flagPhase    string
	flagWorkflow string
	flagOutput   string
	flagToken    string
)

func init() {
	rootCmd.Flags().StringVar(&flagDate, "date", "", "Report date (YYYY-MM-DD, default: today)")
	rootCmd.Flags().IntVar(&flagDays, "days", 1, "Number of days in the report window")
	rootCmd.Flags().StringVar(&flagPhase, "phase", string(argo.PhaseSucceeded), "Workflow phase to filter (Succeeded, Failed, Running, Pending)")
	rootCmd.Flags().StringVar(&flagWorkflow, "workflow", "", "Filter by workflow name (regular expression)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "Output HTML file path (overrides the computed name)")
	rootCmd.Flags().StringVar(&flagToken, "token", "", "Bearer token for authentication (overrides ARGO_BEARER_TOKEN)")
}

// runReport drives the pipeline: config → filter → fetch → aggregate →
// render → optional publish. Each stage failure is logged once with the
// stage and cause, then surfaced as the process exit status.
func runReport(cmd *cobra.Command, args []string) error {
	logger := logging.New()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		return err
	}
	if flagToken != "" {
		cfg.BearerToken = flagToken
	}
	if cfg.BearerToken == "" {
		logger.Warn("no bearer token provided; set ARGO_BEARER_TOKEN or use --token for authenticated requests")
	}

	// Filter input is validated before any network call is made.
	filter, err := report.NewFilter(flagDate, flagDays, flagPhase, flagWorkflow, cfg.WorkflowLimit)
	if err != nil {
		logger.Error("invalid filter", "error", err)
		return err
	}

	ctx := cmd.Context()

	client := argo.NewClient(cfg.APIURL, cfg.BearerToken, logger)
	runs, err := client.ListWorkflows(ctx, filter.Phase, filter.Limit)
	if err != nil {
		logger.Error("fetch failed", "error", err)
		return err
	}

	filtered := filter.Apply(runs)
	start, end := filter.Window()
	logger.Info("workflows found",
		"fetched", len(runs),
		"matched", len(filtered),
		"namespace", cfg.Namespace,
		"window_start", start.Format(time.RFC3339),
		"window_end", end.Format(time.RFC3339))
	if len(filtered) == 0 {
		logger.Warn("0 workflows found for the selected filters")
	}

	stats := report.Summarize(filtered)
	observability.NewPrinter(os.Stdout).PrintSummary(stats, filtered)

	filename := report.Filename(filter)
	outPath := flagOutput
	if outPath == "" {
		outPath = filename
	} else {
		// The published key reuses whatever name the override chose.
		filename = filepath.Base(outPath)
	}

	meta := render.Meta{
		Title:       "Argo Workflow Timeline",
		WindowStart: start,
		WindowEnd:   end,
		GeneratedAt: time.Now(),
	}
	if err := render.WriteFile(outPath, filtered, meta); err != nil {
		logger.Error("render failed", "error", err)
		return err
	}
	logger.Info("timeline report saved", "path", outPath, "runs", len(filtered))

	if !cfg.PublishEnabled() {
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	publisher, err := publish.NewPublisher(pubCtx, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region, logger)
	if err != nil {
		logger.Error("publish failed", "error", err, "local_report", outPath)
		return err
	}
	if _, err := publisher.Upload(pubCtx, outPath, filename); err != nil {
		// The rendered file stays on disk; the invocation is not a total
		// loss even when the upload fails.
		logger.Error("publish failed", "error", err, "local_report", outPath)
		return err
	}

	return nil
}
