package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/politico94/infradigest/internal/app"
	"github.com/politico94/infradigest/internal/logger"
	"github.com/politico94/infradigest/internal/metrics"
)

// Options holds all command-line and environment configuration.
type Options struct {
	Sources    string `long:"sources" env:"SOURCES_FILE" default:"configs/sources.yaml" description:"Path to the sources configuration file"`
	OutputDir  string `long:"output-dir" env:"OUTPUT_DIR" default:"output" description:"Directory for the rendered digest page"`
	ArchiveDir string `long:"archive-dir" env:"ARCHIVE_DIR" default:"archive" description:"Directory for daily JSON archives"`
	DryRun     bool   `long:"dry-run" description:"Fetch, score and dedup only; print top items instead of publishing"`

	DatabaseURL   string `long:"database-url" env:"DATABASE_URL" description:"Optional Postgres connection string for archive storage"`
	RetentionDays int    `long:"retention-days" env:"ARCHIVE_RETENTION_DAYS" default:"90" description:"How many days of Postgres archive to keep"`

	Timeout       int    `long:"timeout" env:"REQUEST_TIMEOUT" default:"20" description:"Per-request timeout in seconds"`
	RetryAttempts int    `long:"retry-attempts" env:"RETRY_ATTEMPTS" default:"3" description:"HTTP retry attempts per source"`
	RetryDelay    int    `long:"retry-delay" env:"RETRY_DELAY" default:"5" description:"Base retry delay in seconds"`
	MinInterval   int    `long:"min-interval" env:"FETCH_MIN_INTERVAL_MS" default:"500" description:"Minimum milliseconds between requests to the same host"`
	UserAgent     string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Global Infrastructure Digest Bot; +https://politico94.github.io/global-infra-digest)" description:"User agent for outbound requests"`

	Monitoring     bool   `long:"monitoring" env:"ENABLE_HTTP_MONITORING" description:"Expose /health and /metrics over HTTP while running"`
	MonitoringPort string `long:"monitoring-port" env:"MONITORING_PORT" default:"8080" description:"Port for the monitoring endpoints"`
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	logger.Init()

	if opts.Monitoring {
		go startMonitoringServer(opts.MonitoringPort)
	}

	runOpts := app.Options{
		SourcesPath:    opts.Sources,
		OutputDir:      opts.OutputDir,
		ArchiveDir:     opts.ArchiveDir,
		DatabaseURL:    opts.DatabaseURL,
		RetentionDays:  opts.RetentionDays,
		DryRun:         opts.DryRun,
		RequestTimeout: time.Duration(opts.Timeout) * time.Second,
		RetryAttempts:  opts.RetryAttempts,
		RetryDelay:     time.Duration(opts.RetryDelay) * time.Second,
		MinInterval:    time.Duration(opts.MinInterval) * time.Millisecond,
		UserAgent:      opts.UserAgent,
	}

	if err := app.Run(context.Background(), runOpts); err != nil {
		metrics.Global.SetError(err.Error())
		log.Fatalf("Digest run failed: %v", err)
	}
}

func startMonitoringServer(port string) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	log.Printf("Starting monitoring server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Monitoring server error: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
